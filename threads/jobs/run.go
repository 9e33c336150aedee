package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Config holds Run parameters.
type Config struct {
	// Workers is the number of workers to spawn. Defaults to 10.
	Workers int

	// Delay is how long the default job sleeps before incrementing the
	// counter. Defaults to 250 ms.
	Delay time.Duration

	// Job is the body of worker id. If nil, the worker sleeps Delay and
	// then calls s.Increment.
	Job func(id int, s *Status)

	// Logger receives worker lifecycle events. If nil, logging is disabled.
	Logger *zap.Logger
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Workers <= 0 {
		out.Workers = 10
	}
	if out.Delay <= 0 {
		out.Delay = 250 * time.Millisecond
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	if out.Job == nil {
		delay := out.Delay
		out.Job = func(_ int, s *Status) {
			time.Sleep(delay)
			s.Increment()
		}
	}
	return out
}

// Run spawns cfg.Workers workers sharing one Status, then joins them in
// launch order. After each successful join it reads the counter and passes
// it to report (which may be nil). It returns the final counter value.
//
// Because joins follow launch order, a worker that finished early is
// reported only once every worker launched before it has been joined.
// Reported values are therefore non-decreasing but not deterministic.
//
// If a worker fails, reporting stops; the remaining workers are still
// joined before Run returns the first failure.
func Run(cfg Config, report func(completed uint32)) (uint32, error) {
	cfg = cfg.withDefaults()
	log := cfg.Logger

	status := &Status{}
	handles := make([]*Handle, 0, cfg.Workers)

	for id := 0; id < cfg.Workers; id++ {
		handles = append(handles, Spawn(func() {
			log.Debug("worker started", zap.Int("worker", id))
			cfg.Job(id, status)
			log.Debug("worker finished", zap.Int("worker", id))
		}))
	}

	var firstErr error
	for id, h := range handles {
		if err := h.Join(); err != nil {
			log.Error("worker failed", zap.Int("worker", id), zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("join worker %d: %w", id, err)
			}
			continue
		}
		if firstErr != nil {
			continue
		}
		if report != nil {
			report(status.Completed())
		}
	}

	completed := status.Completed()
	log.Info("all workers joined",
		zap.Int("workers", cfg.Workers),
		zap.Uint32("completed", completed))

	return completed, firstErr
}
