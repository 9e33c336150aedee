// Command threads spawns ten workers that each sleep, then bump a shared
// job counter under a mutex. Main joins them in launch order and prints the
// counter after every join.
//
// Joins follow launch order, not completion order, so the printed values
// climb to 10 but may jump: a slow early worker holds back the report of
// every worker launched after it.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/marcodamonte/exercises/internal/logging"
	"github.com/marcodamonte/exercises/threads/jobs"
)

func main() {
	logger := logging.Must("info")
	defer func() { _ = logger.Sync() }()

	completed, err := jobs.Run(jobs.Config{Logger: logger}, func(n uint32) {
		fmt.Printf("jobs completed %d\n", n)
	})
	if err != nil {
		logger.Error("run failed", zap.Uint32("completed", completed), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
