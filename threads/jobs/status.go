// Package jobs runs a fixed number of workers that update a shared
// job-completion counter under a mutex, and joins them one by one in the
// order they were launched.
package jobs

import "sync"

// Status is the shared job counter. It is handed to every worker by pointer;
// all access goes through the mutex.
type Status struct {
	mu            sync.Mutex
	jobsCompleted uint32
}

// Increment records one finished job.
func (s *Status) Increment() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobsCompleted++
}

// Completed returns the number of jobs recorded so far.
func (s *Status) Completed() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobsCompleted
}
