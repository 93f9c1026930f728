// Package metrics tracks success/failure counts and timing for the worker
// pool that loads and canonicalizes input files ahead of trie construction.
package metrics

import (
	"log/slog"
	"sync"
	"time"
)

// Metrics accumulates job outcomes under a mutex; one instance is shared
// across all workers in a run.
type Metrics struct {
	mu                 sync.Mutex
	totalJobs          int
	successfulJobs     int
	failedJobs         int
	totalExecutionTime time.Duration
	executionCount     int
}

// RecordSuccess records one successful job.
func (m *Metrics) RecordSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalJobs++
	m.successfulJobs++
}

// RecordFailure records one failed job.
func (m *Metrics) RecordFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalJobs++
	m.failedJobs++
}

// AddDuration folds the batch's total wall-clock time into the running
// average. Call once per batch, not once per job: individual job durations
// aren't tracked through the worker pool.
func (m *Metrics) AddDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalExecutionTime += d
	m.executionCount++
}

// Log emits a single summary line for the run.
func (m *Metrics) Log(log *slog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()

	avgExecTime := time.Duration(0)
	if m.executionCount > 0 {
		avgExecTime = m.totalExecutionTime / time.Duration(m.executionCount)
	}

	log.Info("file loading metrics",
		"total_jobs", m.totalJobs,
		"successful_jobs", m.successfulJobs,
		"failed_jobs", m.failedJobs,
		"avg_execution_time", avgExecTime,
	)
}
