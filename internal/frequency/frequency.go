// Package frequency logs a running node-processing rate, fed by the trie's
// progress callback so long-running builds surface liveness without
// flooding the log on every single node.
package frequency

import (
	"log/slog"
	"time"
)

// Frequency accumulates a count and reports its average rate no more often
// than once per Interval.
type Frequency struct {
	Interval time.Duration
	count    int
	total    int
	LastTime time.Time
}

// Add records count additional events since the last Check.
func (f *Frequency) Add(count int) {
	f.count += count
	f.total += count
}

// Check logs the current rate and resets the window if Interval has
// elapsed since the last report.
func (f *Frequency) Check(log *slog.Logger) {
	now := time.Now()
	elapsed := now.Sub(f.LastTime)
	if elapsed >= f.Interval {
		average := float64(f.total) / elapsed.Seconds()
		log.Info("node processing rate", "count", f.count, "average", average)
		f.count = 0
		f.total = 0
		f.LastTime = now
	}
}
