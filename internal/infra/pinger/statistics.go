package pinger

import (
	"sync"
	"time"
)

// stats holds the running results of one pinger.
type stats struct {
	mu                  sync.Mutex
	lastRun             time.Time
	lastSuccess         time.Time
	lastLatency         time.Duration
	lastError           error
	successCount        int
	errorCount          int
	consecutiveFailures int
}

func (st *stats) record(at time.Time, latency time.Duration, err error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.lastRun = at
	st.lastLatency = latency
	st.lastError = err

	if err != nil {
		st.errorCount++
		st.consecutiveFailures++

		return
	}

	st.successCount++
	st.consecutiveFailures = 0
	st.lastSuccess = at
}

// Statistics is a snapshot of a pinger's results.
type Statistics struct {
	IsReady             bool
	IsHealthy           bool
	LastRun             time.Time
	LastSuccess         time.Time
	LastLatency         time.Duration
	LastError           error
	SuccessCount        int
	ErrorCount          int
	ConsecutiveFailures int
}

// statistics computes the snapshot. A critical pinger is failing only while
// its last ping failed; a pinger that has not run yet is not failing.
func (i *pingerInfo) statistics() *Statistics {
	i.stats.mu.Lock()
	defer i.stats.mu.Unlock()

	failing := i.stats.lastError != nil

	return &Statistics{
		IsReady:             !i.readyCritical || !failing,
		IsHealthy:           !i.healthCritical || !failing,
		LastRun:             i.stats.lastRun,
		LastSuccess:         i.stats.lastSuccess,
		LastLatency:         i.stats.lastLatency,
		LastError:           i.stats.lastError,
		SuccessCount:        i.stats.successCount,
		ErrorCount:          i.stats.errorCount,
		ConsecutiveFailures: i.stats.consecutiveFailures,
	}
}
