package utils

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// SlowOperation is the duration after which a timed operation is logged as
// a warning. Analyses run in memory and normally finish in milliseconds.
const SlowOperation = time.Second

// Timer measures one operation and logs its duration when stopped
type Timer struct {
	start     time.Time
	name      string
	log       zerolog.Logger
	slowAfter time.Duration
}

// NewTimer starts a timer for the named operation
func NewTimer(name string, log zerolog.Logger) *Timer {
	return &Timer{
		start:     time.Now(),
		name:      name,
		log:       log,
		slowAfter: SlowOperation,
	}
}

// Stop logs the elapsed time and returns it
func (t *Timer) Stop() time.Duration {
	return t.StopWithContext(nil)
}

// StopWithContext is Stop with extra fields attached to the log line
func (t *Timer) StopWithContext(fields map[string]interface{}) time.Duration {
	duration := time.Since(t.start)

	event := t.log.Debug()
	if duration > t.slowAfter {
		event = t.log.Warn().Dur("slow_after", t.slowAfter)
	}
	event = event.
		Str("operation", t.name).
		Dur("duration", duration)
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg("Operation timed")

	return duration
}

// OperationTimer provides a defer-friendly way to time an operation
//
// Usage:
//
//	func Indicators() {
//	    defer utils.OperationTimer("indicators", log)()
//	}
func OperationTimer(operation string, log zerolog.Logger) func() {
	timer := NewTimer(operation, log)
	return func() {
		timer.Stop()
	}
}

// PerformanceMetrics aggregates the durations of one kind of operation.
// Safe for concurrent use.
type PerformanceMetrics struct {
	mu            sync.Mutex
	operationName string
	callCount     int64
	totalDuration time.Duration
	minDuration   time.Duration
	maxDuration   time.Duration
}

// MetricsSnapshot is a point-in-time copy of PerformanceMetrics
type MetricsSnapshot struct {
	OperationName string        `json:"operation"`
	CallCount     int64         `json:"call_count"`
	TotalDuration time.Duration `json:"total_duration_ns"`
	MinDuration   time.Duration `json:"min_duration_ns"`
	MaxDuration   time.Duration `json:"max_duration_ns"`
	AvgDuration   time.Duration `json:"avg_duration_ns"`
}

// NewPerformanceMetrics creates an empty aggregate for operation
func NewPerformanceMetrics(operation string) *PerformanceMetrics {
	return &PerformanceMetrics{operationName: operation}
}

// Record adds one measured duration
func (pm *PerformanceMetrics) Record(d time.Duration) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if pm.callCount == 0 || d < pm.minDuration {
		pm.minDuration = d
	}
	if d > pm.maxDuration {
		pm.maxDuration = d
	}
	pm.callCount++
	pm.totalDuration += d
}

// Snapshot returns the current aggregate
func (pm *PerformanceMetrics) Snapshot() MetricsSnapshot {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	snap := MetricsSnapshot{
		OperationName: pm.operationName,
		CallCount:     pm.callCount,
		TotalDuration: pm.totalDuration,
		MinDuration:   pm.minDuration,
		MaxDuration:   pm.maxDuration,
	}
	if pm.callCount > 0 {
		snap.AvgDuration = pm.totalDuration / time.Duration(pm.callCount)
	}
	return snap
}

// LogMetrics logs the aggregated performance metrics
func (pm *PerformanceMetrics) LogMetrics(log zerolog.Logger) {
	snap := pm.Snapshot()
	if snap.CallCount == 0 {
		return
	}

	log.Info().
		Str("operation", snap.OperationName).
		Int64("call_count", snap.CallCount).
		Dur("total_duration", snap.TotalDuration).
		Dur("avg_duration", snap.AvgDuration).
		Dur("min_duration", snap.MinDuration).
		Dur("max_duration", snap.MaxDuration).
		Msg("Performance metrics summary")
}
