package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserCreated is a no-op.
func (n *NoopRecorder) IncUserCreated() {}

// IncUserCacheHit is a no-op.
func (n *NoopRecorder) IncUserCacheHit() {}

// IncUserCacheMiss is a no-op.
func (n *NoopRecorder) IncUserCacheMiss() {}

// IncExerciseCreated is a no-op.
func (n *NoopRecorder) IncExerciseCreated() {}

// IncLogQuery is a no-op.
func (n *NoopRecorder) IncLogQuery() {}

// ObserveLogQueryDuration is a no-op.
func (n *NoopRecorder) ObserveLogQueryDuration(duration time.Duration) {}
