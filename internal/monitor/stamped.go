// Package monitor owns the background worker that pumps a base station's
// serial link, aggregates per-robot telemetry, and exposes it to
// foreground code through latest-value channels and a debug mutex — the
// concurrency shape the teacher's hasher-host Orchestrator uses for its
// connection monitor (a stop channel plus a select loop over a mutex-
// guarded struct), generalized from one polled device to sixteen robot
// slots and a base station.
package monitor

import "time"

// Stamped holds either no value or a value paired with the monotonic
// instant it was received. Zero value is the empty state.
type Stamped[T any] struct {
	have  bool
	at    time.Time
	value T
}

// NewStamped returns a Stamped holding value, timestamped now.
func NewStamped[T any](value T) Stamped[T] {
	return Stamped[T]{have: true, at: time.Now(), value: value}
}

// Get returns the held value and whether one is present.
func (s Stamped[T]) Get() (T, bool) {
	return s.value, s.have
}

// Since returns how long ago the value was stamped. If no value has ever
// been received, it returns a duration large enough that any liveness
// threshold treats the cell as dead.
func (s Stamped[T]) Since() time.Duration {
	if !s.have {
		return time.Duration(1<<63 - 1)
	}
	return time.Since(s.at)
}

// Set stamps value with the current time, overwriting whatever was held.
func (s *Stamped[T]) Set(value T) {
	s.have = true
	s.at = time.Now()
	s.value = value
}
