// Package system provides clock implementations for generation runs.
package system

import "time"

// Clock implements generator.Clock using time.Now.
type Clock struct{}

// New creates a new Clock.
func New() *Clock {
	return &Clock{}
}

// Now returns the current time.
func (Clock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a clock pinned to a single instant. Reproducible builds set it
// from SOURCE_DATE_EPOCH-style configuration; tests use it directly.
type Fixed struct {
	at time.Time
}

// NewFixed returns a clock that always reports at, converted to UTC.
func NewFixed(at time.Time) *Fixed {
	return &Fixed{at: at.UTC()}
}

// Now returns the pinned instant.
func (f *Fixed) Now() time.Time {
	return f.at
}
