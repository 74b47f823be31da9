package core

import "time"

// Pacer turns a stream of elapsed-time samples into fixed-interval ticks.
//
// Elapsed time accumulates until it reaches the interval; Advance then fires
// once and keeps the remainder. The remainder is clamped below one interval,
// so a long stall yields a single tick rather than a burst.
type Pacer struct {
	interval time.Duration
	acc      time.Duration
}

// NewPacer creates a pacer firing every interval.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Interval returns the current tick interval.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// SetInterval changes the tick interval. Accumulated time is kept.
func (p *Pacer) SetInterval(d time.Duration) {
	p.interval = d
}

// Advance adds elapsed time and reports whether a tick is due.
// A non-positive interval fires on every call.
func (p *Pacer) Advance(elapsed time.Duration) bool {
	if p.interval <= 0 {
		return true
	}
	if elapsed > 0 {
		p.acc += elapsed
	}
	if p.acc < p.interval {
		return false
	}
	p.acc -= p.interval
	if p.acc >= p.interval {
		p.acc = p.interval - 1
	}
	return true
}

// Reset drops accumulated time.
func (p *Pacer) Reset() {
	p.acc = 0
}
