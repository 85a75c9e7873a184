// Package scroll converts the external scroll-timeline signal into normalized
// progress samples with a derived velocity estimate, and defines the discrete
// region-crossing signals the transition engine consumes.
package scroll

import (
	"math"
	"sync/atomic"
	"time"
)

// Sample is one scroll observation. Produced once per scroll-update callback.
type Sample struct {
	Progress float64 // raw progress in [0,1]
	Velocity float64 // clamped to [0,1], decays to 0 as progress settles
	At       time.Time
}

// Coupler derives velocity from consecutive progress values. The estimate is
// a single-step derivative, deliberately unsmoothed: a flick of the wheel
// reads as an immediate gust. The jitter this admits only modulates wave
// speed, never edge position.
type Coupler struct {
	sensitivity float64

	// Previous progress as float bits. A single atomic swap makes the
	// read-modify-write safe against re-entrant scroll dispatch: an update
	// arriving inside the handling of a previous update cannot observe or
	// clobber a half-applied previous value.
	prev atomic.Uint64
}

// NewCoupler creates a coupler with the given sensitivity factor.
func NewCoupler(sensitivity float64) *Coupler {
	return &Coupler{sensitivity: sensitivity}
}

// Update ingests a raw progress value and returns the derived sample.
func (c *Coupler) Update(raw float64, now time.Time) Sample {
	if raw < 0 {
		raw = 0
	}
	if raw > 1 {
		raw = 1
	}

	prevBits := c.prev.Swap(math.Float64bits(raw))
	prev := math.Float64frombits(prevBits)

	vel := math.Abs(raw-prev) * c.sensitivity
	if vel > 1 {
		vel = 1
	}

	return Sample{Progress: raw, Velocity: vel, At: now}
}

// Reset clears the previous-progress bookkeeping, pinning progress at 0.
// Called when the transition region is left backward.
func (c *Coupler) Reset() {
	c.prev.Store(0)
}
