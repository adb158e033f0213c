// Package signal generates the deterministic square waves every stimulus
// pulse is built from, together with the time bases they are sampled on.
//
// All waves are unit square waves: a sample is 1 while the phase fraction of
// the current cycle is below the duty and 0 otherwise. This is the classic
// ±1 square law remapped with (raw/2)+0.5.
package signal

import (
	"errors"
	"math"
)

// ErrInvalidArgument is returned when a sample rate, duration or sequence
// cannot describe a valid sampled signal.
var ErrInvalidArgument = errors.New("signal: invalid argument")

// level evaluates the square law after the given number of cycles.
// Duty is clamped to [0, 1] so duty 1 is constant high and duty 0 constant low.
func level(cycles, duty float64) float64 {
	raw := -1.
	if cycles-math.Floor(cycles) < math.Max(0, math.Min(1, duty)) {
		raw = 1.
	}
	return raw/2. + 0.5
}
