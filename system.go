// Package stimulus builds matrices of time aligned stimulus pulses.
//
// Every row of a matrix is one pulse, synthesized independently from its
// own parameters and zero padded so that all pulses share one time base.
package stimulus

import (
	"fmt"

	"github.com/hammal/stimulus/pulse"
)

// System struct contains the parameters shared by all pulses of a matrix
type System struct {
	// Samples per second
	SampleRate int
	// Silence before every pulse in seconds
	Onset float64
	// Silence after the longest pulse in seconds
	Offset float64
}

// Validate checks that the system can hold sampled pulses.
func (s System) Validate() error {
	if s.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidArgument, s.SampleRate)
	}
	if s.Onset < 0 || s.Offset < 0 {
		return fmt.Errorf("%w: onset %v and offset %v must not be negative", ErrInvalidArgument, s.Onset, s.Offset)
	}
	return nil
}

var (
	// ErrInvalidArgument matches every invalid argument error of the module.
	ErrInvalidArgument = pulse.ErrInvalidArgument
	// ErrUnknownPulseType is returned for parameters of an unknown kind.
	ErrUnknownPulseType = pulse.ErrUnknownPulseType
)
