package stimulus

import (
	"errors"
	"fmt"

	"github.com/hammal/stimulus/align"
	"github.com/hammal/stimulus/pulse"
	"gonum.org/v1/gonum/mat"
)

// MakePulse synthesizes every parameter set in params and returns them as
// rows of one matrix, in order, together with the matrix time base.
// Nothing is returned when any pulse fails.
func MakePulse(sys System, params []pulse.Parameters) (*mat.Dense, []float64, error) {
	if err := sys.Validate(); err != nil {
		return nil, nil, err
	}
	pulses := make([]pulse.Signal, len(params))
	for index, p := range params {
		var err error
		if pulses[index], err = pulse.Synthesize(sys.SampleRate, p); err != nil {
			return nil, nil, fmt.Errorf("pulse %d: %w", index, err)
		}
	}
	return alignPulses(sys, pulses)
}

func alignPulses(sys System, pulses []pulse.Signal) (*mat.Dense, []float64, error) {
	matrix, time, err := align.Align(sys.SampleRate, sys.Onset, sys.Offset, pulses)
	if errors.Is(err, align.ErrInvalidArgument) {
		err = fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return matrix, time, err
}
