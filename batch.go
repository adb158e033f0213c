package stimulus

import (
	"fmt"

	"github.com/hammal/stimulus/pulse"
	"gonum.org/v1/gonum/mat"
)

// MultiSimple is MakePulse for a batch of clean or shattered pulses.
func MultiSimple(sys System, params []pulse.Simple) (*mat.Dense, []float64, error) {
	if err := sys.Validate(); err != nil {
		return nil, nil, err
	}
	pulses := make([]pulse.Signal, len(params))
	for index, p := range params {
		var err error
		if pulses[index], err = pulse.SimplePulse(sys.SampleRate, p); err != nil {
			return nil, nil, fmt.Errorf("pulse %d: %w", index, err)
		}
	}
	return alignPulses(sys, pulses)
}

// MultiNoise is MakePulse for a batch of noise pulses.
func MultiNoise(sys System, params []pulse.Noise) (*mat.Dense, []float64, error) {
	if err := sys.Validate(); err != nil {
		return nil, nil, err
	}
	pulses := make([]pulse.Signal, len(params))
	for index, p := range params {
		var err error
		if pulses[index], err = pulse.NoisePulse(sys.SampleRate, p); err != nil {
			return nil, nil, fmt.Errorf("pulse %d: %w", index, err)
		}
	}
	return alignPulses(sys, pulses)
}
