package pulse

import (
	"github.com/hammal/stimulus/signal"
	"gonum.org/v1/gonum/floats"
)

// SimplePulse synthesizes a clean square pulse, or a shattered one when
// p.Shatter is set, and pads it with p.Onset and p.Offset seconds of zeros.
func SimplePulse(fs int, p Simple) (Signal, error) {
	c, err := Resolve(p)
	if err != nil {
		return Signal{}, err
	}
	if p.Shatter != nil && p.Shatter.Frequency < c.Frequency {
		return Signal{}, invalidf("shatter frequency %v must not be lower than pulse frequency %v", p.Shatter.Frequency, c.Frequency)
	}

	body, _, err := signal.SquareWave(fs, c.Duration, c.Frequency, c.Duty)
	if err != nil {
		return Signal{}, invalid(err)
	}
	if p.Shatter != nil {
		carrier, _, err := signal.SquareWave(fs, c.Duration, p.Shatter.Frequency, p.Shatter.Duty)
		if err != nil {
			return Signal{}, invalid(err)
		}
		// The pulse acts as an envelope: carrier bursts survive its high phase only.
		floats.Mul(body, carrier)
	}
	return pad(fs, body, c.Duration, p.Onset, p.Offset)
}

// pad surrounds body with onset and offset seconds of zeros. The time base
// spans the rounded total duration, both ends included.
func pad(fs int, body []float64, duration, onset, offset float64) (Signal, error) {
	on, err := signal.SampleCount(fs, onset)
	if err != nil {
		return Signal{}, invalid(err)
	}
	off, err := signal.SampleCount(fs, offset)
	if err != nil {
		return Signal{}, invalid(err)
	}
	total := signal.RoundDecimals(duration+onset+offset, 10)
	n, err := signal.SampleCount(fs, total)
	if err != nil {
		return Signal{}, invalid(err)
	}

	samples := make([]float64, on+len(body)+off)
	copy(samples[on:], body)
	if len(samples) != n {
		return Signal{}, invalidf("padded pulse has %d samples but its time base %d", len(samples), n)
	}
	return Signal{Samples: samples, Time: signal.TimeBase(n, total)}, nil
}
