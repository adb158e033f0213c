package pulse

import "math"

// Canonical is the resolved form every Simple pulse is generated from.
type Canonical struct {
	Frequency float64
	Duty      float64
	Duration  float64
}

// Resolve turns the alternative parameterizations of p into a frequency,
// duty and duration.
func Resolve(p Simple) (Canonical, error) {
	var (
		c      Canonical
		period float64
	)
	switch shape := p.Shape.(type) {
	case Duty:
		if !(shape.Frequency > 0) || math.IsInf(shape.Frequency, 0) {
			return c, invalidf("frequency %v must be positive", shape.Frequency)
		}
		c.Frequency = shape.Frequency
		c.Duty = shape.Duty
		period = 1. / shape.Frequency
	case Values:
		period = shape.PulseWidth + shape.PulseDelay
		if shape.PulseWidth < 0 || shape.PulseDelay < 0 || !(period > 0) || math.IsInf(period, 0) {
			return c, invalidf("pulse width %v and delay %v must be non-negative with a positive sum", shape.PulseWidth, shape.PulseDelay)
		}
		c.Frequency = 1. / period
		c.Duty = shape.PulseWidth / period
	default:
		return c, invalidf("pulse shape not set")
	}

	switch extent := p.Extent.(type) {
	case Length:
		if extent < 0 {
			return c, invalidf("length %v must not be negative", float64(extent))
		}
		c.Duration = float64(extent)
	case Repeats:
		if extent < 0 {
			return c, invalidf("repeats %d must not be negative", int(extent))
		}
		c.Duration = period * float64(extent)
	default:
		return c, invalidf("pulse extent not set")
	}
	return c, nil
}
