package pulse

import "fmt"

// Synthesize routes p to the synthesizer of its kind. Pointers to Simple
// and Noise are accepted as well.
func Synthesize(fs int, p Parameters) (Signal, error) {
	switch p := p.(type) {
	case Simple:
		return SimplePulse(fs, p)
	case *Simple:
		if p == nil {
			return Signal{}, invalidf("nil %T parameters", p)
		}
		return SimplePulse(fs, *p)
	case Noise:
		return NoisePulse(fs, p)
	case *Noise:
		if p == nil {
			return Signal{}, invalidf("nil %T parameters", p)
		}
		return NoisePulse(fs, *p)
	case nil:
		return Signal{}, fmt.Errorf("%w: nil parameters", ErrUnknownPulseType)
	default:
		return Signal{}, fmt.Errorf("%w: %T", ErrUnknownPulseType, p)
	}
}
