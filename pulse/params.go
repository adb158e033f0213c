package pulse

import "fmt"

// Kind enumerates the pulse families.
type Kind int

const (
	KindSimple Kind = iota + 1
	KindNoise
)

var kindNames = map[Kind]string{
	KindSimple: "Simple",
	KindNoise:  "Noise",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the Kind with the given name, "Simple" or "Noise".
func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPulseType, name)
}

// Parameters is implemented by every pulse parameter set.
type Parameters interface {
	Kind() Kind
}

// Shape describes the square wave of a Simple pulse. It is either Duty or Values.
type Shape interface {
	isShape()
}

// Duty gives the shape as a frequency in Hz and the fraction of each
// period spent high.
type Duty struct {
	Frequency float64
	Duty      float64
}

// Values gives the shape as the length of the high phase and of the low
// phase following it, both in seconds.
type Values struct {
	PulseWidth float64
	PulseDelay float64
}

func (Duty) isShape()   {}
func (Values) isShape() {}

// Extent describes how long the active part of a pulse lasts. It is either
// a Length or a number of Repeats.
type Extent interface {
	isExtent()
}

// Length is an explicit duration in seconds.
type Length float64

// Repeats is a number of whole periods (Simple) or chips (Noise).
type Repeats int

func (Length) isExtent()  {}
func (Repeats) isExtent() {}

// Shatter splits the high phase of a pulse with a carrier square wave.
// Frequency must not be lower than the pulse frequency.
type Shatter struct {
	Frequency float64
	Duty      float64
}

// Simple holds the parameters of a clean or, when Shatter is set, shattered
// square pulse. Onset and Offset are silent padding in seconds.
type Simple struct {
	Shape   Shape
	Extent  Extent
	Onset   float64
	Offset  float64
	Shatter *Shatter
}

// Kind returns KindSimple.
func (Simple) Kind() Kind { return KindSimple }

// Noise holds the parameters of a noise pulse. Frequency is the inverse of
// the chip length, ShatterFrequency the carrier frequency. Every chip gets a
// duty drawn uniformly from [AmpMin, AmpMax] by a generator seeded with Seed.
type Noise struct {
	Frequency        float64
	ShatterFrequency float64
	AmpMin           float64
	AmpMax           float64
	Seed             uint64
	Extent           Extent
	Onset            float64
	Offset           float64
}

// Kind returns KindNoise.
func (Noise) Kind() Kind { return KindNoise }

// Signal is a sampled pulse and its time base.
type Signal struct {
	Samples []float64
	Time    []float64
}
