package pulse

import (
	"math"
	"math/rand/v2"

	"github.com/hammal/stimulus/signal"
	"gonum.org/v1/gonum/stat/distuv"
)

// NoisePulse synthesizes a carrier at p.ShatterFrequency whose duty follows
// a random piecewise constant envelope, one level per chip of
// floor(fs/p.Frequency) samples, and pads it like SimplePulse.
func NoisePulse(fs int, p Noise) (Signal, error) {
	if fs <= 0 {
		return Signal{}, invalidf("sample rate %d must be positive", fs)
	}
	if !(p.Frequency > 0) || math.IsInf(p.Frequency, 0) {
		return Signal{}, invalidf("frequency %v must be positive", p.Frequency)
	}
	chips := math.Floor(float64(fs) / p.Frequency)
	if math.IsInf(chips, 0) || chips >= math.MaxInt {
		return Signal{}, invalidf("frequency %v gives a chip of %v samples", p.Frequency, chips)
	}
	chip := int(chips)
	if chip == 0 {
		return Signal{}, invalidf("frequency %v exceeds sample rate %d", p.Frequency, fs)
	}
	if p.AmpMin > p.AmpMax {
		return Signal{}, invalidf("amplitude range [%v, %v] is empty", p.AmpMin, p.AmpMax)
	}

	var duration float64
	switch extent := p.Extent.(type) {
	case Length:
		duration = float64(extent)
	case Repeats:
		if extent < 0 {
			return Signal{}, invalidf("repeats %d must not be negative", int(extent))
		}
		duration = float64(extent) * float64(chip) / float64(fs)
	default:
		return Signal{}, invalidf("pulse extent not set")
	}
	n, err := signal.SampleCount(fs, duration)
	if err != nil {
		return Signal{}, invalid(err)
	}

	envelope := Envelope(n, chip, p.AmpMin, p.AmpMax, p.Seed)
	body := signal.VariableSquareWave(fs, p.ShatterFrequency, envelope)
	return pad(fs, body, duration, p.Onset, p.Offset)
}

// Envelope returns n samples of a piecewise constant sequence made of chips
// of chip samples, each holding a level drawn uniformly from [ampMin, ampMax].
// Levels come from a PCG generator seeded with (seed, 0), so equal arguments
// always give the same envelope.
func Envelope(n, chip int, ampMin, ampMax float64, seed uint64) []float64 {
	n, chip = max(n, 0), max(chip, 1)
	amplitude := distuv.Uniform{Min: ampMin, Max: ampMax, Src: rand.NewPCG(seed, 0)}
	envelope := make([]float64, 0, n)
	for len(envelope) < n {
		level := amplitude.Rand()
		// the last chip is cut at n samples
		for count := min(chip, n-len(envelope)); count > 0; count-- {
			envelope = append(envelope, level)
		}
	}
	return envelope
}
