package signal

import (
	"fmt"
	"math"
)

const (
	// durations are rounded to this many decimals before being turned into
	// sample counts, so 0.30000000000000004 s counts as 0.3 s.
	roundingDecimals = 10
	// a scaled duration further than this from an integer is rejected.
	countTolerance = 1e-6
)

// RoundDecimals rounds x to the given number of decimals.
func RoundDecimals(x float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(x*p) / p
}

// SampleCount returns the number of samples fs·seconds covers. The duration
// is first rounded to 10 decimals. It fails when the sample rate is not
// positive or the product is not a non-negative integer.
func SampleCount(fs int, seconds float64) (int, error) {
	if fs <= 0 {
		return 0, fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidArgument, fs)
	}
	x := float64(fs) * RoundDecimals(seconds, roundingDecimals)
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return 0, fmt.Errorf("%w: %v s at %d Hz is not a sample count", ErrInvalidArgument, seconds, fs)
	}
	n := math.Round(x)
	if math.Abs(x-n) > countTolerance {
		return 0, fmt.Errorf("%w: %v s at %d Hz gives %v samples, not an integer", ErrInvalidArgument, seconds, fs, x)
	}
	return int(n), nil
}

// SquareWave samples a unit square wave of the given frequency and duty for
// duration seconds. The time base is half open, t_i = i·duration/n.
func SquareWave(fs int, duration, frequency, duty float64) (samples, time []float64, err error) {
	n, err := SampleCount(fs, duration)
	if err != nil {
		return nil, nil, err
	}
	duties := make([]float64, n)
	for index := range duties {
		duties[index] = duty
	}
	return VariableSquareWave(fs, frequency, duties), HalfOpenTimeBase(n, duration), nil
}

// VariableSquareWave samples a unit square wave whose duty changes from
// sample to sample. Sample i is evaluated at time i/fs against duty[i], so
// the returned sequence has len(duty) samples.
func VariableSquareWave(fs int, frequency float64, duty []float64) []float64 {
	samples := make([]float64, len(duty))
	for index := range samples {
		// f·i is exact for integer frequencies, keeping cycle edges exact.
		samples[index] = level(frequency*float64(index)/float64(fs), duty[index])
	}
	return samples
}
