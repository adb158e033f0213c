package signal

import "gonum.org/v1/gonum/floats"

// HalfOpenTimeBase returns n time stamps evenly spaced over [0, end).
func HalfOpenTimeBase(n int, end float64) []float64 {
	time := make([]float64, n)
	if n == 0 {
		return time
	}
	step := end / float64(n)
	for index := range time {
		time[index] = float64(index) * step
	}
	return time
}

// TimeBase returns n time stamps evenly spaced over [0, end], both ends
// included. A single stamp is 0.
func TimeBase(n int, end float64) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{0}
	}
	return floats.Span(make([]float64, n), 0, end)
}
