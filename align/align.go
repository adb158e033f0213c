// Package align merges independently synthesized pulses of different
// lengths into one matrix sharing a single time base.
package align

import (
	"errors"
	"fmt"

	"github.com/hammal/stimulus/gonumExtensions"
	"github.com/hammal/stimulus/pulse"
	"github.com/hammal/stimulus/signal"
	"gonum.org/v1/gonum/mat"
)

// ErrInvalidArgument is returned when the padding or a pulse cannot be
// placed in the matrix.
var ErrInvalidArgument = errors.New("align: invalid argument")

// Align places pulse i in row i of a zero matrix, starting onset seconds
// into the row. The matrix is as wide as the longest pulse time base plus
// onset and offset. Shorter pulses keep trailing zeros.
//
// The returned time base spans [0, width/fs] with one stamp per column.
// gonum has no zero sized matrices, so without pulses (or columns) the
// matrix is empty and the width is carried by the time base alone.
func Align(fs int, onset, offset float64, pulses []pulse.Signal) (*mat.Dense, []float64, error) {
	on, err := signal.SampleCount(fs, onset)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: onset: %w", ErrInvalidArgument, err)
	}
	off, err := signal.SampleCount(fs, offset)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: offset: %w", ErrInvalidArgument, err)
	}

	longest := 0
	for _, p := range pulses {
		if len(p.Time) > longest {
			longest = len(p.Time)
		}
	}
	width := longest + on + off

	matrix := gonumExtensions.Zeros(len(pulses), width)
	for row, p := range pulses {
		if gonumExtensions.NANORINF(p.Samples) {
			return nil, nil, fmt.Errorf("%w: pulse %d contains NaN or Inf", ErrInvalidArgument, row)
		}
		if !gonumExtensions.Embed(matrix, row, on, p.Samples) {
			return nil, nil, fmt.Errorf("%w: pulse %d has %d samples, only %d columns left", ErrInvalidArgument, row, len(p.Samples), width-on)
		}
	}
	return matrix, signal.TimeBase(width, float64(width)/float64(fs)), nil
}
