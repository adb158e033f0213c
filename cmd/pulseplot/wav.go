package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/youpy/go-wav"
	"gonum.org/v1/gonum/mat"
)

const bitsPerSample = 16

// samples converts the rows of matrix, at most two, into 16 bit WAV frames.
func samples(matrix mat.Matrix) ([]wav.Sample, error) {
	rows, cols := matrix.Dims()
	if rows == 0 || rows > 2 {
		return nil, fmt.Errorf("wav needs one or two pulses, got %d", rows)
	}
	frames := make([]wav.Sample, cols)
	for col := range frames {
		for row := 0; row < rows; row++ {
			frames[col].Values[row] = int(math.Round(matrix.At(row, col) * math.MaxInt16))
		}
	}
	return frames, nil
}

func writeWav(filename string, matrix mat.Matrix, rate int) (err error) {
	frames, err := samples(matrix)
	if err != nil {
		return err
	}
	rows, _ := matrix.Dims()

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	writer := wav.NewWriter(file, uint32(len(frames)), uint16(rows), uint32(rate), bitsPerSample)
	return writer.WriteSamples(frames)
}
