package main

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// traceSpacing separates the rows vertically so the traces do not overlap.
const traceSpacing = 1.5

// traces turns every row of matrix into a line, shifted up by its row index.
func traces(matrix mat.Matrix, time []float64) []interface{} {
	rows, cols := matrix.Dims()
	lines := make([]interface{}, 0, 2*rows)
	for row := 0; row < rows; row++ {
		pts := make(plotter.XYs, cols)
		for col := range pts {
			pts[col].X = time[col]
			pts[col].Y = matrix.At(row, col) + float64(row)*traceSpacing
		}
		lines = append(lines, fmt.Sprintf("pulse %d", row), pts)
	}
	return lines
}

func plotMatrix(filename string, matrix mat.Matrix, time []float64) error {
	p := plot.New()
	p.Title.Text = "Stimulus pulses"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Pulse"

	if err := plotutil.AddLines(p, traces(matrix, time)...); err != nil {
		return fmt.Errorf("plotting pulses: %w", err)
	}
	return p.Save(10*vg.Inch, 4*vg.Inch, filename)
}
