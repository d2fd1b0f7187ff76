// Package ctm builds display color transformation matrices and encodes them
// into the fixed-point property format understood by the kernel DRM driver
// and passed through by xrandr.
package ctm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsvensson/xcolor/internal/color"
)

// Size is the number of coefficients in a 3×3 matrix.
const Size = 9

// Matrix is a 3×3 linear transform from input RGB to output RGB, stored in
// row-major order.
type Matrix [Size]float64

// ShapeError reports an explicit matrix that does not have exactly Size values.
type ShapeError struct {
	Got int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("ctm: expected %d values, got %d", Size, e.Got)
}

// Identity returns the matrix that leaves colors unchanged.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// FromSaturation returns a matrix that blends each channel between its own
// value and the average of all three. 1 leaves colors unchanged, 0 is fully
// grey. sat is not range-checked.
func FromSaturation(sat float64) Matrix {
	coeff := (1 - sat) / 3
	diag := coeff + sat
	return Matrix{
		diag, coeff, coeff,
		coeff, diag, coeff,
		coeff, coeff, diag,
	}
}

// FromGain returns a diagonal matrix scaling each channel independently.
func FromGain(r, g, b float64) Matrix {
	return Matrix{
		r, 0, 0,
		0, g, 0,
		0, 0, b,
	}
}

// FromExplicit uses values directly as the matrix coefficients in row-major
// order. It returns a *ShapeError unless exactly Size values are given.
func FromExplicit(values []float64) (Matrix, error) {
	if len(values) != Size {
		return Matrix{}, &ShapeError{Got: len(values)}
	}
	var m Matrix
	copy(m[:], values)
	return m, nil
}

// FromTemperature returns the gain matrix for a color temperature in Kelvin.
func FromTemperature(kelvin float64) Matrix {
	return FromGain(color.Kelvin(kelvin))
}

// FromWhitePoint returns the gain matrix that maps white onto c.
func FromWhitePoint(c color.Color) Matrix {
	return FromGain(c.Gain())
}

// Diagonal returns the red, green and blue self-gains.
func (m Matrix) Diagonal() [3]float64 {
	return [3]float64{m[0], m[4], m[8]}
}

// Rows returns the matrix as three rows.
func (m Matrix) Rows() [3][3]float64 {
	return [3][3]float64{
		{m[0], m[1], m[2]},
		{m[3], m[4], m[5]},
		{m[6], m[7], m[8]},
	}
}

// String formats the matrix as three bracketed rows, e.g. "[1 0 0] [0 1 0] [0 0 1]".
func (m Matrix) String() string {
	rows := m.Rows()
	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = "[" + formatFloat(row[0]) + " " + formatFloat(row[1]) + " " + formatFloat(row[2]) + "]"
	}
	return strings.Join(parts, " ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
