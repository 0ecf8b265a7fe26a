package cwt

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a read-only 2-D complex array, rows are time samples.
// *mat.CDense satisfies it.
type Matrix interface {
	Dims() (r, c int)
	At(i, j int) complex128
}

// Real adapts a real-valued gonum matrix to [Matrix].
func Real(m mat.Matrix) Matrix {
	if m == nil {
		return nil
	}
	return realMatrix{m}
}

type realMatrix struct {
	m mat.Matrix
}

func (r realMatrix) Dims() (int, int) { return r.m.Dims() }

func (r realMatrix) At(i, j int) complex128 { return complex(r.m.At(i, j), 0) }

// FromRows builds a time x channel signal from rows of channel samples.
// All rows must have the same non-zero width.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: signal has no samples", ErrShapeMismatch)
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: signal has no channels", ErrDimension)
	}
	data := make([]float64, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrDimension, i, len(row), width)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), width, data), nil
}

// FromChannels builds a time x channel signal with one column per channel.
// All channels must have the same non-zero length.
func FromChannels(channels ...[]float64) (*mat.Dense, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: signal has no channels", ErrDimension)
	}
	n := len(channels[0])
	if n == 0 {
		return nil, fmt.Errorf("%w: signal has no samples", ErrShapeMismatch)
	}
	m := mat.NewDense(n, len(channels), nil)
	for c, ch := range channels {
		if len(ch) != n {
			return nil, fmt.Errorf("%w: channel %d has %d samples, want %d", ErrDimension, c, len(ch), n)
		}
		m.SetCol(c, ch)
	}
	return m, nil
}

// FromComplexChannels builds a complex time x channel signal with one
// column per channel.
func FromComplexChannels(channels ...[]complex128) (*mat.CDense, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: signal has no channels", ErrDimension)
	}
	n := len(channels[0])
	if n == 0 {
		return nil, fmt.Errorf("%w: signal has no samples", ErrShapeMismatch)
	}
	m := mat.NewCDense(n, len(channels), nil)
	for c, ch := range channels {
		if len(ch) != n {
			return nil, fmt.Errorf("%w: channel %d has %d samples, want %d", ErrDimension, c, len(ch), n)
		}
		for i, v := range ch {
			m.Set(i, c, v)
		}
	}
	return m, nil
}

// column copies rows [0, n) of column j.
func column(m Matrix, j, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = m.At(i, j)
	}
	return out
}
