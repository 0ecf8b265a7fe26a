package wavelet

import "gonum.org/v1/gonum/floats"

// LogFrequencies returns n center frequencies spaced evenly on a log scale
// from lo to hi inclusive.
func LogFrequencies(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.LogSpan(make([]float64, n), lo, hi)
}

// LinearFrequencies returns n center frequencies spaced evenly from lo to
// hi inclusive.
func LinearFrequencies(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// ConstantCycles returns n copies of c, for banks that use the same
// cycle count at every frequency.
func ConstantCycles(n int, c float64) []float64 {
	out := make([]float64, max(n, 0))
	for i := range out {
		out[i] = c
	}
	return out
}
