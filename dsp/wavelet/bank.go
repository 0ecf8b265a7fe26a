package wavelet

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Params records the parameters a bank was built from, one entry per
// kernel in input order.
type Params struct {
	Freqs   []float64 // center frequency in Hz
	Cycles  []float64 // oscillation count
	FS      float64   // sample rate in Hz, shared by all kernels
	NWin    float64   // window length in envelope standard deviations
	Lengths []int     // true kernel length in samples, always odd
}

// Map returns the parameters keyed by name, each as a per-kernel array:
// "freqs", "cycles", "fs", "n_win" and "length".
func (p Params) Map() map[string][]float64 {
	n := len(p.Freqs)
	fs := make([]float64, n)
	nWin := make([]float64, n)
	length := make([]float64, n)
	for k := range n {
		fs[k] = p.FS
		nWin[k] = p.NWin
		length[k] = float64(p.Lengths[k])
	}
	return map[string][]float64{
		"freqs":  slices.Clone(p.Freqs),
		"cycles": slices.Clone(p.Cycles),
		"fs":     fs,
		"n_win":  nWin,
		"length": length,
	}
}

// Bank is an immutable set of kernels stored as a rectangular
// (kernels x MaxLen) array. Kernel k occupies the first Params.Lengths[k]
// samples of row k; the rest of the row is zero.
type Bank struct {
	Params Params

	name   string
	data   []complex128
	maxLen int
}

// MorletFamily builds a bank of plain Morlet wavelets.
func MorletFamily(freqs, cycles []float64, fs, nWin float64) (*Bank, error) {
	return Generate(Morlet{}, freqs, cycles, fs, nWin)
}

// Generate builds a bank with one kernel per (freqs[k], cycles[k]) pair.
//
// All parameters are validated before any kernel is synthesized. It returns
// ErrEmptyFamily when freqs is empty, and ErrInvalidParameter when a
// frequency, cycle count, fs or nWin is not a finite positive number or
// when cycles and freqs differ in length.
func Generate(s Synthesizer, freqs, cycles []float64, fs, nWin float64) (*Bank, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil synthesizer", ErrInvalidParameter)
	}
	if len(freqs) == 0 {
		return nil, ErrEmptyFamily
	}
	if len(cycles) != len(freqs) {
		return nil, fmt.Errorf("%w: %d cycle counts for %d frequencies", ErrInvalidParameter, len(cycles), len(freqs))
	}
	if err := validateShared(fs, nWin); err != nil {
		return nil, err
	}
	for k := range freqs {
		if err := validateKernel(freqs[k], cycles[k], fs, nWin); err != nil {
			return nil, fmt.Errorf("kernel %d: %w", k, err)
		}
		if _, err := halfLength(freqs[k], cycles[k], fs, nWin); err != nil {
			return nil, fmt.Errorf("kernel %d: %w", k, err)
		}
	}

	kernels := make([][]complex128, len(freqs))
	lengths := make([]int, len(freqs))
	maxLen := 0
	for k := range freqs {
		kern, err := s.Synthesize(freqs[k], cycles[k], fs, nWin)
		if err != nil {
			return nil, fmt.Errorf("kernel %d: %w", k, err)
		}
		if len(kern)%2 != 1 {
			return nil, fmt.Errorf("%w: %s kernel %d has even length %d", ErrInvalidParameter, s.Name(), k, len(kern))
		}
		kernels[k] = kern
		lengths[k] = len(kern)
		maxLen = max(maxLen, len(kern))
	}

	data := make([]complex128, len(kernels)*maxLen)
	for k, kern := range kernels {
		copy(data[k*maxLen:], kern)
	}

	return &Bank{
		Params: Params{
			Freqs:   slices.Clone(freqs),
			Cycles:  slices.Clone(cycles),
			FS:      fs,
			NWin:    nWin,
			Lengths: lengths,
		},
		name:   s.Name(),
		data:   data,
		maxLen: maxLen,
	}, nil
}

// Name returns the name of the synthesizer that built the bank.
func (b *Bank) Name() string { return b.name }

// Len returns the number of kernels.
func (b *Bank) Len() int { return len(b.Params.Lengths) }

// MaxLen returns the padded row length, the longest kernel length.
func (b *Bank) MaxLen() int { return b.maxLen }

// Half returns the number of samples on each side of kernel k's center.
func (b *Bank) Half(k int) int { return (b.Params.Lengths[k] - 1) / 2 }

// Kernel returns a copy of kernel k without padding.
func (b *Bank) Kernel(k int) []complex128 {
	row := b.data[k*b.maxLen:]
	return slices.Clone(row[:b.Params.Lengths[k]])
}

// Matrix returns a copy of the padded bank as a (kernels x MaxLen) matrix.
func (b *Bank) Matrix() *mat.CDense {
	return mat.NewCDense(b.Len(), b.maxLen, slices.Clone(b.data))
}

// Transpose returns a copy of the padded bank as a (MaxLen x kernels)
// matrix, the time-major layout expected by the convolver.
func (b *Bank) Transpose() *mat.CDense {
	n := b.Len()
	data := make([]complex128, len(b.data))
	for k := range n {
		for i := range b.maxLen {
			data[i*n+k] = b.data[k*b.maxLen+i]
		}
	}
	return mat.NewCDense(b.maxLen, n, data)
}

// Energy returns sum(|kernel_k|^2), 1 up to rounding.
func (b *Bank) Energy(k int) float64 {
	kern := b.Kernel(k)
	re := make([]float64, len(kern))
	im := make([]float64, len(kern))
	for i, v := range kern {
		re[i], im[i] = real(v), imag(v)
	}
	p := make([]float64, len(kern))
	vecmath.Power(p, re, im)
	return floats.Sum(p)
}

// Scales returns each kernel's envelope standard deviation in samples,
// cycles/(2*pi*freq) * fs. This is the Gaussian width, not a normalized
// scale: kernel length is 2*ceil(nWin*scale)+1.
func (b *Bank) Scales() []float64 {
	out := make([]float64, b.Len())
	for k := range out {
		out[k] = b.Params.Cycles[k] / (2 * math.Pi * b.Params.Freqs[k]) * b.Params.FS
	}
	return out
}

// Time returns the time axis in seconds of the longest kernel,
// from -half/fs to +half/fs.
func (b *Bank) Time() []float64 {
	half := (b.maxLen - 1) / 2
	out := make([]float64, b.maxLen)
	for i := range out {
		out[i] = float64(i-half) / b.Params.FS
	}
	return out
}

// SortedByFrequency returns a copy of the bank with kernels in ascending
// frequency order. Kernels with equal frequency keep their relative order.
func (b *Bank) SortedByFrequency() *Bank {
	order := make([]int, b.Len())
	for k := range order {
		order[k] = k
	}
	slices.SortStableFunc(order, func(i, j int) int {
		switch {
		case b.Params.Freqs[i] < b.Params.Freqs[j]:
			return -1
		case b.Params.Freqs[i] > b.Params.Freqs[j]:
			return 1
		default:
			return 0
		}
	})

	out := &Bank{
		Params: Params{
			Freqs:   make([]float64, len(order)),
			Cycles:  make([]float64, len(order)),
			FS:      b.Params.FS,
			NWin:    b.Params.NWin,
			Lengths: make([]int, len(order)),
		},
		name:   b.name,
		data:   make([]complex128, len(b.data)),
		maxLen: b.maxLen,
	}
	for dst, src := range order {
		out.Params.Freqs[dst] = b.Params.Freqs[src]
		out.Params.Cycles[dst] = b.Params.Cycles[src]
		out.Params.Lengths[dst] = b.Params.Lengths[src]
		copy(out.data[dst*b.maxLen:(dst+1)*b.maxLen], b.data[src*b.maxLen:(src+1)*b.maxLen])
	}
	return out
}
