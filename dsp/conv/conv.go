package conv

import (
	"errors"
	"fmt"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
	ErrInvalidMode    = errors.New("conv: invalid mode")
)

// Mode specifies the output mode for convolution.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input,
	// centered on the second input's middle sample.
	ModeSame

	// ModeValid returns only the portion where signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// DirectComplex performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
//
// This is an O(N*M) algorithm. It is the reference the frequency-domain
// path is tested against.
func DirectComplex(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]complex128, len(a)+len(b)-1)
	DirectComplexTo(result, a, b)
	return result, nil
}

// DirectComplexTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectComplexTo(dst, a, b []complex128) {
	for i := range dst {
		dst[i] = 0
	}

	for i, x := range a {
		if x == 0 {
			continue
		}
		row := dst[i : i+len(b)]
		for j, h := range b {
			row[j] += x * h
		}
	}
}

// DirectMode performs direct convolution with the specified output mode.
func DirectMode(a, b []complex128, mode Mode) ([]complex128, error) {
	full, err := DirectComplex(a, b)
	if err != nil {
		return nil, err
	}
	return Trim(full, len(a), len(b), mode)
}

// ConvolveMode performs frequency-domain convolution of a with kernel b using
// backend and trims the result to mode.
func ConvolveMode(a, b []complex128, mode Mode, backend Backend) ([]complex128, error) {
	c, err := NewConvolver(b, len(a), backend)
	if err != nil {
		return nil, err
	}
	return c.ProcessMode(a, mode)
}

// Trim extracts the portion of a full convolution result selected by mode.
// lenA and lenB are the lengths of the two convolved inputs.
func Trim(full []complex128, lenA, lenB int, mode Mode) ([]complex128, error) {
	if len(full) != lenA+lenB-1 {
		return nil, fmt.Errorf("%w: full result %d, want %d", ErrLengthMismatch, len(full), lenA+lenB-1)
	}

	switch mode {
	case ModeFull:
		return full, nil
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA], nil
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA], nil
		}
		return full[lenA-1 : lenB], nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// nextSmooth returns the smallest 5-smooth integer (2^a 3^b 5^c) >= n.
func nextSmooth(n int) int {
	if n <= 1 {
		return 1
	}
	for m := n; ; m++ {
		r := m
		for _, p := range [...]int{2, 3, 5} {
			for r%p == 0 {
				r /= p
			}
		}
		if r == 1 {
			return m
		}
	}
}
