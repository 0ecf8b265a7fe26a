package wavelet

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by bank construction.
var (
	ErrInvalidParameter = errors.New("wavelet: invalid parameter")
	ErrEmptyFamily      = errors.New("wavelet: empty family")
)

// maxHalfLength bounds a single kernel's half-width in samples.
const maxHalfLength = 1 << 24

func validatePositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite and > 0: %v", ErrInvalidParameter, name, v)
	}
	return nil
}

func validateShared(fs, nWin float64) error {
	if err := validatePositive("sample rate", fs); err != nil {
		return err
	}
	return validatePositive("window factor", nWin)
}

func validateKernel(freq, cycles, fs, nWin float64) error {
	if err := validatePositive("frequency", freq); err != nil {
		return err
	}
	if err := validatePositive("cycles", cycles); err != nil {
		return err
	}
	return validateShared(fs, nWin)
}

// halfLength returns ceil(nWin * sigma * fs) for sigma = cycles/(2*pi*freq).
func halfLength(freq, cycles, fs, nWin float64) (int, error) {
	sigma := cycles / (2 * math.Pi * freq)
	h := math.Ceil(nWin * sigma * fs)
	if h > maxHalfLength || math.IsNaN(h) {
		return 0, fmt.Errorf("%w: kernel half-width %v samples exceeds %d", ErrInvalidParameter, h, maxHalfLength)
	}
	return int(h), nil
}
