package wavelet

import (
	"math"
)

// Synthesizer produces one normalized complex kernel from the shared
// wavelet parameters. Implementations must return an odd-length kernel
// centered on its middle sample with unit energy.
type Synthesizer interface {
	// Name identifies the wavelet shape.
	Name() string

	// Synthesize returns the kernel for center frequency freq (Hz), cycle
	// count cycles, sample rate fs (Hz) and window factor nWin (in units
	// of the envelope's standard deviation).
	Synthesize(freq, cycles, fs, nWin float64) ([]complex128, error)
}

// Morlet synthesizes complex Morlet wavelets.
type Morlet struct {
	// Complete subtracts the admissibility correction exp(-cycles^2/2)
	// from the carrier so the kernel has zero mean. It matters only for
	// small cycle counts (below about 5).
	Complete bool
}

// Name returns "morlet".
func (m Morlet) Name() string {
	if m.Complete {
		return "morlet-complete"
	}
	return "morlet"
}

// Synthesize returns a unit-energy Morlet kernel of length 2*half+1.
func (m Morlet) Synthesize(freq, cycles, fs, nWin float64) ([]complex128, error) {
	if err := validateKernel(freq, cycles, fs, nWin); err != nil {
		return nil, err
	}
	half, err := halfLength(freq, cycles, fs, nWin)
	if err != nil {
		return nil, err
	}

	sigma := cycles / (2 * math.Pi * freq)
	twoSigmaSq := 2 * sigma * sigma
	omega := 2 * math.Pi * freq

	var offset float64
	if m.Complete {
		offset = math.Exp(-cycles * cycles / 2)
	}

	out := make([]complex128, 2*half+1)
	energy := 0.0
	for i := range out {
		t := float64(i-half) / fs
		env := math.Exp(-t * t / twoSigmaSq)
		s, c := math.Sincos(omega * t)
		re := (c - offset) * env
		im := s * env
		out[i] = complex(re, im)
		energy += re*re + im*im
	}

	normalize(out, energy)
	return out, nil
}

// normalize scales kernel in place to unit energy given its current energy.
func normalize(kernel []complex128, energy float64) {
	if energy <= 0 {
		return
	}
	g := complex(1/math.Sqrt(energy), 0)
	for i := range kernel {
		kernel[i] *= g
	}
}
