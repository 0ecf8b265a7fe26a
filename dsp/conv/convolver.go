package conv

import "fmt"

// Convolver implements frequency-domain linear convolution against a fixed
// complex kernel.
//
// The algorithm:
// 1. Zero-pad the kernel to the transform size and transform it once
// 2. Zero-pad each input to the same size and transform it
// 3. Multiply the spectra bin by bin
// 4. Inverse-transform and keep the first len(input)+len(kernel)-1 samples
//
// The transform size is the backend's good size for
// maxInputLen + len(kernel) - 1, so no circular wrap-around reaches the
// kept samples. A Convolver is not safe for concurrent use.
type Convolver struct {
	// Kernel in frequency domain
	kernelFFT []complex128

	kernelLen   int
	maxInputLen int
	fftSize     int

	plan Transformer

	// Scratch buffer, reused between calls
	work []complex128
}

// NewConvolver creates a convolver for kernel that accepts inputs of up to
// maxInputLen samples. A nil backend selects [AlgoFFT].
func NewConvolver(kernel []complex128, maxInputLen int, backend Backend) (*Convolver, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if maxInputLen <= 0 {
		return nil, ErrEmptyInput
	}
	if backend == nil {
		backend = AlgoFFT
	}

	fftSize := backend.GoodSize(maxInputLen + len(kernel) - 1)

	plan, err := backend.Plan(fftSize)
	if err != nil {
		return nil, err
	}

	c := &Convolver{
		kernelFFT:   make([]complex128, fftSize),
		kernelLen:   len(kernel),
		maxInputLen: maxInputLen,
		fftSize:     fftSize,
		plan:        plan,
		work:        make([]complex128, fftSize),
	}

	copy(c.work, kernel)
	if err := plan.Forward(c.kernelFFT, c.work); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return c, nil
}

// FFTSize returns the transform size used internally.
func (c *Convolver) FFTSize() int {
	return c.fftSize
}

// KernelLen returns the kernel length.
func (c *Convolver) KernelLen() int {
	return c.kernelLen
}

// MaxInputLen returns the longest input the convolver accepts.
func (c *Convolver) MaxInputLen() int {
	return c.maxInputLen
}

// Process returns the full linear convolution of input with the kernel,
// of length len(input) + KernelLen() - 1.
func (c *Convolver) Process(input []complex128) ([]complex128, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}
	if len(input) > c.maxInputLen {
		return nil, fmt.Errorf("%w: input %d exceeds %d", ErrLengthMismatch, len(input), c.maxInputLen)
	}

	for i := range c.work {
		c.work[i] = 0
	}
	copy(c.work, input)

	if err := c.plan.Forward(c.work, c.work); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i, k := range c.kernelFFT {
		c.work[i] *= k
	}

	if err := c.plan.Inverse(c.work, c.work); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	out := make([]complex128, len(input)+c.kernelLen-1)
	copy(out, c.work)
	return out, nil
}

// ProcessMode convolves input with the kernel and trims the result to mode.
func (c *Convolver) ProcessMode(input []complex128, mode Mode) ([]complex128, error) {
	full, err := c.Process(input)
	if err != nil {
		return nil, err
	}
	return Trim(full, len(input), c.kernelLen, mode)
}
