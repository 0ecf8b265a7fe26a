// Package conv provides complex-valued linear convolution primitives.
//
// Two strategies are offered:
//
//   - Direct convolution: textbook O(N*M) sliding sum, used as the reference
//     implementation and for very short inputs.
//   - Frequency-domain convolution: both sequences are zero-padded to a
//     common transform length >= N+M-1, transformed, multiplied bin by bin,
//     and inverse-transformed.
//
// # Usage
//
// For one-shot convolution, use the simple functions:
//
//	full, err := conv.DirectComplex(signal, kernel)
//	same, err := conv.ConvolveMode(signal, kernel, conv.ModeSame, conv.AlgoFFT)
//
// For repeated convolution against the same kernel, create a [Convolver].
// It transforms the kernel once and reuses the spectrum for every input:
//
//	c, err := conv.NewConvolver(kernel, len(signal), conv.AlgoFFT)
//	for _, ch := range channels {
//	    out, err := c.ProcessMode(ch, conv.ModeSame)
//	}
//
// # Backends
//
// Transforms are delegated to a [Backend]. Each backend picks its own
// efficient transform size:
//
//   - [AlgoFFT]: github.com/MeKo-Christian/algo-fft, power-of-two sizes (default)
//   - [Gonum]: gonum.org/v1/gonum/dsp/fourier, 5-smooth sizes (2^a 3^b 5^c)
//   - [GoDSP]: github.com/mjibson/go-dsp/fft, power-of-two sizes
//
// Plans returned by a backend are not safe for concurrent use. Callers that
// convolve from several goroutines should give each goroutine its own
// [PlanCache].
//
// # Modes
//
// [ModeSame] trims the full result to the length of the first input with
// the zero lag at the kernel's center sample, start index (M-1)/2. For odd
// M this places the kernel's middle sample at each input instant.
package conv
