// Package wavelet synthesizes banks of complex wavelet kernels for
// continuous wavelet analysis.
//
// A bank holds one unit-energy kernel per requested center frequency.
// Kernels are sampled on a symmetric time axis of 2*half+1 samples, so the
// kernel's center sample is always its zero-lag instant.
//
// Kernel shapes are provided by a [Synthesizer]. [Morlet] is the built-in
// shape: a complex sinusoid tapered by a Gaussian envelope,
//
//	sigma  = cycles / (2*pi*freq)
//	half   = ceil(nWin * sigma * fs)
//	psi(t) = exp(i*2*pi*freq*t) * exp(-t^2 / (2*sigma^2)),  t = n/fs, n in [-half, half]
//
// normalized so that sum(|psi|^2) == 1.
//
// Basic usage:
//
//	freqs := wavelet.LogFrequencies(2, 40, 16)
//	b, err := wavelet.MorletFamily(freqs, wavelet.ConstantCycles(16, 6), 256, 7)
//	for k := range b.Len() {
//	    fmt.Printf("%.1f Hz: %d samples\n", b.Params.Freqs[k], b.Params.Lengths[k])
//	}
//
// Other kernel shapes are added by implementing [Synthesizer] and passing
// it to [Generate].
package wavelet
