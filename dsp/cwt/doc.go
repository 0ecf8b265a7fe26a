// Package cwt computes continuous wavelet transforms of multichannel
// signals against a bank of complex kernels.
//
// [Convolve] takes a time-major kernel matrix (samples x kernels) and a
// signal (samples x channels) and returns a [Cube] of complex coefficients
// indexed (time, kernel, channel). Each (kernel, channel) pair is a linear
// convolution computed in the frequency domain and trimmed so that output
// sample t is the kernel centered on input sample t. The cube always has
// exactly as many time samples as the signal. Near the edges the kernel
// overhangs the signal, which is zero-padded unless [BoundaryMirror] is
// selected.
//
// [Transform] is the usual entry point when the kernels come from a
// [wavelet.Bank]: it passes each kernel's true length so that padded rows
// do not shift the zero lag.
//
//	bank, _ := wavelet.MorletFamily(freqs, cycles, fs, 7)
//	sig, _ := cwt.FromChannels(left, right)
//	cube, err := cwt.Transform(bank, cwt.Real(sig))
//	amp := cube.Amplitude()
//	phase := cube.Phase()
//	power := cube.Power() // kernels x channels
//
// Amplitude, phase and power are pure functions of the cube.
//
// Kernels are distributed across a bounded set of workers. Each worker owns
// its FFT plans and writes a disjoint part of the cube, so results do not
// depend on the worker count.
package cwt
