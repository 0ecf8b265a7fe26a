package cwt

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-cwt/dsp/conv"
	"github.com/cwbudde/algo-cwt/dsp/wavelet"
)

// Transform convolves signal with every kernel of bank.
// It is Convolve with the bank's time-major matrix and true kernel lengths;
// opts are applied after those.
func Transform(bank *wavelet.Bank, signal Matrix, opts ...Option) (*Cube, error) {
	if bank == nil {
		return nil, fmt.Errorf("%w: nil kernel bank", ErrDimension)
	}
	all := append([]Option{WithKernelLengths(bank.Params.Lengths)}, opts...)
	return Convolve(bank.Transpose(), signal, all...)
}

// Convolve convolves each signal channel with each kernel column and
// returns the coefficients as a (time x kernel x channel) cube with the
// signal's time length.
//
// kernels is (samples x kernels), signal is (samples x channels). Output
// sample t holds the kernel centered on input sample t. Inputs are
// validated before any work starts: a nil matrix or one without columns
// is ErrDimension; an empty signal or kernel lengths outside the kernel
// matrix are ErrShapeMismatch.
func Convolve(kernels, signal Matrix, opts ...Option) (*Cube, error) {
	cfg := applyOptions(opts)

	if kernels == nil || signal == nil {
		return nil, fmt.Errorf("%w: nil kernel or signal matrix", ErrDimension)
	}
	kr, nk := kernels.Dims()
	nt, nc := signal.Dims()
	if nk == 0 {
		return nil, fmt.Errorf("%w: kernel matrix has no columns", ErrDimension)
	}
	if nc == 0 {
		return nil, fmt.Errorf("%w: signal has no channels", ErrDimension)
	}
	if nt < 1 {
		return nil, fmt.Errorf("%w: signal has no samples", ErrShapeMismatch)
	}

	lengths, err := resolveLengths(cfg.lengths, kr, nk)
	if err != nil {
		return nil, err
	}

	channels := make([][]complex128, nc)
	for c := range channels {
		channels[c] = column(signal, c, nt)
		if cfg.interpolate && hasNaN(channels[c]) {
			interpolateNaN(channels[c])
		}
	}

	out := newCube(nt, nk, nc)

	jobs := make(chan int)
	g := new(errgroup.Group)
	for range min(cfg.workers, nk) {
		g.Go(func() error {
			cache := conv.NewPlanCache(cfg.backend)
			var firstErr error
			for k := range jobs {
				if firstErr != nil {
					continue
				}
				kern := column(kernels, k, lengths[k])
				if err := convolveKernel(out, k, kern, channels, cfg.boundary, cache); err != nil {
					firstErr = fmt.Errorf("kernel %d: %w", k, err)
				}
			}
			return firstErr
		})
	}
	for k := range nk {
		jobs <- k
	}
	close(jobs)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// convolveKernel fills out[:, k, :] with the same-mode convolution of every
// channel with kern. The kernel spectrum is computed once and reused.
func convolveKernel(out *Cube, k int, kern []complex128, channels [][]complex128, b Boundary, cache *conv.PlanCache) error {
	nt := out.nt
	ext := 0
	if b == BoundaryMirror {
		ext = (len(kern) - 1) / 2
	}

	c, err := conv.NewConvolver(kern, nt+2*ext, cache)
	if err != nil {
		return err
	}

	for ch, x := range channels {
		same, err := c.ProcessMode(extend(x, ext, b), conv.ModeSame)
		if err != nil {
			return err
		}
		for t, v := range same[ext : ext+nt] {
			out.data[out.index(t, k, ch)] = v
		}
	}
	return nil
}

// resolveLengths validates explicit kernel lengths or defaults every kernel
// to the full column.
func resolveLengths(lengths []int, rows, nk int) ([]int, error) {
	if lengths == nil {
		if rows < 1 {
			return nil, fmt.Errorf("%w: kernel matrix has no samples", ErrShapeMismatch)
		}
		out := make([]int, nk)
		for k := range out {
			out[k] = rows
		}
		return out, nil
	}

	if len(lengths) != nk {
		return nil, fmt.Errorf("%w: %d kernel lengths for %d kernels", ErrShapeMismatch, len(lengths), nk)
	}
	for k, l := range lengths {
		if l < 1 || l > rows {
			return nil, fmt.Errorf("%w: kernel %d length %d outside matrix of %d samples", ErrShapeMismatch, k, l, rows)
		}
	}
	return lengths, nil
}
