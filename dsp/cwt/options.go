package cwt

import (
	"runtime"
	"slices"

	"github.com/cwbudde/algo-cwt/dsp/conv"
)

// Boundary selects how the signal is extended past its edges.
type Boundary int

const (
	// BoundaryZero treats samples outside the signal as zero.
	BoundaryZero Boundary = iota

	// BoundaryMirror reflects the signal about its first and last samples
	// (without repeating them) by each kernel's half-width.
	BoundaryMirror
)

// String returns the boundary name.
func (b Boundary) String() string {
	switch b {
	case BoundaryZero:
		return "zero"
	case BoundaryMirror:
		return "mirror"
	default:
		return "unknown"
	}
}

// Option configures a transform.
type Option func(*config)

type config struct {
	lengths     []int
	boundary    Boundary
	interpolate bool
	backend     conv.Backend
	workers     int
}

func defaultConfig() config {
	return config{
		boundary: BoundaryZero,
		backend:  conv.AlgoFFT,
		workers:  runtime.GOMAXPROCS(0),
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithKernelLengths declares the true length of each kernel column. Kernel
// k occupies rows [0, lengths[k]) of its column and is centered on row
// (lengths[k]-1)/2. Without this option every kernel spans the full column.
func WithKernelLengths(lengths []int) Option {
	return func(c *config) {
		c.lengths = slices.Clone(lengths)
	}
}

// WithBoundary selects the edge extension.
func WithBoundary(b Boundary) Option {
	return func(c *config) {
		c.boundary = b
	}
}

// WithInterpolateNaN replaces NaN samples by linear interpolation between
// the nearest valid samples of the same channel before transforming.
// Leading and trailing NaNs take the nearest valid value; an all-NaN
// channel becomes zero.
func WithInterpolateNaN() Option {
	return func(c *config) {
		c.interpolate = true
	}
}

// WithBackend selects the FFT backend. Defaults to [conv.AlgoFFT].
func WithBackend(b conv.Backend) Option {
	return func(c *config) {
		if b != nil {
			c.backend = b
		}
	}
}

// WithWorkers bounds the number of kernels processed concurrently.
// Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}
