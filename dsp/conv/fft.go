package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	dspfft "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Transformer computes forward and inverse DFTs of a fixed length.
// Inverse is normalized so that Inverse(Forward(x)) == x.
type Transformer interface {
	Len() int
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

// Backend creates transform plans and reports the sizes it handles well.
type Backend interface {
	// Name identifies the backend.
	Name() string

	// GoodSize returns the smallest efficient transform length >= n.
	GoodSize(n int) int

	// Plan returns a transformer of length n.
	Plan(n int) (Transformer, error)
}

// Predefined backends.
var (
	AlgoFFT Backend = algoBackend{}
	Gonum   Backend = gonumBackend{}
	GoDSP   Backend = godspBackend{}
)

// Backends lists the predefined backends in preference order.
func Backends() []Backend {
	return []Backend{AlgoFFT, Gonum, GoDSP}
}

// BackendByName returns the predefined backend with the given name.
func BackendByName(name string) (Backend, error) {
	for _, b := range Backends() {
		if b.Name() == name {
			return b, nil
		}
	}
	return nil, fmt.Errorf("conv: unknown backend %q", name)
}

type algoBackend struct{}

// minAlgoSize keeps tiny transforms on the planner's well-trodden sizes.
const minAlgoSize = 16

func (algoBackend) Name() string { return "algo-fft" }

func (algoBackend) GoodSize(n int) int {
	return max(nextPowerOf2(n), minAlgoSize)
}

func (algoBackend) Plan(n int) (Transformer, error) {
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}
	return plan, nil
}

type gonumBackend struct{}

func (gonumBackend) Name() string       { return "gonum" }
func (gonumBackend) GoodSize(n int) int { return nextSmooth(n) }

func (gonumBackend) Plan(n int) (Transformer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("conv: invalid transform length %d", n)
	}
	return &gonumPlan{
		fft:   fourier.NewCmplxFFT(n),
		work:  make([]complex128, n),
		scale: 1 / float64(n),
	}, nil
}

// gonumPlan adapts fourier.CmplxFFT, which leaves the inverse unscaled.
type gonumPlan struct {
	fft   *fourier.CmplxFFT
	work  []complex128
	scale float64
}

func (p *gonumPlan) Len() int { return len(p.work) }

func (p *gonumPlan) Forward(dst, src []complex128) error {
	if err := p.check(dst, src); err != nil {
		return err
	}
	p.fft.Coefficients(p.work, src)
	copy(dst, p.work)
	return nil
}

func (p *gonumPlan) Inverse(dst, src []complex128) error {
	if err := p.check(dst, src); err != nil {
		return err
	}
	p.fft.Sequence(p.work, src)
	s := complex(p.scale, 0)
	for i, v := range p.work {
		dst[i] = v * s
	}
	return nil
}

func (p *gonumPlan) check(dst, src []complex128) error {
	if len(dst) != len(p.work) || len(src) != len(p.work) {
		return fmt.Errorf("%w: plan %d, dst %d, src %d", ErrLengthMismatch, len(p.work), len(dst), len(src))
	}
	return nil
}

type godspBackend struct{}

func (godspBackend) Name() string       { return "go-dsp" }
func (godspBackend) GoodSize(n int) int { return nextPowerOf2(n) }

func (godspBackend) Plan(n int) (Transformer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("conv: invalid transform length %d", n)
	}
	return godspPlan(n), nil
}

// godspPlan wraps the allocating go-dsp transforms. go-dsp's IFFT is
// already normalized.
type godspPlan int

func (p godspPlan) Len() int { return int(p) }

func (p godspPlan) Forward(dst, src []complex128) error {
	if len(dst) != int(p) || len(src) != int(p) {
		return fmt.Errorf("%w: plan %d, dst %d, src %d", ErrLengthMismatch, int(p), len(dst), len(src))
	}
	copy(dst, dspfft.FFT(src))
	return nil
}

func (p godspPlan) Inverse(dst, src []complex128) error {
	if len(dst) != int(p) || len(src) != int(p) {
		return fmt.Errorf("%w: plan %d, dst %d, src %d", ErrLengthMismatch, int(p), len(dst), len(src))
	}
	copy(dst, dspfft.IFFT(src))
	return nil
}

// PlanCache memoizes plans by length for a single goroutine.
// It implements Backend by delegating size selection to the wrapped backend.
type PlanCache struct {
	backend Backend
	plans   map[int]Transformer
}

// NewPlanCache returns an empty cache over backend. A nil backend selects [AlgoFFT].
func NewPlanCache(backend Backend) *PlanCache {
	if backend == nil {
		backend = AlgoFFT
	}
	return &PlanCache{backend: backend, plans: make(map[int]Transformer)}
}

// Name returns the wrapped backend's name.
func (c *PlanCache) Name() string { return c.backend.Name() }

// GoodSize returns the wrapped backend's good size for n.
func (c *PlanCache) GoodSize(n int) int { return c.backend.GoodSize(n) }

// Plan returns a cached plan of length n, creating it on first use.
func (c *PlanCache) Plan(n int) (Transformer, error) {
	if p, ok := c.plans[n]; ok {
		return p, nil
	}
	p, err := c.backend.Plan(n)
	if err != nil {
		return nil, err
	}
	c.plans[n] = p
	return p, nil
}

// Len returns the number of cached plans.
func (c *PlanCache) Len() int { return len(c.plans) }
