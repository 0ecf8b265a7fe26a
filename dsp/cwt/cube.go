package cwt

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Cube holds complex wavelet coefficients indexed (time, kernel, channel).
type Cube struct {
	data       []complex128
	nt, nk, nc int
}

func newCube(nt, nk, nc int) *Cube {
	return &Cube{
		data: make([]complex128, nt*nk*nc),
		nt:   nt,
		nk:   nk,
		nc:   nc,
	}
}

func (c *Cube) index(t, k, ch int) int {
	return (t*c.nk+k)*c.nc + ch
}

// Dims returns the time, kernel and channel extents.
func (c *Cube) Dims() (times, kernels, channels int) {
	return c.nt, c.nk, c.nc
}

// At returns the coefficient of kernel k on channel ch at sample t.
func (c *Cube) At(t, k, ch int) complex128 {
	return c.data[c.index(t, k, ch)]
}

// Series returns a copy of the coefficients of kernel k on channel ch over time.
func (c *Cube) Series(k, ch int) []complex128 {
	out := make([]complex128, c.nt)
	for t := range out {
		out[t] = c.data[c.index(t, k, ch)]
	}
	return out
}

// Amplitude returns |c| for every coefficient.
func (c *Cube) Amplitude() *RealCube {
	out := c.realLike()
	re, im := c.parts()
	vecmath.Magnitude(out.data, re, im)
	return out
}

// Phase returns the angle of every coefficient in (-pi, pi].
// Zero coefficients have phase 0.
func (c *Cube) Phase() *RealCube {
	out := c.realLike()
	for i, v := range c.data {
		p := cmplx.Phase(v)
		if p == -math.Pi {
			p = math.Pi
		}
		out.data[i] = p
	}
	return out
}

// Power returns the time average of |c|^2 as a (kernels x channels) matrix.
func (c *Cube) Power() *mat.Dense {
	re, im := c.parts()
	sq := make([]float64, len(c.data))
	vecmath.Power(sq, re, im)

	sums := make([]float64, c.nk*c.nc)
	for t := range c.nt {
		floats.Add(sums, sq[t*c.nk*c.nc:(t+1)*c.nk*c.nc])
	}
	floats.Scale(1/float64(c.nt), sums)
	return mat.NewDense(c.nk, c.nc, sums)
}

// PowerAcrossChannels returns the time- and channel-averaged power per kernel.
func (c *Cube) PowerAcrossChannels() []float64 {
	p := c.Power()
	out := make([]float64, c.nk)
	for k := range out {
		out[k] = floats.Sum(p.RawRowView(k)) / float64(c.nc)
	}
	return out
}

func (c *Cube) parts() (re, im []float64) {
	re = make([]float64, len(c.data))
	im = make([]float64, len(c.data))
	for i, v := range c.data {
		re[i] = real(v)
		im[i] = imag(v)
	}
	return re, im
}

func (c *Cube) realLike() *RealCube {
	return &RealCube{
		data: make([]float64, len(c.data)),
		nt:   c.nt,
		nk:   c.nk,
		nc:   c.nc,
	}
}

// RealCube holds real values indexed (time, kernel, channel), such as
// amplitude or phase.
type RealCube struct {
	data       []float64
	nt, nk, nc int
}

// Dims returns the time, kernel and channel extents.
func (r *RealCube) Dims() (times, kernels, channels int) {
	return r.nt, r.nk, r.nc
}

// At returns the value of kernel k on channel ch at sample t.
func (r *RealCube) At(t, k, ch int) float64 {
	return r.data[(t*r.nk+k)*r.nc+ch]
}

// Series returns a copy of the values of kernel k on channel ch over time.
func (r *RealCube) Series(k, ch int) []float64 {
	out := make([]float64, r.nt)
	for t := range out {
		out[t] = r.At(t, k, ch)
	}
	return out
}

// Polar rebuilds complex coefficients from amplitude and phase cubes.
func Polar(amplitude, phase *RealCube) (*Cube, error) {
	at, ak, ac := amplitude.Dims()
	pt, pk, pc := phase.Dims()
	if at != pt || ak != pk || ac != pc {
		return nil, fmt.Errorf("%w: amplitude %dx%dx%d, phase %dx%dx%d", ErrShapeMismatch, at, ak, ac, pt, pk, pc)
	}
	out := newCube(at, ak, ac)
	for i := range out.data {
		out.data[i] = cmplx.Rect(amplitude.data[i], phase.data[i])
	}
	return out, nil
}
