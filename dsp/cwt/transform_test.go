package cwt

import (
	"errors"
	"fmt"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-cwt/dsp/conv"
	"github.com/cwbudde/algo-cwt/dsp/wavelet"
	"github.com/cwbudde/algo-cwt/internal/testutil"
)

func mustSignal(t *testing.T, channels ...[]float64) Matrix {
	t.Helper()
	m, err := FromChannels(channels...)
	if err != nil {
		t.Fatalf("FromChannels failed: %v", err)
	}
	return Real(m)
}

func mustBank(t *testing.T, freqs, cycles []float64, fs, nWin float64) *wavelet.Bank {
	t.Helper()
	b, err := wavelet.MorletFamily(freqs, cycles, fs, nWin)
	if err != nil {
		t.Fatalf("MorletFamily failed: %v", err)
	}
	return b
}

func TestTransformImpulseReference(t *testing.T) {
	bank := mustBank(t, []float64{1}, []float64{3}, 24, 6.5)
	kern := bank.Kernel(0)
	half := bank.Half(0)
	if half != 75 {
		t.Fatalf("half = %d, want 75", half)
	}

	const n, pos = 240, 120
	cube, err := Transform(bank, mustSignal(t, testutil.Impulse(n, pos)))
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	nt, nk, nc := cube.Dims()
	if nt != n || nk != 1 || nc != 1 {
		t.Fatalf("Dims = %dx%dx%d, want %dx1x1", nt, nk, nc, n)
	}

	for tt := range n {
		got := cube.At(tt, 0, 0)
		off := tt - pos
		if off < -half || off > half {
			if cmplx.Abs(got) > 1e-12 {
				t.Fatalf("t=%d: got %v outside kernel support", tt, got)
			}
			continue
		}
		if cmplx.Abs(got-kern[off+half]) > 1e-12 {
			t.Fatalf("t=%d: got %v, want %v", tt, got, kern[off+half])
		}
	}

	// Symmetric magnitude about the impulse.
	for off := 1; off <= half; off++ {
		a := cmplx.Abs(cube.At(pos-off, 0, 0))
		b := cmplx.Abs(cube.At(pos+off, 0, 0))
		if diff := a - b; diff > 1e-12 || diff < -1e-12 {
			t.Fatalf("offset %d: |left| %v != |right| %v", off, a, b)
		}
	}
}

func TestTransformImpulseMultiKernel(t *testing.T) {
	bank := mustBank(t, []float64{2, 8, 20}, []float64{3, 5, 7}, 200, 7)

	const n, pos = 1000, 437
	cube, err := Transform(bank, mustSignal(t, testutil.Impulse(n, pos), make([]float64, n)))
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	for k := range bank.Len() {
		kern := bank.Kernel(k)
		half := bank.Half(k)
		got := cube.Series(k, 0)[pos-half : pos+half+1]
		testutil.RequireComplexNearlyEqual(t, got, kern, 1e-10)

		if cmplx.Abs(cube.At(pos, k, 1)) != 0 {
			t.Fatalf("kernel %d: zero channel has nonzero output", k)
		}
	}
}

func TestTransformZeroSignal(t *testing.T) {
	bank := mustBank(t, []float64{1, 5}, []float64{3, 3}, 50, 7)

	for _, n := range []int{1, 7, 300} {
		cube, err := Transform(bank, mustSignal(t, make([]float64, n), make([]float64, n), make([]float64, n)))
		if err != nil {
			t.Fatalf("n=%d: Transform failed: %v", n, err)
		}
		nt, nk, nc := cube.Dims()
		if nt != n || nk != 2 || nc != 3 {
			t.Fatalf("n=%d: Dims = %dx%dx%d", n, nt, nk, nc)
		}
		for _, v := range cube.data {
			if v != 0 {
				t.Fatalf("n=%d: nonzero coefficient %v", n, v)
			}
		}
	}
}

func TestConvolveMatchesDirect(t *testing.T) {
	lengths := []int{5, 31, 9, 1}
	maxLen := 31

	kernels := mat.NewCDense(maxLen, len(lengths), nil)
	for k, l := range lengths {
		kern := testutil.DeterministicComplexNoise(int64(10+k), 1, l)
		for i, v := range kern {
			kernels.Set(i, k, v)
		}
	}

	for _, backend := range conv.Backends() {
		for _, n := range []int{3, 64, 257} {
			t.Run(fmt.Sprintf("%s/n=%d", backend.Name(), n), func(t *testing.T) {
				ch0 := testutil.DeterministicComplexNoise(int64(n), 1, n)
				ch1 := testutil.Complex(testutil.DeterministicNoise(int64(n+1), 1, n))
				signal, err := FromComplexChannels(ch0, ch1)
				if err != nil {
					t.Fatalf("FromComplexChannels failed: %v", err)
				}

				cube, err := Convolve(kernels, signal, WithKernelLengths(lengths), WithBackend(backend))
				if err != nil {
					t.Fatalf("Convolve failed: %v", err)
				}

				for k, l := range lengths {
					kern := column(kernels, k, l)
					for c, ch := range [][]complex128{ch0, ch1} {
						want, err := conv.DirectMode(ch, kern, conv.ModeSame)
						if err != nil {
							t.Fatalf("DirectMode failed: %v", err)
						}
						testutil.RequireComplexNearlyEqual(t, cube.Series(k, c), want, 1e-8)
					}
				}
			})
		}
	}
}

func TestConvolveFullColumnDefault(t *testing.T) {
	kernels := mat.NewCDense(3, 1, []complex128{1, 2i, 3})
	signal := mustSignal(t, []float64{0, 0, 1, 0, 0})

	cube, err := Convolve(kernels, signal)
	if err != nil {
		t.Fatalf("Convolve failed: %v", err)
	}

	want := []complex128{0, 1, 2i, 3, 0}
	testutil.RequireComplexNearlyEqual(t, cube.Series(0, 0), want, 1e-12)
}

func TestTransformKernelLongerThanSignal(t *testing.T) {
	bank := mustBank(t, []float64{0.5}, []float64{6}, 100, 7)
	if bank.Params.Lengths[0] <= 50 {
		t.Fatalf("test needs a long kernel, got %d", bank.Params.Lengths[0])
	}

	for _, b := range []Boundary{BoundaryZero, BoundaryMirror} {
		cube, err := Transform(bank, mustSignal(t, testutil.DeterministicSine(3, 100, 1, 9)), WithBoundary(b))
		if err != nil {
			t.Fatalf("%v: Transform failed: %v", b, err)
		}
		if nt, _, _ := cube.Dims(); nt != 9 {
			t.Fatalf("%v: time dim = %d, want 9", b, nt)
		}
		testutil.RequireFinite(t, cube.data)
	}
}

func TestConvolveWorkerIndependence(t *testing.T) {
	bank := mustBank(t, wavelet.LogFrequencies(1, 30, 9), wavelet.ConstantCycles(9, 5), 128, 6)
	signal := mustSignal(t,
		testutil.DeterministicNoise(1, 1, 700),
		testutil.DeterministicSine(7, 128, 1, 700),
	)

	serial, err := Transform(bank, signal, WithWorkers(1))
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	parallel, err := Transform(bank, signal, WithWorkers(8))
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	d, err := testutil.MaxAbsDiff(parallel.data, serial.data)
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Errorf("parallel result differs from serial by %g", d)
	}
}

func TestConvolveMirrorBoundary(t *testing.T) {
	bank := mustBank(t, []float64{4}, []float64{4}, 64, 7)
	const n = 256

	dc := make([]float64, n)
	for i := range dc {
		dc[i] = 1
	}

	mirror, err := Transform(bank, mustSignal(t, dc), WithBoundary(BoundaryMirror))
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	zero, err := Transform(bank, mustSignal(t, dc))
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	interior := mirror.At(n/2, 0, 0)
	for _, tt := range []int{0, 1, n - 1} {
		if cmplx.Abs(mirror.At(tt, 0, 0)-interior) > 1e-9 {
			t.Errorf("mirror t=%d: %v, want %v", tt, mirror.At(tt, 0, 0), interior)
		}
	}
	if cmplx.Abs(zero.At(n/2, 0, 0)-interior) > 1e-9 {
		t.Errorf("interior differs between boundaries: %v vs %v", zero.At(n/2, 0, 0), interior)
	}
	if cmplx.Abs(zero.At(0, 0, 0)-interior) < 1e-6 {
		t.Error("zero boundary edge unexpectedly matches interior")
	}
}

func TestConvolveMirrorMatchesDirect(t *testing.T) {
	kern := testutil.DeterministicComplexNoise(5, 1, 7)
	kernels, _ := FromComplexChannels(kern)
	x := testutil.DeterministicNoise(9, 1, 20)

	cube, err := Convolve(kernels, mustSignal(t, x), WithBoundary(BoundaryMirror))
	if err != nil {
		t.Fatalf("Convolve failed: %v", err)
	}

	ext := extend(testutil.Complex(x), 3, BoundaryMirror)
	full, _ := conv.DirectMode(ext, kern, conv.ModeSame)
	testutil.RequireComplexNearlyEqual(t, cube.Series(0, 0), full[3:23], 1e-10)
}

func TestConvolveInterpolateNaN(t *testing.T) {
	bank := mustBank(t, []float64{5}, []float64{4}, 100, 5)

	x := testutil.DeterministicSine(3, 100, 1, 200)
	clean := append([]float64(nil), x...)
	x[50] = nan()
	x[51] = nan()
	clean[50] = clean[49] + (clean[52]-clean[49])/3
	clean[51] = clean[49] + 2*(clean[52]-clean[49])/3

	got, err := Transform(bank, mustSignal(t, x), WithInterpolateNaN())
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	want, err := Transform(bank, mustSignal(t, clean))
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	testutil.RequireFinite(t, got.data)
	testutil.RequireComplexNearlyEqual(t, got.data, want.data, 1e-10)
}

type emptyMatrix struct{ r, c int }

func (e emptyMatrix) Dims() (int, int)        { return e.r, e.c }
func (e emptyMatrix) At(_, _ int) complex128 { return 0 }

func TestConvolveErrors(t *testing.T) {
	kernels := mat.NewCDense(5, 2, nil)
	signal := mustSignal(t, make([]float64, 10))

	tests := []struct {
		name    string
		kernels Matrix
		signal  Matrix
		opts    []Option
		want    error
	}{
		{"nil kernels", nil, signal, nil, ErrDimension},
		{"nil signal", kernels, nil, nil, ErrDimension},
		{"kernel without columns", emptyMatrix{5, 0}, signal, nil, ErrDimension},
		{"signal without channels", kernels, emptyMatrix{10, 0}, nil, ErrDimension},
		{"signal without samples", kernels, emptyMatrix{0, 1}, nil, ErrShapeMismatch},
		{"kernel without samples", emptyMatrix{0, 2}, signal, nil, ErrShapeMismatch},
		{"length too long", kernels, signal, []Option{WithKernelLengths([]int{5, 6})}, ErrShapeMismatch},
		{"length zero", kernels, signal, []Option{WithKernelLengths([]int{0, 5})}, ErrShapeMismatch},
		{"length count", kernels, signal, []Option{WithKernelLengths([]int{5})}, ErrShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cube, err := Convolve(tt.kernels, tt.signal, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if cube != nil {
				t.Fatal("expected nil cube on error")
			}
		})
	}

	if _, err := Transform(nil, signal); !errors.Is(err, ErrDimension) {
		t.Errorf("nil bank: expected ErrDimension, got %v", err)
	}
}
