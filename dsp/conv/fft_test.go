package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-cwt/internal/testutil"
)

func TestBackendRoundTrip(t *testing.T) {
	for _, backend := range Backends() {
		for _, m := range []int{16, 60, 200} {
			n := backend.GoodSize(m)
			plan, err := backend.Plan(n)
			if err != nil {
				t.Fatalf("%s: Plan(%d) failed: %v", backend.Name(), n, err)
			}
			if plan.Len() != n {
				t.Fatalf("%s: Len = %d, want %d", backend.Name(), plan.Len(), n)
			}

			x := testutil.DeterministicComplexNoise(int64(n), 1, n)
			spec := make([]complex128, n)
			back := make([]complex128, n)

			if err := plan.Forward(spec, x); err != nil {
				t.Fatalf("%s: Forward failed: %v", backend.Name(), err)
			}
			if err := plan.Inverse(back, spec); err != nil {
				t.Fatalf("%s: Inverse failed: %v", backend.Name(), err)
			}

			testutil.RequireComplexNearlyEqual(t, back, x, 1e-10)
		}
	}
}

func TestBackendDCBin(t *testing.T) {
	for _, backend := range Backends() {
		plan, err := backend.Plan(16)
		if err != nil {
			t.Fatalf("%s: Plan failed: %v", backend.Name(), err)
		}

		x := make([]complex128, 16)
		for i := range x {
			x[i] = 1
		}
		spec := make([]complex128, 16)
		if err := plan.Forward(spec, x); err != nil {
			t.Fatalf("%s: Forward failed: %v", backend.Name(), err)
		}

		want := make([]complex128, 16)
		want[0] = 16
		testutil.RequireComplexNearlyEqual(t, spec, want, 1e-12)
	}
}

func TestBackendByName(t *testing.T) {
	for _, want := range Backends() {
		got, err := BackendByName(want.Name())
		if err != nil {
			t.Fatalf("BackendByName(%q) failed: %v", want.Name(), err)
		}
		if got.Name() != want.Name() {
			t.Errorf("BackendByName(%q) = %q", want.Name(), got.Name())
		}
	}

	if _, err := BackendByName("fftw"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestPlanLengthChecks(t *testing.T) {
	for _, backend := range []Backend{Gonum, GoDSP} {
		plan, err := backend.Plan(8)
		if err != nil {
			t.Fatalf("%s: Plan failed: %v", backend.Name(), err)
		}
		err = plan.Forward(make([]complex128, 8), make([]complex128, 4))
		if !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("%s: expected ErrLengthMismatch, got %v", backend.Name(), err)
		}
	}
}

func TestPlanCache(t *testing.T) {
	cache := NewPlanCache(nil)
	if cache.Name() != AlgoFFT.Name() {
		t.Fatalf("default backend = %q, want %q", cache.Name(), AlgoFFT.Name())
	}

	p1, err := cache.Plan(64)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	p2, _ := cache.Plan(64)
	if p1 != p2 {
		t.Error("expected cached plan to be reused")
	}

	if _, err := cache.Plan(128); err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if cache.Len() != 2 {
		t.Errorf("Len = %d, want 2", cache.Len())
	}
	if cache.GoodSize(100) != 128 {
		t.Errorf("GoodSize(100) = %d, want 128", cache.GoodSize(100))
	}
}
