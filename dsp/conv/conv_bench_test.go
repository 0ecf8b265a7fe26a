package conv

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-cwt/internal/testutil"
)

// Benchmark frequency-domain convolution across backends.
func BenchmarkConvolver(b *testing.B) {
	sizes := []struct {
		signal int
		kernel int
	}{
		{1024, 65},
		{4096, 257},
		{16384, 1025},
	}

	for _, backend := range Backends() {
		for _, size := range sizes {
			signal := testutil.DeterministicComplexNoise(1, 1, size.signal)
			kernel := testutil.DeterministicComplexNoise(2, 1, size.kernel)

			c, err := NewConvolver(kernel, size.signal, backend)
			if err != nil {
				b.Fatalf("NewConvolver failed: %v", err)
			}

			b.Run(fmt.Sprintf("%s/signal=%d_kernel=%d", backend.Name(), size.signal, size.kernel), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_, _ = c.ProcessMode(signal, ModeSame)
				}
			})
		}
	}
}

// Benchmark direct convolution for comparison.
func BenchmarkDirectComplex(b *testing.B) {
	signal := testutil.DeterministicComplexNoise(1, 1, 4096)
	kernel := testutil.DeterministicComplexNoise(2, 1, 65)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = DirectComplex(signal, kernel)
	}
}
