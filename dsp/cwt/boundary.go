package cwt

import "math/cmplx"

// extend returns x padded by ext samples on each side according to b.
// With BoundaryZero the padding is left to the convolution itself and x is
// returned unchanged.
func extend(x []complex128, ext int, b Boundary) []complex128 {
	if ext == 0 || b != BoundaryMirror {
		return x
	}
	n := len(x)
	out := make([]complex128, n+2*ext)
	for i := range out {
		out[i] = x[reflectIndex(i-ext, n)]
	}
	return out
}

// reflectIndex maps i onto [0, n) by reflecting about the end samples
// without repeating them: -1 -> 1, n -> n-2.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}

// interpolateNaN fills NaN samples of x in place by linear interpolation
// between the nearest valid neighbors. Samples before the first or after
// the last valid one copy it. If no sample is valid, x is zeroed.
func interpolateNaN(x []complex128) {
	prev := -1
	for i, v := range x {
		if cmplx.IsNaN(v) {
			continue
		}
		switch {
		case prev < 0:
			for j := range i {
				x[j] = v
			}
		case i-prev > 1:
			a := x[prev]
			span := float64(i - prev)
			for j := prev + 1; j < i; j++ {
				w := complex(float64(j-prev)/span, 0)
				x[j] = a + (v-a)*w
			}
		}
		prev = i
	}

	if prev < 0 {
		for i := range x {
			x[i] = 0
		}
		return
	}
	for j := prev + 1; j < len(x); j++ {
		x[j] = x[prev]
	}
}

// hasNaN reports whether any sample has a NaN part.
func hasNaN(x []complex128) bool {
	for _, v := range x {
		if cmplx.IsNaN(v) {
			return true
		}
	}
	return false
}
