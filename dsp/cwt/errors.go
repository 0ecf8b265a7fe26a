package cwt

import "errors"

// Errors returned by the transform.
var (
	// ErrShapeMismatch reports inputs whose sizes do not fit together:
	// kernel lengths that exceed the kernel matrix, an empty signal, or
	// cubes of different shapes.
	ErrShapeMismatch = errors.New("cwt: shape mismatch")

	// ErrDimension reports inputs that are not proper 2-D arrays.
	ErrDimension = errors.New("cwt: dimension error")
)
