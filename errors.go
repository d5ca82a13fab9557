package gcurve

import "errors"

var (
	// ErrNotImplemented is wrapped by the panic value of operations that are
	// deliberately left unimplemented.
	ErrNotImplemented = errors.New("not implemented")
	// ErrMalformed is wrapped by errors returned when decoding a spline fails.
	ErrMalformed = errors.New("malformed spline data")
)
