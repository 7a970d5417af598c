package lambertw

import "github.com/pkg/errors"

// AmbiguousSignError is returned when the certified bisection loop cannot
// determine the sign of w*e^w - x at a midpoint even at the high-precision
// tier. This should not occur for any finite, in-domain x; if it does, it
// indicates a bug in the bracket construction (component 4) rather than an
// expected run-time condition.
type AmbiguousSignError struct {
	X float64
}

func (e *AmbiguousSignError) Error() string {
	return errors.Errorf("lambertw: ambiguous sign at x = %v, even at high precision", e.X).Error()
}

func newAmbiguousSignError(x float64) error {
	return &AmbiguousSignError{X: x}
}
