package quad

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNilIntegrand  = errors.New("quad: integrand must not be nil")
	ErrInvalidBounds = errors.New("quad: invalid integration bounds")
	ErrNonFinite     = errors.New("quad: integrand returned a non-finite value")
)

func validateBounds(a, b float64) error {
	if math.IsNaN(a) || math.IsNaN(b) {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidBounds, a, b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, -1) {
		return fmt.Errorf("%w: lower bound must be finite: [%v, %v]", ErrInvalidBounds, a, b)
	}
	if a > b {
		return fmt.Errorf("%w: lower bound above upper: [%v, %v]", ErrInvalidBounds, a, b)
	}
	return nil
}
