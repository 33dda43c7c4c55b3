package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDomain is wrapped by every argument validation failure in the
// cosmo packages so callers can test for it with errors.Is.
var ErrInvalidDomain = errors.New("invalid domain argument")

// CheckFinite fails for NaN or infinite v.
func CheckFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite: %v", ErrInvalidDomain, name, v)
	}
	return nil
}

// CheckPositive fails unless v is finite and > 0.
func CheckPositive(name string, v float64) error {
	if err := CheckFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s must be > 0: %v", ErrInvalidDomain, name, v)
	}
	return nil
}

// CheckNonNegative fails unless v is finite and >= 0.
func CheckNonNegative(name string, v float64) error {
	if err := CheckFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must be >= 0: %v", ErrInvalidDomain, name, v)
	}
	return nil
}
