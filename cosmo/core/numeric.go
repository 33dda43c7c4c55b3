package core

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// SafeSqrt returns sqrt(x), clamping small negative round-off to zero.
func SafeSqrt(x float64) float64 {
	if x <= 0 {
		return 0
	}

	return math.Sqrt(x)
}

// Logspace returns n logarithmically spaced values from lo to hi inclusive.
// Both bounds must be positive.
func Logspace(lo, hi float64, n int) ([]float64, error) {
	if err := CheckPositive("lower bound", lo); err != nil {
		return nil, err
	}
	if err := CheckPositive("upper bound", hi); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}
	if n == 1 {
		return []float64{lo}, nil
	}

	return floats.LogSpan(make([]float64, n), lo, hi), nil
}
