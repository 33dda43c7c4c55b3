package testutil

import "math"

// Constant returns a flat spectrum P(k) = amplitude.
func Constant(amplitude float64) func(float64) float64 {
	return func(float64) float64 { return amplitude }
}

// Band returns amplitude for 0 <= k <= kmax and zero above.
func Band(amplitude, kmax float64) func(float64) float64 {
	return func(k float64) float64 {
		if k > kmax {
			return 0
		}
		return amplitude
	}
}

// InversePower returns P(k) = 1/(1+k)^n.
func InversePower(n float64) func(float64) float64 {
	return func(k float64) float64 {
		return math.Pow(1+k, -n)
	}
}

// CDMLike returns a smooth spectrum with the qualitative shape of a linear
// matter spectrum: P ~ k at small k, P ~ k^-3 at large k, peaking near k0.
func CDMLike(amplitude, k0 float64) func(float64) float64 {
	return func(k float64) float64 {
		q := k / k0
		return amplitude * q / math.Pow(1+q*q, 2)
	}
}
