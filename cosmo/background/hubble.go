package background

import (
	"math"

	"github.com/cwbudde/algo-halo/cosmo/core"
)

// HubbleFrac calculates h(z) = H(z)/H0 for a universe with matter and a
// cosmological constant only:
// H(z)^2 = H0^2 (OmegaM (1+z)^3 + OmegaL).
func HubbleFrac(omegaM, omegaL, z float64) (float64, error) {
	if err := core.CheckPositive("omega_m", omegaM); err != nil {
		return 0, err
	}
	if err := core.CheckNonNegative("omega_l", omegaL); err != nil {
		return 0, err
	}
	a, err := ScaleFactorFromRedshift(z)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(omegaM/(a*a*a) + omegaL), nil
}

// OmegaMatter returns the matter density parameter at scale factor a in a
// flat universe whose z=0 value is omegaM.
func OmegaMatter(a, omegaM float64) (float64, error) {
	if err := core.CheckPositive("scale factor", a); err != nil {
		return 0, err
	}
	if err := core.CheckPositive("omega_m", omegaM); err != nil {
		return 0, err
	}
	m := omegaM / (a * a * a)
	return m / (m + 1 - omegaM), nil
}
