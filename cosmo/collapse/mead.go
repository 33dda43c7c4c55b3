package collapse

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-halo/cosmo/core"
)

// Growth holds the inputs of the Mead (2017, arXiv:1606.05345) fits, all
// evaluated at the epoch of interest.
type Growth struct {
	A      float64 // scale factor
	OmegaM float64 // matter density parameter at A
	FNu    float64 // massive neutrino fraction of the matter density
	G      float64 // linear growth factor, normalised so that G = a in EdS
	GInt   float64 // integrated growth, normalised so that GInt = a in EdS
}

func (g Growth) validate() error {
	if err := core.CheckPositive("scale factor", g.A); err != nil {
		return err
	}
	if err := core.CheckPositive("omega_m", g.OmegaM); err != nil {
		return err
	}
	if err := core.CheckNonNegative("f_nu", g.FNu); err != nil {
		return err
	}
	if g.FNu >= 1 {
		return fmt.Errorf("%w: f_nu must be < 1: %v", core.ErrInvalidDomain, g.FNu)
	}
	if err := core.CheckFinite("g", g.G); err != nil {
		return err
	}
	return core.CheckFinite("G", g.GInt)
}

// correction is the polynomial of Mead (2017) App. A.
type correction [4]float64

func (p correction) at(x, y float64) float64 {
	return p[0] + p[1]*(1-x) + p[2]*(1-x)*(1-x) + p[3]*(1-y)
}

// Mead (2017) App. A coefficient sets: p1, p2 for δ_c and p3, p4 for Δ_v.
var (
	meadP1 = correction{-0.0069, -0.0208, 0.0312, 0.0021}
	meadP2 = correction{0.0001, -0.0647, -0.0417, 0.0646}
	meadP3 = correction{-0.79, -10.17, 2.51, 6.51}
	meadP4 = correction{-1.89, 0.38, 18.8, -15.87}
)

// DeltaCMead returns δ_c from the Mead (2017) fit.
func DeltaCMead(g Growth) (float64, error) {
	if err := g.validate(); err != nil {
		return 0, err
	}
	x, y := g.G/g.A, g.GInt/g.A
	lg := math.Log10(g.OmegaM)

	dc := 1 + meadP1.at(x, y)*lg + meadP2.at(x, y)
	return dc * DeltaC0 * (1 - 0.041*g.FNu), nil
}

// DeltaVMead returns Δ_v from the Mead (2017) fit.
func DeltaVMead(g Growth) (float64, error) {
	if err := g.validate(); err != nil {
		return 0, err
	}
	x, y := g.G/g.A, g.GInt/g.A
	lg := math.Log10(g.OmegaM)

	dv := 1 + meadP3.at(x, y)*lg + meadP4.at(x, y)*lg*lg
	return dv * DeltaV0 * (1 + 0.763*g.FNu), nil
}
