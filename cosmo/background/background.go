package background

import (
	"math"

	"github.com/cwbudde/algo-halo/cosmo/core"
	"github.com/cwbudde/algo-vecmath"
)

// RhoCritical is the present-day critical density in Msun/h / (Mpc/h)^3.
const RhoCritical = 2.77536627e11

// RedshiftFromScaleFactor returns z = 1/a - 1.
func RedshiftFromScaleFactor(a float64) (float64, error) {
	if err := core.CheckPositive("scale factor", a); err != nil {
		return 0, err
	}
	return -1 + 1/a, nil
}

// ScaleFactorFromRedshift returns a = 1/(1+z).
func ScaleFactorFromRedshift(z float64) (float64, error) {
	if err := core.CheckFinite("redshift", z); err != nil {
		return 0, err
	}
	if err := core.CheckPositive("1+z", 1+z); err != nil {
		return 0, err
	}
	return 1 / (1 + z), nil
}

// ComovingMatterDensity returns the time-independent comoving matter density
// for a z=0 matter density parameter omegaM.
func ComovingMatterDensity(omegaM float64) (float64, error) {
	if err := core.CheckPositive("omega_m", omegaM); err != nil {
		return 0, err
	}
	return RhoCritical * omegaM, nil
}

// LagrangianRadius returns the radius of the homogeneous sphere holding mass m.
func LagrangianRadius(m, omegaM float64) (float64, error) {
	if err := core.CheckNonNegative("mass", m); err != nil {
		return 0, err
	}
	rho, err := ComovingMatterDensity(omegaM)
	if err != nil {
		return 0, err
	}
	return math.Cbrt(3 * m / (4 * math.Pi * rho)), nil
}

// Mass returns the mass inside a homogeneous sphere of radius r.
func Mass(r, omegaM float64) (float64, error) {
	if err := core.CheckNonNegative("radius", r); err != nil {
		return 0, err
	}
	rho, err := ComovingMatterDensity(omegaM)
	if err != nil {
		return 0, err
	}
	return 4.0 / 3.0 * math.Pi * r * r * r * rho, nil
}

// LagrangianRadii writes LagrangianRadius(m[i], omegaM) into dst[i].
func LagrangianRadii(dst, m []float64, omegaM float64) error {
	if err := checkBlock(dst, m, "mass"); err != nil {
		return err
	}
	rho, err := ComovingMatterDensity(omegaM)
	if err != nil {
		return err
	}

	vecmath.ScaleBlock(dst, m, 3/(4*math.Pi*rho))
	for i, v := range dst {
		dst[i] = math.Cbrt(v)
	}
	return nil
}

// Masses writes Mass(r[i], omegaM) into dst[i].
func Masses(dst, r []float64, omegaM float64) error {
	if err := checkBlock(dst, r, "radius"); err != nil {
		return err
	}
	rho, err := ComovingMatterDensity(omegaM)
	if err != nil {
		return err
	}

	for i, v := range r {
		dst[i] = v * v * v
	}
	vecmath.ScaleBlockInPlace(dst, 4.0/3.0*math.Pi*rho)
	return nil
}
