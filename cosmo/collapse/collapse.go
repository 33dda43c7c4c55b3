package collapse

import (
	"math"

	"github.com/cwbudde/algo-halo/cosmo/core"
)

const (
	// DeltaV0 is the Einstein–de Sitter virial overdensity, 18π² ≈ 178.
	DeltaV0 = 18 * math.Pi * math.Pi

	// DeltaC0 is the Einstein–de Sitter linear collapse threshold,
	// (3/20)(12π)^(2/3) ≈ 1.686.
	DeltaC0 = 1.686470199841145
)

// DeltaCNakamuraSuto is the ΛCDM fit of Nakamura & Suto (1997,
// astro-ph/9612074) for δ_c at matter density omegaMz. The cosmology
// dependence is very weak.
func DeltaCNakamuraSuto(omegaMz float64) (float64, error) {
	if err := core.CheckPositive("omega_m(z)", omegaMz); err != nil {
		return 0, err
	}
	return DeltaC0 * (1 + 0.012299*math.Log10(omegaMz)), nil
}

// DeltaVBryanNorman is the ΛCDM fit of Bryan & Norman (1998,
// astro-ph/9710107), converted from critical to background density.
// For omegaMz = 0.3 it gives Δ_v ≈ 330.
func DeltaVBryanNorman(omegaMz float64) (float64, error) {
	if err := core.CheckPositive("omega_m(z)", omegaMz); err != nil {
		return 0, err
	}
	x := omegaMz - 1
	return (DeltaV0 + 82*x - 39*x*x) / omegaMz, nil
}
