// Package transfer implements the Eisenstein & Hu (1998, astro-ph/9709112)
// no-wiggle fit to the linear matter transfer function.
package transfer

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-halo/cosmo/core"
)

// DefaultTCMB is the CMB temperature in Kelvin used when Params.TCMB is zero.
const DefaultTCMB = 2.725

// Params are the cosmological inputs of the fit.
type Params struct {
	H        float64 // H0 / (100 km/s/Mpc)
	OmegaMH2 float64 // physical matter density, wm = Omega_m h^2
	OmegaBH2 float64 // physical baryon density, wb = Omega_b h^2
	TCMB     float64 // Kelvin
}

// Validate checks the parameters. A zero TCMB is accepted and means DefaultTCMB.
func (p Params) Validate() error {
	if err := core.CheckPositive("h", p.H); err != nil {
		return err
	}
	if err := core.CheckPositive("omega_m h^2", p.OmegaMH2); err != nil {
		return err
	}
	if err := core.CheckNonNegative("omega_b h^2", p.OmegaBH2); err != nil {
		return err
	}
	if p.OmegaBH2 > p.OmegaMH2 {
		return fmt.Errorf("%w: omega_b h^2 exceeds omega_m h^2: %v > %v", core.ErrInvalidDomain, p.OmegaBH2, p.OmegaMH2)
	}
	if p.TCMB != 0 {
		return core.CheckPositive("T_CMB", p.TCMB)
	}
	return nil
}

// coefficients are the k-independent parts of the fit.
type coefficients struct {
	h     float64
	wm    float64
	s     float64
	alpha float64
	theta float64 // (T_CMB/2.7)^2
}

func newCoefficients(p Params) (coefficients, error) {
	if err := p.Validate(); err != nil {
		return coefficients{}, err
	}
	tcmb := p.TCMB
	if tcmb == 0 {
		tcmb = DefaultTCMB
	}

	wm, wb := p.OmegaMH2, p.OmegaBH2
	rb := wb / wm
	theta := tcmb / 2.7

	return coefficients{
		h:  p.H,
		wm: wm,
		// Eq. 26: approximate sound horizon [Mpc].
		s: 44.5 * math.Log(9.83/wm) / math.Sqrt(1+10*math.Pow(wb, 0.75)),
		// Eq. 31.
		alpha: 1 - 0.328*math.Log(431*wm)*rb + 0.38*math.Log(22.3*wm)*rb*rb,
		theta: theta * theta,
	}, nil
}

func (c coefficients) eval(k float64) float64 {
	ks := 0.43 * k * c.s * c.h
	ks2 := ks * ks
	gamma := (c.wm / c.h) * (c.alpha + (1-c.alpha)/(1+ks2*ks2)) // Eq. 30
	q := k * c.theta / gamma                                     // Eq. 28
	l := math.Log(2*math.E + 1.8*q)                              // Eq. 29
	cq := 14.2 + 731/(1+62.5*q)                                  // Eq. 29
	return l / (l + cq*q*q)                                      // Eq. 29
}

// NoWiggle returns the transfer function at wavenumber k [h/Mpc].
func NoWiggle(k float64, p Params) (float64, error) {
	if err := core.CheckNonNegative("k", k); err != nil {
		return 0, err
	}
	c, err := newCoefficients(p)
	if err != nil {
		return 0, err
	}
	return c.eval(k), nil
}

// NoWiggleBlock writes the transfer function at k[i] into dst[i].
func NoWiggleBlock(dst, k []float64, p Params) error {
	if len(dst) != len(k) {
		return fmt.Errorf("transfer: dst and k must have same length: %d vs %d", len(dst), len(k))
	}
	c, err := newCoefficients(p)
	if err != nil {
		return err
	}
	for i, v := range k {
		if err := core.CheckNonNegative("k", v); err != nil {
			return err
		}
		dst[i] = c.eval(v)
	}
	return nil
}

// Func returns the transfer function as a closure with the k-independent
// coefficients computed once.
func Func(p Params) (func(k float64) float64, error) {
	c, err := newCoefficients(p)
	if err != nil {
		return nil, err
	}
	return c.eval, nil
}
