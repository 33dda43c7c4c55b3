// Package linear builds a linear matter power spectrum from the no-wiggle
// transfer function, a primordial tilt and a σ8 normalisation.
package linear

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-halo/cosmo/core"
	"github.com/cwbudde/algo-halo/cosmo/transfer"
	"github.com/cwbudde/algo-halo/cosmo/variance"
)

// NormalisationRadius is the tophat radius [Mpc/h] at which Sigma8 is defined.
const NormalisationRadius = 8.0

// Config describes a no-wiggle ΛCDM linear spectrum
// P(k) = A k^Ns T(k)^2.
type Config struct {
	Transfer transfer.Params
	Ns       float64
	Sigma8   float64
}

// Spectrum is a normalised linear power spectrum.
type Spectrum struct {
	amplitude float64
	ns        float64
	tk        func(float64) float64
	sigma8    variance.Estimate
}

// New fixes the amplitude so that σ(8 Mpc/h) equals cfg.Sigma8. The
// options control the normalising integral.
func New(cfg Config, opts ...variance.Option) (*Spectrum, error) {
	if err := core.CheckFinite("n_s", cfg.Ns); err != nil {
		return nil, err
	}
	if err := core.CheckPositive("sigma_8", cfg.Sigma8); err != nil {
		return nil, err
	}
	tk, err := transfer.Func(cfg.Transfer)
	if err != nil {
		return nil, err
	}

	// The unit-amplitude integral is tiny, so only a relative target is
	// meaningful; callers may still override it.
	opts = append([]variance.Option{variance.WithTolerance(0, core.DefaultEpsRel)}, opts...)

	s := &Spectrum{amplitude: 1, ns: cfg.Ns, tk: tk}
	unit, err := variance.Sigma(NormalisationRadius, s.P, opts...)
	if err != nil {
		return nil, fmt.Errorf("linear: normalising spectrum: %w", err)
	}
	if unit.Value == 0 {
		return nil, fmt.Errorf("linear: normalising spectrum: %w", variance.ErrZeroVariance)
	}

	ratio := cfg.Sigma8 / unit.Value
	s.amplitude = ratio * ratio
	s.sigma8 = variance.Estimate{
		Value:       cfg.Sigma8,
		AbsErr:      unit.AbsErr * ratio,
		Evaluations: unit.Evaluations,
		Converged:   unit.Converged,
	}
	return s, nil
}

// P returns the power at wavenumber k [h/Mpc]; zero for k <= 0.
func (s *Spectrum) P(k float64) float64 {
	if k <= 0 {
		return 0
	}
	t := s.tk(k)
	return s.amplitude * math.Pow(k, s.ns) * t * t
}

// Amplitude returns A.
func (s *Spectrum) Amplitude() float64 {
	return s.amplitude
}

// Normalisation returns the diagnostics of the σ8 integral.
func (s *Spectrum) Normalisation() variance.Estimate {
	return s.sigma8
}
