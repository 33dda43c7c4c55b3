package variance

import (
	"context"
	"fmt"
	"math"

	"github.com/cwbudde/algo-halo/cosmo/core"
	"github.com/cwbudde/algo-halo/cosmo/quad"
	"github.com/cwbudde/algo-halo/cosmo/window"
	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
)

// PowerSpectrum maps a wavenumber k [h/Mpc] to a non-negative spectral
// density [(Mpc/h)^3].
type PowerSpectrum func(k float64) float64

// Estimate is a quadrature-derived value with its diagnostics.
type Estimate struct {
	Value       float64
	AbsErr      float64
	Evaluations int
	Converged   bool
}

const twoPiSquared = 2 * math.Pi * math.Pi

// Sigma returns the rms linear overdensity smoothed on comoving radius r [Mpc/h].
func Sigma(r float64, pk PowerSpectrum, opts ...Option) (Estimate, error) {
	return sigma(r, pk, applyOptions(defaultConfig(), opts))
}

// Sigmas evaluates Sigma for every radius concurrently. The result has the
// order of radii. The first failure cancels outstanding radii.
func Sigmas(ctx context.Context, radii []float64, pk PowerSpectrum, opts ...Option) ([]Estimate, error) {
	return forEachRadius(ctx, radii, pk, applyOptions(defaultConfig(), opts), sigma)
}

// DLnSigma2DLnR returns d ln σ² / d ln R at radius r. The normalising σ(r)
// is integrated with the same spectrum and accuracy target.
func DLnSigma2DLnR(r float64, pk PowerSpectrum, opts ...Option) (Estimate, error) {
	return dlnSigma2(r, pk, applyOptions(defaultConfig(), opts))
}

// DLnSigma2DLnRs evaluates DLnSigma2DLnR for every radius concurrently.
func DLnSigma2DLnRs(ctx context.Context, radii []float64, pk PowerSpectrum, opts ...Option) ([]Estimate, error) {
	return forEachRadius(ctx, radii, pk, applyOptions(defaultConfig(), opts), dlnSigma2)
}

// SigmaV returns the 1-D linear velocity (displacement) dispersion,
// sqrt(∫P dk / 2π²) / √3. Its accuracy defaults to DefaultSigmaVTolerance.
func SigmaV(pk PowerSpectrum, opts ...Option) (Estimate, error) {
	if pk == nil {
		return Estimate{}, ErrNilPowerSpectrum
	}
	cfg := applyOptions(sigmaVConfig(), opts)

	res, err := quad.Integrate(quad.Integrand(pk), 0, math.Inf(1), cfg.accuracy)
	if err != nil {
		return Estimate{}, fmt.Errorf("variance: sigmaV: %w", err)
	}
	cfg.report("sigmaV", 0, res)

	s := core.SafeSqrt(res.Value/twoPiSquared) / math.Sqrt(3)
	return Estimate{
		Value:       s,
		AbsErr:      sqrtErr(s*math.Sqrt(3), res.AbsErr/twoPiSquared) / math.Sqrt(3),
		Evaluations: res.Evaluations,
		Converged:   res.Converged,
	}, nil
}

// Values extracts the Value of every estimate.
func Values(est []Estimate) []float64 {
	out := make([]float64, len(est))
	for i, e := range est {
		out[i] = e.Value
	}
	return out
}

func sigma(r float64, pk PowerSpectrum, cfg config) (Estimate, error) {
	if err := validate(r, pk); err != nil {
		return Estimate{}, err
	}

	res, err := quad.IntegrateBlock(sigmaIntegrand(r, pk, cfg.xmin), 0, math.Inf(1), cfg.accuracy)
	if err != nil {
		return Estimate{}, fmt.Errorf("variance: sigma(R=%g): %w", r, err)
	}
	cfg.report("sigma", r, res)

	s := core.SafeSqrt(res.Value / twoPiSquared)
	return Estimate{
		Value:       s,
		AbsErr:      sqrtErr(s, res.AbsErr/twoPiSquared),
		Evaluations: res.Evaluations,
		Converged:   res.Converged,
	}, nil
}

func dlnSigma2(r float64, pk PowerSpectrum, cfg config) (Estimate, error) {
	if err := validate(r, pk); err != nil {
		return Estimate{}, err
	}

	res, err := quad.IntegrateBlock(dsigmaIntegrand(r, pk, cfg.xmin), 0, math.Inf(1), cfg.accuracy)
	if err != nil {
		return Estimate{}, fmt.Errorf("variance: dlnsigma2/dlnR(R=%g): %w", r, err)
	}
	cfg.report("dlnsigma2_dlnR", r, res)

	s, err := sigma(r, pk, cfg)
	if err != nil {
		return Estimate{}, err
	}
	if s.Value == 0 {
		return Estimate{}, fmt.Errorf("%w (R=%g)", ErrZeroVariance, r)
	}

	ps := math.Pi * s.Value
	d := r * res.Value / (ps * ps)

	rel := 2 * s.AbsErr / s.Value
	if res.Value != 0 {
		rel += res.AbsErr / math.Abs(res.Value)
	}

	return Estimate{
		Value:       d,
		AbsErr:      math.Abs(d) * rel,
		Evaluations: res.Evaluations + s.Evaluations,
		Converged:   res.Converged && s.Converged,
	}, nil
}

type radiusFunc func(r float64, pk PowerSpectrum, cfg config) (Estimate, error)

func forEachRadius(ctx context.Context, radii []float64, pk PowerSpectrum, cfg config, fn radiusFunc) ([]Estimate, error) {
	if pk == nil {
		return nil, ErrNilPowerSpectrum
	}

	out := make([]Estimate, len(radii))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for i, r := range radii {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			e, err := fn(r, pk, cfg)
			if err != nil {
				return fmt.Errorf("radius %d: %w", i, err)
			}
			out[i] = e
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// sigmaIntegrand evaluates P(k) k² W(kR)² over a block of k.
func sigmaIntegrand(r float64, pk PowerSpectrum, xmin float64) quad.BlockIntegrand {
	var kr []float64
	return func(dst, k []float64) {
		kr = core.EnsureLen(kr, len(k))
		vecmath.ScaleBlock(kr, k, r)
		window.TophatSquaredBlock(dst, kr, window.WithSmallArgument(xmin))
		for i, v := range k {
			dst[i] *= pk(v) * v * v
		}
	}
}

// dsigmaIntegrand evaluates P(k) k³ W(kR) W'(kR) over a block of k.
func dsigmaIntegrand(r float64, pk PowerSpectrum, xmin float64) quad.BlockIntegrand {
	var kr, scratch []float64
	return func(dst, k []float64) {
		kr = core.EnsureLen(kr, len(k))
		scratch = core.EnsureLen(scratch, len(k))
		vecmath.ScaleBlock(kr, k, r)
		window.TophatProductBlock(dst, scratch, kr, window.WithSmallArgument(xmin))
		for i, v := range k {
			dst[i] *= pk(v) * v * v * v
		}
	}
}

// sqrtErr propagates an absolute error on s² to s.
func sqrtErr(s, errS2 float64) float64 {
	if s == 0 {
		return core.SafeSqrt(errS2)
	}
	return errS2 / (2 * s)
}

func (c config) report(quantity string, r float64, res quad.Result) {
	if res.Converged {
		return
	}
	c.log().Warn("quadrature did not converge",
		"quantity", quantity,
		"radius", r,
		"value", res.Value,
		"abs_err", res.AbsErr,
		"intervals", res.Intervals,
		"evaluations", res.Evaluations,
		"epsabs", c.accuracy.EpsAbs,
		"epsrel", c.accuracy.EpsRel,
	)
}
