package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/cwbudde/algo-halo/cosmo/background"
	"github.com/cwbudde/algo-halo/cosmo/collapse"
	"github.com/cwbudde/algo-halo/cosmo/core"
	"github.com/cwbudde/algo-halo/cosmo/linear"
	"github.com/cwbudde/algo-halo/cosmo/variance"
)

func run(ctx context.Context, w io.Writer, logger *slog.Logger, opts options) error {
	if opts.n < 1 {
		return fmt.Errorf("need at least one radius, got n=%d", opts.n)
	}

	vopts := []variance.Option{
		variance.WithLogger(logger),
		variance.WithWorkers(opts.workers),
		variance.WithTolerance(opts.epsAbs, opts.epsRel),
	}

	spec, err := linear.New(opts.cosmo.Linear(), vopts...)
	if err != nil {
		return err
	}
	logger.Debug("normalised spectrum",
		"amplitude", spec.Amplitude(),
		"evaluations", spec.Normalisation().Evaluations,
	)

	radii, err := core.Logspace(opts.rmin, opts.rmax, opts.n)
	if err != nil {
		return err
	}
	masses := make([]float64, len(radii))
	if err := background.Masses(masses, radii, opts.cosmo.OmegaM); err != nil {
		return err
	}

	sig, err := variance.Sigmas(ctx, radii, spec.P, vopts...)
	if err != nil {
		return err
	}
	dsig, err := variance.DLnSigma2DLnRs(ctx, radii, spec.P, vopts...)
	if err != nil {
		return err
	}

	// sigmaV keeps its own looser default unless a tolerance was given.
	sv, err := variance.SigmaV(spec.P, vopts...)
	if err != nil {
		return err
	}

	a, err := background.ScaleFactorFromRedshift(opts.z)
	if err != nil {
		return err
	}
	omz, err := background.OmegaMatter(a, opts.cosmo.OmegaM)
	if err != nil {
		return err
	}
	dc, err := collapse.DeltaCNakamuraSuto(omz)
	if err != nil {
		return err
	}
	dv, err := collapse.DeltaVBryanNorman(omz)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "R [Mpc/h]\tM [Msun/h]\tsigma\tdlnsigma2/dlnR\tconverged\n")
	fmt.Fprintf(tw, "---------\t----------\t-----\t--------------\t---------\n")
	for i, r := range radii {
		fmt.Fprintf(tw, "%.4g\t%.4e\t%.6f\t%.6f\t%v\n",
			r, masses[i], sig[i].Value, dsig[i].Value, sig[i].Converged && dsig[i].Converged)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "\nsigma_V = %.6f Mpc/h (abs err %.2g)\nz = %g  Omega_m(z) = %.6f  delta_c = %.6f  Delta_v = %.4f\n",
		sv.Value, sv.AbsErr, opts.z, omz, dc, dv)
	return err
}
