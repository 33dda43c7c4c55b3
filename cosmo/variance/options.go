package variance

import (
	"log/slog"
	"runtime"

	"github.com/cwbudde/algo-halo/cosmo/core"
	"github.com/cwbudde/algo-halo/cosmo/window"
)

// DefaultSigmaVTolerance is the absolute and relative accuracy SigmaV uses
// unless overridden with WithTolerance. The unwindowed integral converges
// slowly, so the default is looser than for Sigma.
const DefaultSigmaVTolerance = 1e-4

// Option configures a variance computation.
type Option func(*config)

type config struct {
	accuracy core.AccuracyConfig
	xmin     float64
	workers  int
	logger   *slog.Logger
}

func defaultConfig() config {
	return config{
		accuracy: core.DefaultAccuracyConfig(),
		xmin:     window.SmallArgument,
		workers:  runtime.GOMAXPROCS(0),
	}
}

func sigmaVConfig() config {
	cfg := defaultConfig()
	cfg.accuracy.EpsAbs = DefaultSigmaVTolerance
	cfg.accuracy.EpsRel = DefaultSigmaVTolerance
	return cfg
}

// WithTolerance sets the absolute and relative quadrature accuracy.
// The same target applies to every integral of one call, including the
// normalising sigma inside DLnSigma2DLnR.
func WithTolerance(epsAbs, epsRel float64) Option {
	return func(c *config) {
		core.WithTolerance(epsAbs, epsRel)(&c.accuracy)
	}
}

// WithLimit bounds the number of quadrature subintervals per integral.
func WithLimit(limit int) Option {
	return func(c *config) {
		core.WithLimit(limit)(&c.accuracy)
	}
}

// WithWorkers bounds the number of radii integrated concurrently by Sigmas
// and DLnSigma2DLnRs.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithSmallArgument overrides the kR below which the window series is used.
func WithSmallArgument(xmin float64) Option {
	return func(c *config) {
		if xmin > 0 {
			c.xmin = xmin
		}
	}
}

// WithLogger sets the logger that receives convergence warnings.
// The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func applyOptions(cfg config, opts []Option) config {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (c config) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}
