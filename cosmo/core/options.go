package core

import "math"

const (
	// DefaultEpsAbs and DefaultEpsRel match the QUADPACK defaults
	// (sqrt of float64 machine epsilon, rounded).
	DefaultEpsAbs = 1.49e-8
	DefaultEpsRel = 1.49e-8

	// DefaultLimit bounds the number of subintervals an adaptive
	// integration may create.
	DefaultLimit = 200
)

// AccuracyConfig is the accuracy target shared by every quadrature issued
// for one computation.
type AccuracyConfig struct {
	EpsAbs float64
	EpsRel float64
	Limit  int
}

// AccuracyOption mutates an AccuracyConfig.
type AccuracyOption func(*AccuracyConfig)

// DefaultAccuracyConfig returns the default quadrature accuracy.
func DefaultAccuracyConfig() AccuracyConfig {
	return AccuracyConfig{
		EpsAbs: DefaultEpsAbs,
		EpsRel: DefaultEpsRel,
		Limit:  DefaultLimit,
	}
}

// WithTolerance sets the absolute and relative error targets.
// Negative values are ignored.
func WithTolerance(epsAbs, epsRel float64) AccuracyOption {
	return func(cfg *AccuracyConfig) {
		if epsAbs >= 0 {
			cfg.EpsAbs = epsAbs
		}
		if epsRel >= 0 {
			cfg.EpsRel = epsRel
		}
	}
}

// WithLimit sets the maximum number of subintervals.
func WithLimit(limit int) AccuracyOption {
	return func(cfg *AccuracyConfig) {
		if limit > 0 {
			cfg.Limit = limit
		}
	}
}

// ApplyAccuracyOptions applies zero or more options to the default config.
func ApplyAccuracyOptions(opts ...AccuracyOption) AccuracyConfig {
	cfg := DefaultAccuracyConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Target returns the error bound an integral of the given magnitude must meet.
func (c AccuracyConfig) Target(value float64) float64 {
	return math.Max(c.EpsAbs, c.EpsRel*math.Abs(value))
}
