package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// SmallArgument is the default |x| below which the series forms are used.
const SmallArgument = 1e-5

// Option configures block evaluation.
type Option func(*config)

type config struct {
	xmin float64
}

func defaultConfig() config {
	return config{xmin: SmallArgument}
}

// WithSmallArgument overrides the series cutoff. Non-positive values are ignored.
func WithSmallArgument(xmin float64) Option {
	return func(c *config) {
		if xmin > 0 {
			c.xmin = xmin
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Tophat returns W(x).
func Tophat(x float64) float64 {
	return TophatCutoff(x, SmallArgument)
}

// DTophat returns dW/dx.
func DTophat(x float64) float64 {
	return DTophatCutoff(x, SmallArgument)
}

// TophatCutoff returns W(x) using the series 1 - x^2/10 for |x| < xmin.
func TophatCutoff(x, xmin float64) float64 {
	if math.Abs(x) < xmin {
		return 1 - x*x/10
	}

	sin, cos := math.Sincos(x)
	return 3 * (sin - x*cos) / (x * x * x)
}

// DTophatCutoff returns dW/dx using the series -x/5 + x^3/70 for |x| < xmin.
func DTophatCutoff(x, xmin float64) float64 {
	if math.Abs(x) < xmin {
		return -x/5 + x*x*x/70
	}

	sin, cos := math.Sincos(x)
	x2 := x * x
	return 3 * ((x2-3)*sin + 3*x*cos) / (x2 * x2)
}

// TophatBlock writes W(x[i]) into dst[i]. dst and x must have equal length.
func TophatBlock(dst, x []float64, opts ...Option) {
	checkLen(dst, x)
	cfg := applyOptions(opts)
	for i, v := range x {
		dst[i] = TophatCutoff(v, cfg.xmin)
	}
}

// DTophatBlock writes dW/dx(x[i]) into dst[i]. dst and x must have equal length.
func DTophatBlock(dst, x []float64, opts ...Option) {
	checkLen(dst, x)
	cfg := applyOptions(opts)
	for i, v := range x {
		dst[i] = DTophatCutoff(v, cfg.xmin)
	}
}

// TophatSquaredBlock writes W(x[i])^2 into dst[i].
func TophatSquaredBlock(dst, x []float64, opts ...Option) {
	TophatBlock(dst, x, opts...)
	vecmath.MulBlockInPlace(dst, dst)
}

// TophatProductBlock writes W(x[i]) W'(x[i]) into dst[i]. scratch must have
// the same length as x and is overwritten.
func TophatProductBlock(dst, scratch, x []float64, opts ...Option) {
	TophatBlock(dst, x, opts...)
	DTophatBlock(scratch, x, opts...)
	vecmath.MulBlockInPlace(dst, scratch)
}

func checkLen(dst, x []float64) {
	if len(dst) != len(x) {
		panic("window: dst and x must have same length")
	}
}
