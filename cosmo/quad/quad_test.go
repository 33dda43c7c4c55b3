package quad

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-halo/cosmo/core"
	"github.com/stretchr/testify/require"
	gonumquad "gonum.org/v1/gonum/integrate/quad"
)

func TestIntegrateKnownIntegrals(t *testing.T) {
	tests := []struct {
		name string
		f    Integrand
		a, b float64
		want float64
	}{
		{name: "quintic", f: func(x float64) float64 { return x * x * x * x * x }, a: 0, b: 2, want: 64.0 / 6},
		{name: "exp", f: func(x float64) float64 { return math.Exp(-x) }, a: 0, b: math.Inf(1), want: 1},
		{name: "lorentzian", f: func(x float64) float64 { return 1 / (1 + x*x) }, a: 0, b: math.Inf(1), want: math.Pi / 2},
		{name: "damped cosine", f: func(x float64) float64 { return math.Exp(-x) * math.Cos(x) }, a: 0, b: math.Inf(1), want: 0.5},
		{name: "shifted lower bound", f: func(x float64) float64 { return 1 / (x * x) }, a: 1, b: math.Inf(1), want: 1},
		{name: "log singularity", f: func(x float64) float64 { return -math.Log(x) }, a: 0, b: 1, want: 1},
	}

	cfg := core.DefaultAccuracyConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Integrate(tt.f, tt.a, tt.b, cfg)
			require.NoError(t, err)
			require.InDelta(t, tt.want, res.Value, 1e-7)
			require.LessOrEqual(t, res.Intervals, cfg.Limit)
			require.Positive(t, res.Evaluations)
		})
	}
}

func TestIntegratePolynomialSingleInterval(t *testing.T) {
	res, err := Integrate(func(x float64) float64 { return 3*x*x - x + 2 }, -1, 1, core.DefaultAccuracyConfig())
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, 1, res.Intervals)
	require.Equal(t, lowOrder+highOrder, res.Evaluations)
	require.InDelta(t, 6.0, res.Value, 1e-13)
}

func TestIntegrateMatchesFixedRule(t *testing.T) {
	f := func(x float64) float64 { return math.Sin(3*x) * math.Exp(-x/4) }
	want := gonumquad.Fixed(f, 0, 10, 2000, nil, 0)

	res, err := Integrate(f, 0, 10, core.DefaultAccuracyConfig())
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, want, res.Value, 1e-9)
	require.LessOrEqual(t, res.AbsErr, core.DefaultAccuracyConfig().Target(res.Value))
}

func TestIntegrateBlockMatchesScalar(t *testing.T) {
	scalar := func(x float64) float64 { return x * math.Exp(-x*x) }
	block := func(dst, x []float64) {
		for i, v := range x {
			dst[i] = scalar(v)
		}
	}

	cfg := core.DefaultAccuracyConfig()
	rs, err := Integrate(scalar, 0, math.Inf(1), cfg)
	require.NoError(t, err)
	rb, err := IntegrateBlock(block, 0, math.Inf(1), cfg)
	require.NoError(t, err)

	require.Equal(t, rs, rb)
	require.InDelta(t, 0.5, rb.Value, 1e-9)
}

func TestIntegrateEmptyInterval(t *testing.T) {
	res, err := Integrate(math.Exp, 2, 2, core.DefaultAccuracyConfig())
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Zero(t, res.Value)
}

func TestIntegrateNonDecayingReportsNonConvergence(t *testing.T) {
	cfg := core.ApplyAccuracyOptions(core.WithLimit(50))
	res, err := Integrate(func(float64) float64 { return 1 }, 0, math.Inf(1), cfg)
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.LessOrEqual(t, res.Intervals, 50)
	require.Greater(t, res.AbsErr, cfg.Target(res.Value))
}

func TestIntegrateLooseToleranceStopsEarly(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(-x) * math.Cos(5*x) }

	tight, err := Integrate(f, 0, math.Inf(1), core.DefaultAccuracyConfig())
	require.NoError(t, err)
	loose, err := Integrate(f, 0, math.Inf(1), core.ApplyAccuracyOptions(core.WithTolerance(1e-3, 1e-3)))
	require.NoError(t, err)

	require.True(t, loose.Converged)
	require.LessOrEqual(t, loose.Evaluations, tight.Evaluations)
	require.InDelta(t, 1.0/26, loose.Value, 1e-3)
}

func TestIntegrateErrors(t *testing.T) {
	cfg := core.DefaultAccuracyConfig()

	_, err := Integrate(nil, 0, 1, cfg)
	require.ErrorIs(t, err, ErrNilIntegrand)

	for _, b := range [][2]float64{
		{1, 0},
		{math.NaN(), 1},
		{math.Inf(-1), 0},
		{0, math.Inf(-1)},
	} {
		_, err := Integrate(math.Exp, b[0], b[1], cfg)
		require.ErrorIs(t, err, ErrInvalidBounds, "bounds %v", b)
	}

	_, err = Integrate(func(x float64) float64 {
		if x > 0.5 {
			return math.NaN()
		}
		return x
	}, 0, 1, cfg)
	require.True(t, errors.Is(err, ErrNonFinite), "err = %v", err)
}
