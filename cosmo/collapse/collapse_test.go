package collapse

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-halo/cosmo/core"
	"github.com/cwbudde/algo-halo/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	require.InDelta(t, 3.0/20.0*math.Pow(12*math.Pi, 2.0/3.0), DeltaC0, 1e-14)
	require.InDelta(t, 177.65287921960845, DeltaV0, 1e-12)
}

func TestNakamuraSuto(t *testing.T) {
	dc, err := DeltaCNakamuraSuto(1)
	require.NoError(t, err)
	require.Equal(t, DeltaC0, dc)

	dc, err = DeltaCNakamuraSuto(0.3)
	require.NoError(t, err)
	testutil.RequireRelClose(t, dc, 1.6756247027694062, 1e-14)
}

func TestBryanNorman(t *testing.T) {
	dv, err := DeltaVBryanNorman(1)
	require.NoError(t, err)
	require.Equal(t, DeltaV0, dv)

	dv, err = DeltaVBryanNorman(0.3)
	require.NoError(t, err)
	testutil.RequireRelClose(t, dv, 337.14293073202816, 1e-14)
}

func TestMeadEinsteinDeSitterLimit(t *testing.T) {
	// With g/a = G/a = 1 only the constant p0 terms survive.
	for _, a := range []float64{0.25, 0.5, 1} {
		g := Growth{A: a, OmegaM: 1, G: a, GInt: a}

		dc, err := DeltaCMead(g)
		require.NoError(t, err)
		testutil.RequireRelClose(t, dc, (1+meadP2[0])*DeltaC0, 1e-15)

		dv, err := DeltaVMead(g)
		require.NoError(t, err)
		testutil.RequireRelClose(t, dv, DeltaV0, 1e-15)
	}

	lg := math.Log10(0.3)
	g := Growth{A: 1, OmegaM: 0.3, G: 1, GInt: 1}
	dc, err := DeltaCMead(g)
	require.NoError(t, err)
	testutil.RequireRelClose(t, dc, (1+meadP1[0]*lg+meadP2[0])*DeltaC0, 1e-14)

	dv, err := DeltaVMead(g)
	require.NoError(t, err)
	testutil.RequireRelClose(t, dv, (1+meadP3[0]*lg+meadP4[0]*lg*lg)*DeltaV0, 1e-14)
}

func TestMeadReferenceValues(t *testing.T) {
	g := Growth{A: 0.5, OmegaM: 0.3, FNu: 0.01, G: 0.4, GInt: 0.45}

	dc, err := DeltaCMead(g)
	require.NoError(t, err)
	testutil.RequireRelClose(t, dc, 1.6806753582290228, 1e-13)

	dv, err := DeltaVMead(g)
	require.NoError(t, err)
	testutil.RequireRelClose(t, dv, 243.35760283995947, 1e-13)
}

func TestMeadNeutrinoScaling(t *testing.T) {
	base := Growth{A: 1, OmegaM: 0.3, G: 0.78, GInt: 0.85}
	nu := base
	nu.FNu = 0.05

	dc0, err := DeltaCMead(base)
	require.NoError(t, err)
	dcNu, err := DeltaCMead(nu)
	require.NoError(t, err)
	testutil.RequireRelClose(t, dcNu/dc0, 1-0.041*0.05, 1e-14)

	dv0, err := DeltaVMead(base)
	require.NoError(t, err)
	dvNu, err := DeltaVMead(nu)
	require.NoError(t, err)
	testutil.RequireRelClose(t, dvNu/dv0, 1+0.763*0.05, 1e-14)
}

func TestDomainErrors(t *testing.T) {
	for _, om := range []float64{0, -0.3, math.NaN()} {
		_, err := DeltaCNakamuraSuto(om)
		require.ErrorIs(t, err, core.ErrInvalidDomain)
		_, err = DeltaVBryanNorman(om)
		require.ErrorIs(t, err, core.ErrInvalidDomain)
	}

	bad := []Growth{
		{A: 0, OmegaM: 0.3, G: 1, GInt: 1},
		{A: 1, OmegaM: 0, G: 1, GInt: 1},
		{A: 1, OmegaM: 0.3, FNu: -0.1, G: 1, GInt: 1},
		{A: 1, OmegaM: 0.3, FNu: 1, G: 1, GInt: 1},
		{A: 1, OmegaM: 0.3, G: math.Inf(1), GInt: 1},
	}
	for _, g := range bad {
		_, err := DeltaCMead(g)
		require.ErrorIs(t, err, core.ErrInvalidDomain, "%+v", g)
		_, err = DeltaVMead(g)
		require.ErrorIs(t, err, core.ErrInvalidDomain, "%+v", g)
	}
}
