package core

import (
	"errors"
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(2e11, 2e11*(1+1e-13), 0) {
		t.Fatal("expected relative comparison with default epsilon")
	}
}

func TestSafeSqrt(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "positive", in: 4, want: 2},
		{name: "zero", in: 0, want: 0},
		{name: "roundoff", in: -1e-300, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeSqrt(tt.in); got != tt.want {
				t.Fatalf("SafeSqrt(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLogspace(t *testing.T) {
	got, err := Logspace(0.1, 100, 4)
	if err != nil {
		t.Fatalf("Logspace: %v", err)
	}
	want := []float64{0.1, 1, 10, 100}
	for i := range want {
		if !NearlyEqual(got[i], want[i], 1e-12) {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := Logspace(0, 1, 3); !errors.Is(err, ErrInvalidDomain) {
		t.Fatalf("err = %v, want ErrInvalidDomain", err)
	}
}

func TestChecks(t *testing.T) {
	if err := CheckPositive("x", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := CheckNonNegative("x", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if err := CheckPositive("x", v); !errors.Is(err, ErrInvalidDomain) {
			t.Fatalf("CheckPositive(%v) = %v, want ErrInvalidDomain", v, err)
		}
	}
	if err := CheckNonNegative("x", -1e-30); !errors.Is(err, ErrInvalidDomain) {
		t.Fatalf("CheckNonNegative(-1e-30) = %v, want ErrInvalidDomain", err)
	}
}

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestApplyAccuracyOptions(t *testing.T) {
	cfg := ApplyAccuracyOptions(WithTolerance(1e-4, 1e-6), WithLimit(50))
	if cfg.EpsAbs != 1e-4 || cfg.EpsRel != 1e-6 {
		t.Fatalf("tolerance = (%v, %v), want (1e-4, 1e-6)", cfg.EpsAbs, cfg.EpsRel)
	}
	if cfg.Limit != 50 {
		t.Fatalf("limit = %d, want 50", cfg.Limit)
	}
}

func TestInvalidAccuracyOptionsIgnored(t *testing.T) {
	cfg := ApplyAccuracyOptions(WithTolerance(-1, -1), WithLimit(0), nil)
	def := DefaultAccuracyConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestAccuracyTarget(t *testing.T) {
	cfg := AccuracyConfig{EpsAbs: 1e-6, EpsRel: 1e-3}
	if got := cfg.Target(1); got != 1e-3 {
		t.Fatalf("Target(1) = %v, want 1e-3", got)
	}
	if got := cfg.Target(1e-5); got != 1e-6 {
		t.Fatalf("Target(1e-5) = %v, want 1e-6", got)
	}
}
