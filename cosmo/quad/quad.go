package quad

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/cwbudde/algo-halo/cosmo/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Integrand is a scalar function of one variable.
type Integrand func(x float64) float64

// BlockIntegrand writes f(x[i]) into dst[i] for every i.
type BlockIntegrand func(dst, x []float64)

// Result is the outcome of one adaptive integration.
type Result struct {
	Value       float64
	AbsErr      float64
	Evaluations int
	Intervals   int
	Converged   bool
}

// Integrate approximates the integral of f over [a, b]. b may be +Inf.
func Integrate(f Integrand, a, b float64, cfg core.AccuracyConfig) (Result, error) {
	if f == nil {
		return Result{}, ErrNilIntegrand
	}

	return IntegrateBlock(func(dst, x []float64) {
		for i, v := range x {
			dst[i] = f(v)
		}
	}, a, b, cfg)
}

// IntegrateBlock is Integrate for integrands that evaluate a whole rule at
// once.
func IntegrateBlock(f BlockIntegrand, a, b float64, cfg core.AccuracyConfig) (Result, error) {
	if f == nil {
		return Result{}, ErrNilIntegrand
	}
	if err := validateBounds(a, b); err != nil {
		return Result{}, err
	}
	if a == b {
		return Result{Converged: true}, nil
	}
	if cfg.Limit <= 0 {
		cfg.Limit = core.DefaultLimit
	}

	ev := newEvaluator(f, a, math.IsInf(b, 1))
	lo, hi := a, b
	if ev.infinite {
		lo, hi = 0, 1
	}

	first, err := ev.estimate(lo, hi)
	if err != nil {
		return Result{}, err
	}

	h := segmentHeap{first}
	value, errSum := first.value, first.err

	for {
		if errSum <= cfg.Target(value) {
			break
		}
		if h.Len() >= cfg.Limit {
			break
		}

		worst := heap.Pop(&h).(segment)
		mid := 0.5 * (worst.lo + worst.hi)
		if mid <= worst.lo || mid >= worst.hi {
			// No representable bisection left.
			heap.Push(&h, worst)
			break
		}

		left, err := ev.estimate(worst.lo, mid)
		if err != nil {
			return Result{}, err
		}
		right, err := ev.estimate(mid, worst.hi)
		if err != nil {
			return Result{}, err
		}

		heap.Push(&h, left)
		heap.Push(&h, right)
		value += left.value + right.value - worst.value
		errSum += left.err + right.err - worst.err
	}

	// Resum to drop the drift of the running updates.
	value, errSum = h.totals()

	return Result{
		Value:       value,
		AbsErr:      errSum,
		Evaluations: ev.calls * gaussLegendre.size(),
		Intervals:   h.Len(),
		Converged:   errSum <= cfg.Target(value),
	}, nil
}

type evaluator struct {
	f        BlockIntegrand
	a        float64
	infinite bool
	calls    int

	t   []float64
	x   []float64
	jac []float64
	fx  []float64
}

func newEvaluator(f BlockIntegrand, a float64, infinite bool) *evaluator {
	n := gaussLegendre.size()
	return &evaluator{
		f:        f,
		a:        a,
		infinite: infinite,
		t:        make([]float64, n),
		x:        make([]float64, n),
		jac:      make([]float64, n),
		fx:       make([]float64, n),
	}
}

// estimate applies both rules to [lo, hi] in integration coordinates.
func (e *evaluator) estimate(lo, hi float64) (segment, error) {
	width := hi - lo
	vecmath.ScaleBlock(e.t, gaussLegendre.nodes, width)
	for i := range e.t {
		e.t[i] += lo
	}

	if e.infinite {
		for i, t := range e.t {
			v := 1 - t
			if v <= 0 {
				e.x[i], e.jac[i] = e.a, 0
				continue
			}
			e.x[i] = e.a + t/v
			e.jac[i] = 1 / (v * v)
		}
	} else {
		copy(e.x, e.t)
	}

	e.f(e.fx, e.x)
	e.calls++

	for i, v := range e.fx {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return segment{}, fmt.Errorf("%w: f(%v) = %v", ErrNonFinite, e.x[i], v)
		}
	}
	if e.infinite {
		vecmath.MulBlockInPlace(e.fx, e.jac)
	}

	low := width * floats.Dot(gaussLegendre.low, e.fx)
	high := width * floats.Dot(gaussLegendre.high, e.fx)
	if math.IsInf(low, 0) || math.IsInf(high, 0) {
		return segment{}, fmt.Errorf("%w: overflow on [%v, %v]", ErrNonFinite, lo, hi)
	}

	return segment{
		lo:    lo,
		hi:    hi,
		value: high,
		err:   math.Abs(high - low),
	}, nil
}
