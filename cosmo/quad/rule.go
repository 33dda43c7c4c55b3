package quad

import gonumquad "gonum.org/v1/gonum/integrate/quad"

const (
	lowOrder  = 10
	highOrder = 21
)

// rulePair holds both Gauss–Legendre rules on [0, 1] laid out over a shared
// node slice, so a single block evaluation feeds both estimates.
type rulePair struct {
	nodes []float64
	low   []float64 // weights of the 10-point rule, zero on the 21-point nodes
	high  []float64 // weights of the 21-point rule, zero on the 10-point nodes
}

var gaussLegendre = newRulePair()

func newRulePair() rulePair {
	n := lowOrder + highOrder
	r := rulePair{
		nodes: make([]float64, n),
		low:   make([]float64, n),
		high:  make([]float64, n),
	}

	var legendre gonumquad.Legendre
	legendre.FixedLocations(r.nodes[:lowOrder], r.low[:lowOrder], 0, 1)
	legendre.FixedLocations(r.nodes[lowOrder:], r.high[lowOrder:], 0, 1)

	return r
}

func (r rulePair) size() int {
	return len(r.nodes)
}
