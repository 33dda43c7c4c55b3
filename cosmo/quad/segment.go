package quad

// segment is one subinterval of the (possibly transformed) integration range.
type segment struct {
	lo, hi float64
	value  float64
	err    float64
}

// segmentHeap is a max-heap on err.
type segmentHeap []segment

func (h segmentHeap) Len() int           { return len(h) }
func (h segmentHeap) Less(i, j int) bool { return h[i].err > h[j].err }
func (h segmentHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *segmentHeap) Push(x any) {
	*h = append(*h, x.(segment))
}

func (h *segmentHeap) Pop() any {
	old := *h
	n := len(old)
	s := old[n-1]
	*h = old[:n-1]
	return s
}

func (h segmentHeap) totals() (value, err float64) {
	for _, s := range h {
		value += s.value
		err += s.err
	}
	return value, err
}
