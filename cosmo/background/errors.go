package background

import (
	"fmt"

	"github.com/cwbudde/algo-halo/cosmo/core"
)

func checkBlock(dst, src []float64, name string) error {
	if len(dst) != len(src) {
		return fmt.Errorf("background: dst and %s must have same length: %d vs %d", name, len(dst), len(src))
	}
	for _, v := range src {
		if err := core.CheckNonNegative(name, v); err != nil {
			return err
		}
	}
	return nil
}
