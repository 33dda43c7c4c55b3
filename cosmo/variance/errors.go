package variance

import (
	"errors"

	"github.com/cwbudde/algo-halo/cosmo/core"
)

var (
	ErrNilPowerSpectrum = errors.New("variance: power spectrum must not be nil")
	ErrZeroVariance     = errors.New("variance: sigma is zero, logarithmic derivative undefined")
)

func validate(r float64, pk PowerSpectrum) error {
	if pk == nil {
		return ErrNilPowerSpectrum
	}
	return core.CheckPositive("radius", r)
}
