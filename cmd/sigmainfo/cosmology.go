package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-halo/cosmo/linear"
	"github.com/cwbudde/algo-halo/cosmo/transfer"
	"gopkg.in/yaml.v3"
)

// Cosmology is the on-disk and on-flag description of the model.
type Cosmology struct {
	H      float64 `yaml:"h"`
	OmegaM float64 `yaml:"omega_m"`
	OmegaB float64 `yaml:"omega_b"`
	Ns     float64 `yaml:"n_s"`
	Sigma8 float64 `yaml:"sigma_8"`
	TCMB   float64 `yaml:"t_cmb"`
}

// DefaultCosmology is a flat ΛCDM model close to Planck 2018.
func DefaultCosmology() Cosmology {
	return Cosmology{
		H:      0.674,
		OmegaM: 0.315,
		OmegaB: 0.049,
		Ns:     0.965,
		Sigma8: 0.811,
		TCMB:   transfer.DefaultTCMB,
	}
}

// LoadCosmology reads a YAML file on top of DefaultCosmology.
func LoadCosmology(path string) (Cosmology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Cosmology{}, err
	}

	c := DefaultCosmology()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Cosmology{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// Override returns c with every field whose flag was set taken from flags.
func (c Cosmology) Override(flags Cosmology, changed func(name string) bool) Cosmology {
	if changed("h") {
		c.H = flags.H
	}
	if changed("omega-m") {
		c.OmegaM = flags.OmegaM
	}
	if changed("omega-b") {
		c.OmegaB = flags.OmegaB
	}
	if changed("ns") {
		c.Ns = flags.Ns
	}
	if changed("sigma8") {
		c.Sigma8 = flags.Sigma8
	}
	if changed("tcmb") {
		c.TCMB = flags.TCMB
	}
	return c
}

// Linear converts to the spectrum configuration.
func (c Cosmology) Linear() linear.Config {
	h2 := c.H * c.H
	return linear.Config{
		Transfer: transfer.Params{
			H:        c.H,
			OmegaMH2: c.OmegaM * h2,
			OmegaBH2: c.OmegaB * h2,
			TCMB:     c.TCMB,
		},
		Ns:     c.Ns,
		Sigma8: c.Sigma8,
	}
}
