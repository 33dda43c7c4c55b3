// Package collapse provides spherical-collapse fitting functions: the linear
// collapse threshold δ_c and the virial overdensity Δ_v, both as functions of
// the matter density parameter at the epoch of interest, plus the Mead (2017)
// forms that add growth-history and massive-neutrino corrections.
//
// Δ_v is always relative to the background matter density.
package collapse
