// Package background holds homogeneous-universe relations: scale factor and
// redshift, the comoving matter density, and the mass/radius relation of a
// uniform-density sphere. Lengths are in Mpc/h and masses in Msun/h.
package background
