// Package variance computes statistics of a linear density field smoothed
// with a spherical tophat of comoving radius R:
//
//	σ²(R)         = 1/(2π²) ∫₀^∞ P(k) k² W(kR)² dk
//	dlnσ²/dlnR    = R/(πσ)² ∫₀^∞ P(k) k³ W(kR) W'(kR) dk
//	σ_V²          = 1/(2π²) ∫₀^∞ P(k) dk / 3
//
// P is an arbitrary caller-supplied [PowerSpectrum]; every integral runs on
// the half-infinite k range through package quad. Functions are pure and may
// be called concurrently. [Sigmas] and [DLnSigma2DLnRs] evaluate many radii
// in parallel and return results in input order.
//
// Integrals that miss their accuracy target are returned anyway with
// Estimate.Converged false, and a warning is logged.
package variance
