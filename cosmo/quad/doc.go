// Package quad provides globally adaptive quadrature on finite and
// half-infinite intervals.
//
// Each subinterval is estimated with a 10-point and a 21-point Gauss–Legendre
// rule; the difference of the two is the error estimate. The subinterval with
// the largest estimated error is bisected until the total error meets
// max(EpsAbs, EpsRel·|I|) or [core.AccuracyConfig.Limit] subintervals exist.
// Upper bounds of +Inf are mapped onto [0, 1) with x = a + t/(1-t).
//
// Failing to reach the requested accuracy is not an error: the best estimate
// is returned with Converged set to false, so callers decide whether to
// accept, tighten or retry.
package quad
