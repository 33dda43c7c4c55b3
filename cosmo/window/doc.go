// Package window evaluates the Fourier transform of the real-space spherical
// tophat filter, W(x) = 3(sin x - x cos x)/x^3 with x = kR, and its first
// derivative.
//
// Both functions switch to a Taylor series below [SmallArgument], where the
// closed forms lose all precision to cancellation. Scalar ([Tophat],
// [DTophat]) and block ([TophatBlock], [DTophatBlock]) forms are provided;
// block forms choose the branch per element.
package window
