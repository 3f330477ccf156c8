package gausssum

import "github.com/ilyaskalimullinn/alpharep/f3"

// Gauss computes the normalized Gaussian sum of a symmetric F₃ matrix
// (spec §4.4):
//
//	Gau'(M) = det'(M) · (i/√3)^rank(M)
//
// using the largest-nonzero-principal-minor triple from package f3. The
// degenerate convention Gau'(0) = 1 falls out for free: f3.LargestPrincipalMinor
// already returns (det=1, rank=0) for the zero matrix, and
// IOverSqrt3Pow(0) = 1.
func Gauss(m f3.Dense) (gauss Value, det, rank int, rows []int) {
	det, rank, rows = f3.LargestPrincipalMinor(m)
	gauss = IOverSqrt3Pow(rank).MulInt(det)
	return gauss, det, rank, rows
}
