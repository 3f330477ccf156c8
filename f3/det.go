package f3

// Determinant returns det(d) mod 3, signed to {-1, 0, 1}. Used directly
// by package tait's fixed-spin enumerator to evaluate the bordered
// matrix (M_ | ℓ_) from spec §4.7 step 5, whose full determinant is
// wanted (0 when singular) rather than a largest nonzero principal
// minor, so it is not a LargestPrincipalMinor input.
func Determinant(d Dense) int {
	if !d.Square() {
		panic("f3: Determinant requires a square matrix")
	}
	_, det, _ := d.eliminate()
	return signed(det)
}
