// Package f3 implements exact linear algebra over the finite field
// F₃ = {-1, 0, 1} (equivalently {0, 1, 2} mod 3).
//
// Matrices arriving from the alpha-representation (Faces Matrices filled
// with a spin assignment, their augmented and bordered variants) are
// small — side length rarely exceeds twenty — so this package favors a
// direct, exact row-reduction over GF(3) rather than a floating-point
// determinant oracle reduced mod 3 afterwards: entries are exact integers
// already, and GF(3) arithmetic has no rounding to hide behind.
//
// Dense stores entries canonically in {0, 1, 2}; At and the exported
// results use the signed representative {-1, 0, 1} the rest of the
// alpha-representation works in, remapping 2 -> -1.
package f3
