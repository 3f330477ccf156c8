package f3

import (
	"sort"

	"gonum.org/v1/gonum/stat/combin"
)

// LargestPrincipalMinor finds the largest nonzero principal minor of a
// square, symmetric F₃ matrix (spec §4.3). It returns the minor's value
// remapped to {-1, 0, 1} (det), the size of the witnessing principal
// submatrix (rank), and the row/column index set that witnesses it,
// in ascending order.
//
// By convention (spec §4.3 "degenerate case"), the zero matrix returns
// (1, 0, nil): a rank of zero but a minor value of one, so that the
// Gaussian-sum formula in gausssum collapses to Gau'(0) = 1.
//
// d need not actually be symmetric for this to run, but the equivalence
// between "largest full-rank principal submatrix" and "F₃-rank" that the
// rest of this module relies on only holds for symmetric inputs; callers
// outside this package always pass a Faces Matrix instantiation, which is
// symmetric by construction.
func LargestPrincipalMinor(d Dense) (det, rank int, rows []int) {
	if !d.Square() {
		panic("f3: LargestPrincipalMinor requires a square matrix")
	}
	n := d.rows
	r, dt, pivotCols := d.eliminate()
	if r == n {
		return signed(dt), n, identity(n)
	}
	if r == 0 {
		return 1, 0, nil
	}

	// Fast path: the pivot columns found by elimination already form a
	// full-rank principal submatrix in the common case (§9).
	witness := append([]int(nil), pivotCols...)
	sort.Ints(witness)
	if sr, sd, _ := d.Sub(witness).eliminate(); sr == r && sd != 0 {
		return signed(sd), r, witness
	}

	// Fallback: exhaustive descent over principal submatrices, exactly as
	// spec §4.3 describes, starting from the rank already computed.
	for size := r; size >= 1; size-- {
		for _, comb := range combin.Combinations(n, size) {
			sr, sd, _ := d.Sub(comb).eliminate()
			if sr == size && sd != 0 {
				return signed(sd), size, append([]int(nil), comb...)
			}
		}
	}
	return 1, 0, nil
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
