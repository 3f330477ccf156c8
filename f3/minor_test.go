package f3

import "testing"

func TestLargestPrincipalMinorZero(t *testing.T) {
	det, rank, rows := LargestPrincipalMinor(Zero(3, 3))
	if det != 1 || rank != 0 || len(rows) != 0 {
		t.Errorf("LargestPrincipalMinor(zero) = (%d, %d, %v), want (1, 0, [])", det, rank, rows)
	}
}

func TestLargestPrincipalMinorFullRank(t *testing.T) {
	// det = 1*1 - 0*0 = 1, full rank.
	det, rank, rows := LargestPrincipalMinor(NewDense(2, 2, []int{1, 0, 0, 1}))
	if det != 1 || rank != 2 || len(rows) != 2 {
		t.Errorf("got (%d, %d, %v), want (1, 2, [0 1])", det, rank, rows)
	}
}

// From original_source/app/graph.py's largest_nonzero_principal_minor
// docstring: this matrix has rank 2 and four nonzero 2x2 principal
// minors ({0,2}, {0,3}, {1,2} and {1,3}), all valued -1.
func TestLargestPrincipalMinorDocstringExample(t *testing.T) {
	m := NewDense(4, 4, []int{
		-1, 1, 0, 0,
		1, -1, 0, 0,
		0, 0, 1, -1,
		0, 0, -1, 1,
	})
	det, rank, rows := LargestPrincipalMinor(m)
	if det != -1 {
		t.Errorf("det = %d, want -1", det)
	}
	if rank != 2 {
		t.Errorf("rank = %d, want 2", rank)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	// Verify rows really is a valid witness: the principal submatrix on
	// rows must itself have rank 2 and the matching determinant.
	sub := m.Sub(rows)
	if Rank(sub) != 2 {
		t.Errorf("witness rows %v do not form a rank-2 principal submatrix", rows)
	}
	if got := Determinant(sub); got != det {
		t.Errorf("witness rows %v have determinant %d, want %d", rows, got, det)
	}
}

func TestLargestPrincipalMinorPanicsOnNonSquare(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on non-square matrix")
		}
	}()
	LargestPrincipalMinor(NewDense(2, 3, []int{1, 0, 0, 0, 1, 0}))
}
