package gausssum

import (
	"math/big"
	"testing"
)

func TestChi(t *testing.T) {
	tests := []struct {
		x    int
		p, q *big.Rat
	}{
		{0, big.NewRat(1, 1), big.NewRat(0, 1)},
		{1, big.NewRat(-1, 2), big.NewRat(1, 2)},
		{-1, big.NewRat(-1, 2), big.NewRat(-1, 2)},
		{2, big.NewRat(-1, 2), big.NewRat(-1, 2)}, // 2 === -1 (mod 3)
		{3, big.NewRat(1, 1), big.NewRat(0, 1)},   // 3 === 0 (mod 3)
	}
	for _, tt := range tests {
		v := Chi(tt.x)
		if v.P.Cmp(tt.p) != 0 || v.Q.Cmp(tt.q) != 0 {
			t.Errorf("Chi(%d) = (%s, %s), want (%s, %s)", tt.x, v.P, v.Q, tt.p, tt.q)
		}
	}
}

// χ(1)^3 must be 1: the character takes values in the cube roots of unity.
func TestChiCubed(t *testing.T) {
	w := Chi(1)
	cubed := w.Mul(w).Mul(w)
	n, ok := cubed.IsInt()
	if !ok || n.Int64() != 1 {
		t.Errorf("Chi(1)^3 = %v, want 1", cubed)
	}
}
