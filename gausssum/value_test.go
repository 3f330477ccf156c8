package gausssum

import (
	"math/big"
	"testing"
)

func TestIOverSqrt3PowMatchesDefinition(t *testing.T) {
	// (i/sqrt3)^2 = i^2/3 = -1/3.
	v := IOverSqrt3Pow(2)
	if v.Q.Sign() != 0 {
		t.Fatalf("rank-2 power should be real, got q=%s", v.Q.RatString())
	}
	want := big.NewRat(-1, 3)
	if v.P.Cmp(want) != 0 {
		t.Errorf("(i/sqrt3)^2 = %s, want -1/3", v.P.RatString())
	}

	// (i/sqrt3)^1 = i*sqrt3/3.
	v1 := IOverSqrt3Pow(1)
	if v1.P.Sign() != 0 {
		t.Fatalf("rank-1 power should be pure imaginary-sqrt3, got p=%s", v1.P.RatString())
	}
	if v1.Q.Cmp(big.NewRat(1, 3)) != 0 {
		t.Errorf("(i/sqrt3)^1 q = %s, want 1/3", v1.Q.RatString())
	}
}

func TestIOverSqrt3PowZero(t *testing.T) {
	v := IOverSqrt3Pow(0)
	n, ok := v.IsInt()
	if !ok || n.Int64() != 1 {
		t.Errorf("(i/sqrt3)^0 = %v, want integer 1", v)
	}
}

func TestMulAssociativity(t *testing.T) {
	a := IOverSqrt3Pow(3)
	b := IOverSqrt3Pow(1).Mul(IOverSqrt3Pow(1)).Mul(IOverSqrt3Pow(1))
	if a.P.Cmp(b.P) != 0 || a.Q.Cmp(b.Q) != 0 {
		t.Errorf("(i/sqrt3)^3 = %s, want %s", a, b)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Int(1), "1"},
		{Int(-1), "-1"},
		{IOverSqrt3Pow(2), "-1/3"},
		{IOverSqrt3Pow(1), "sqrt(3)*I/3"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
