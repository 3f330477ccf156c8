package gausssum

import (
	"fmt"
	"math/big"
)

// Value is an exact element p + q·i√3 of ℚ(√-3), p, q ∈ ℚ.
type Value struct {
	P, Q *big.Rat
}

// Int returns the Value representing the integer n.
func Int(n int) Value {
	return Value{P: big.NewRat(int64(n), 1), Q: new(big.Rat)}
}

// zero is the additive identity. The Value zero value (nil P, nil Q) is
// not usable; always build Values through a constructor.
func zero() Value { return Value{P: new(big.Rat), Q: new(big.Rat)} }

// iOverSqrt3 is i/√3, the base of the Gaussian-sum power ladder: since
// 1/√3 = √3/3, i/√3 = (1/3)·i√3, i.e. p=0, q=1/3.
var iOverSqrt3 = Value{P: new(big.Rat), Q: big.NewRat(1, 3)}

// IOverSqrt3Pow returns (i/√3)^r for r >= 0, exactly.
func IOverSqrt3Pow(r int) Value {
	if r < 0 {
		panic("gausssum: negative exponent")
	}
	out := Int(1)
	for i := 0; i < r; i++ {
		out = out.Mul(iOverSqrt3)
	}
	return out
}

// Add returns v + o.
func (v Value) Add(o Value) Value {
	return Value{
		P: new(big.Rat).Add(v.P, o.P),
		Q: new(big.Rat).Add(v.Q, o.Q),
	}
}

// Sub returns v - o.
func (v Value) Sub(o Value) Value {
	return Value{
		P: new(big.Rat).Sub(v.P, o.P),
		Q: new(big.Rat).Sub(v.Q, o.Q),
	}
}

// Mul returns v * o, using (i√3)^2 = -3 to fold the product back into
// p + q·i√3 form: (p1+q1·i√3)(p2+q2·i√3) = (p1p2 - 3q1q2) + (p1q2+q1p2)·i√3.
func (v Value) Mul(o Value) Value {
	p := new(big.Rat).Mul(v.P, o.P)
	cross := new(big.Rat).Mul(v.Q, o.Q)
	cross.Mul(cross, big.NewRat(3, 1))
	p.Sub(p, cross)

	q := new(big.Rat).Mul(v.P, o.Q)
	q2 := new(big.Rat).Mul(v.Q, o.P)
	q.Add(q, q2)

	return Value{P: p, Q: q}
}

// MulInt returns v scaled by the integer n.
func (v Value) MulInt(n int) Value {
	return v.Mul(Int(n))
}

// IsZero reports whether v is exactly zero.
func (v Value) IsZero() bool {
	return v.P.Sign() == 0 && v.Q.Sign() == 0
}

// IsInt reports whether v is a rational integer, and returns it as a
// *big.Int when it is.
func (v Value) IsInt() (*big.Int, bool) {
	if v.Q.Sign() != 0 || !v.P.IsInt() {
		return nil, false
	}
	return new(big.Int).Set(v.P.Num()), true
}

// String renders v in the stable textual form spec §6 asks symbolic
// results to have, e.g. "1", "-1/3", "sqrt(3)*I/3", "2/9 + sqrt(3)*I/3".
func (v Value) String() string {
	switch {
	case v.Q.Sign() == 0:
		return v.P.RatString()
	case v.P.Sign() == 0:
		return sqrt3Term(v.Q)
	default:
		q := sqrt3Term(v.Q)
		if q[0] == '-' {
			return fmt.Sprintf("%s - %s", v.P.RatString(), q[1:])
		}
		return fmt.Sprintf("%s + %s", v.P.RatString(), q)
	}
}

func sqrt3Term(q *big.Rat) string {
	num, den := q.Num(), q.Denom()
	if num.CmpAbs(big.NewInt(1)) == 0 {
		sign := ""
		if num.Sign() < 0 {
			sign = "-"
		}
		if den.Cmp(big.NewInt(1)) == 0 {
			return sign + "sqrt(3)*I"
		}
		return fmt.Sprintf("%ssqrt(3)*I/%s", sign, den.String())
	}
	return fmt.Sprintf("%s*sqrt(3)*I", q.RatString())
}
