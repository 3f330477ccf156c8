package gausssum

import "math/big"

// Chi evaluates the nontrivial character of F₃, χ(x) = exp(2πi x/3),
// spec §4 GLOSSARY. x is reduced mod 3 first, so any integer
// representative (e.g. a raw, un-reduced sum of spins) is accepted.
//
//	χ(0) = 1
//	χ(1) = ω  = -1/2 + (1/2)·i√3
//	χ(-1)= ω̄ = -1/2 - (1/2)·i√3
func Chi(x int) Value {
	m := x % 3
	if m < 0 {
		m += 3
	}
	switch m {
	case 0:
		return Int(1)
	case 1:
		return Value{P: big.NewRat(-1, 2), Q: big.NewRat(1, 2)}
	default: // 2, i.e. -1
		return Value{P: big.NewRat(-1, 2), Q: big.NewRat(-1, 2)}
	}
}
