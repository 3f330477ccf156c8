// Package gausssum implements exact arithmetic in ℚ(√-3) — the field
// generated by i√3 over the rationals — which is exactly large enough to
// hold both the normalized Gaussian sum Gau'(M) = det'(M)·(i/√3)^rank(M)
// of spec §4.4 and the character values χ(x) = exp(2πi x/3) of §4.7/§4.9,
// without pulling in a general computer-algebra system.
//
// Design note §9 of the port's specification suggests representing a
// Gaussian-sum term as a tuple (c, a mod 4, r) with value c·i^a/√3^r and
// grouping terms for summation by (a mod 4, r mod 2) parity. That scheme
// covers Gau'(M) exactly, but χ(1) = exp(2πi/3) = -1/2 + i√3/2 has a
// rational part with denominator 2 — a magnitude the (c, a, r) tuple
// cannot represent at all. Since ℚ(√-3) = ℚ(i√3) already contains both
// families of values (every power of i/√3 and every cube root of unity
// is of the form p + q·i√3 with p, q ∈ ℚ), this package represents a
// Value directly as that pair of exact rationals instead: a strict
// generalization of the note's tuple that costs nothing extra (it is
// still just two small exact numbers, no CAS) and additionally covers χ.
package gausssum
