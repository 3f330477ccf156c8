package tait

import (
	"math/big"

	"github.com/ilyaskalimullinn/alpharep/f3"
	"github.com/ilyaskalimullinn/alpharep/facesmatrix"
	"github.com/ilyaskalimullinn/alpharep/gausssum"
)

// FixedResult is the fixed-spin Tait-0 count (spec §4.7): the free
// vertices (every vertex not a key of the fixed map) are swept over
// {-1,+1}, while the fixed vertices contribute a constant right-hand
// side ℓ to each face's spin-sum-mod-3 constraint.
type FixedResult struct {
	NTait0 *big.Int
	Gauss  []gausssum.Value
	Det    []int
	Rank   []int
}

// Fixed runs the fixed-spin Tait-0 enumerator. fixed maps a vertex index
// to its pinned spin (-1 or +1); vertices absent from fixed are free and
// summed over. A nil or empty fixed makes ℓ the all-zero vector, so the
// consistency check never fails and NTait0 must equal CalcDetailed's
// (spec §8 property 7).
func Fixed(fm facesmatrix.Matrix, fixed map[int]int, opts Options) (FixedResult, error) {
	nFaces := fm.N()
	nVertices := numVertices(nFaces)
	masks := fm.Masks(nVertices)

	ell := make([]int, nFaces)
	for f1 := 0; f1 < nFaces; f1++ {
		s := 0
		for v, spin := range fixed {
			if masks[v][f1][f1] {
				s += spin
			}
		}
		ell[f1] = ((s % 3) + 3) % 3
	}

	var free []int
	for v := 0; v < nVertices; v++ {
		if _, isFixed := fixed[v]; !isFixed {
			free = append(free, v)
		}
	}

	total := 1 << uint(len(free))
	out := FixedResult{
		Gauss: make([]gausssum.Value, 0, total),
		Det:   make([]int, 0, total),
		Rank:  make([]int, 0, total),
	}
	sum := gausssum.NewSum()

	for idx := 0; idx < total; idx++ {
		if opts.cancelled() {
			return FixedResult{}, ErrCancelled
		}
		sigmaFree := sigmaAt(idx, len(free))

		// Fixed vertices keep spin 0 here: they enter only through ℓ, so
		// fillMatrix builds M(σ_free) from the free vertices' masks alone.
		sigma := make([]int, nVertices)
		for i, v := range free {
			sigma[v] = sigmaFree[i]
		}

		m := fillMatrix(masks, sigma, nFaces)
		augmented := m.Augment(ell)

		rank := f3.Rank(m)
		augmentedRank := f3.Rank(augmented)
		if rank != augmentedRank {
			return FixedResult{}, &InconsistencyError{Diagnostic: InconsistencyDiagnostic{
				SigmaFree:     sigmaFree,
				Augmented:     augmented.Ints(),
				Rank:          rank,
				AugmentedRank: augmentedRank,
			}}
		}

		gauss, det, gaussRank, rows := gausssum.Gauss(m)
		bordered := borderedDeterminant(m, ell, rows)
		chi := gausssum.Chi(bordered * det)
		term := chi.Mul(gauss)

		out.Gauss = append(out.Gauss, gauss)
		out.Det = append(out.Det, det)
		out.Rank = append(out.Rank, gaussRank)
		sum.Add(term)

		opts.report(idx+1, total)
	}

	n, err := sum.Int()
	if err != nil {
		return FixedResult{}, err
	}
	out.NTait0 = big.NewInt(n)
	return out, nil
}

// borderedDeterminant computes det(M_ | ℓ_) mod 3 on the principal
// submatrix picked out by rows, bordered by the matching entries of ℓ —
// ported from calc_tait_0_fixed_in_detail's M_l_ construction. When rows
// is empty (M(σ_free) is the zero matrix), the original pads a 0x0
// array to [[0]] and det([[0]]) = 0 — the zero-matrix convention here is
// 0, not f3's own "treat the zero matrix as rank 0, det' 1" convention
// used elsewhere, since that convention applies to det' of M itself, not
// to this separately-bordered matrix.
func borderedDeterminant(m f3.Dense, ell []int, rows []int) int {
	k := len(rows)
	if k == 0 {
		return 0
	}
	sub := make([]int, (k+1)*(k+1))
	n := k + 1
	for a, i := range rows {
		for b, j := range rows {
			sub[a*n+b] = m.At(i, j)
		}
		sub[a*n+k] = ell[i]
		sub[k*n+a] = ell[i]
	}
	bordered := f3.NewDense(n, n, sub)
	return f3.Determinant(bordered)
}
