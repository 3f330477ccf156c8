package tait

import (
	"sort"

	"github.com/ilyaskalimullinn/alpharep/f3"
	"github.com/ilyaskalimullinn/alpharep/facesmatrix"
	"github.com/ilyaskalimullinn/alpharep/gausssum"
)

// SValues runs the S-values sweep (spec §4.9): a nested enumeration over
// σ_mid ∈ {-1,+1}^|verticesMid|, then x ∈ {-1,0,1}^F (x varying faster,
// per the spec's explicit loop-nesting order), summing
// χ(x^T M(σ) x mod 3) over σ_in ∈ {-1,+1}^|verticesIn| for each (σ_mid, x).
//
// Unlike CalcDetailed/CalcAggregated/Fixed, no end-of-sweep integer
// assertion is made here — spec §4.9 never claims S-values collapse to
// rational integers, only that each one simplifies to an exact ℚ(√-3)
// value.
func SValues(fm facesmatrix.Matrix, verticesIn, verticesMid []int, opts Options) ([]gausssum.Value, error) {
	nFaces := fm.N()
	masks := fm.Masks(numVertices(nFaces))

	in := sortedCopy(verticesIn)
	mid := sortedCopy(verticesMid)

	var results []gausssum.Value

	midTotal := 1 << uint(len(mid))
	inTotal := 1 << uint(len(in))
	xTotal := pow(3, nFaces)

	for midIdx := 0; midIdx < midTotal; midIdx++ {
		if opts.cancelled() {
			return nil, ErrCancelled
		}
		sigmaMid := sigmaAt(midIdx, len(mid))
		midRaw := maskedSum(masks, mid, sigmaMid, nFaces)
		midFilled := f3.NewDense(nFaces, nFaces, midRaw)

		for xIdx := 0; xIdx < xTotal; xIdx++ {
			x := ternaryAt(xIdx, nFaces)

			s := gausssum.NewSum()
			for inIdx := 0; inIdx < inTotal; inIdx++ {
				sigmaIn := sigmaAt(inIdx, len(in))
				inRaw := maskedSum(masks, in, sigmaIn, nFaces)

				combined := make([]int, nFaces*nFaces)
				for i := 0; i < nFaces; i++ {
					for j := 0; j < nFaces; j++ {
						combined[i*nFaces+j] = inRaw[i*nFaces+j] + midFilled.At(i, j)
					}
				}
				m := f3.NewDense(nFaces, nFaces, combined)
				s.Add(gausssum.Chi(quadraticForm(m, x)))
			}
			results = append(results, s.Value())
			opts.report(midIdx*xTotal+xIdx+1, midTotal*xTotal)
		}
	}
	return results, nil
}

// maskedSum computes, for the given subset of vertices and their spins,
// the raw (unreduced) row-major face x face sum Σ_v masks[v][i][j]·σ[v].
func maskedSum(masks [][][]bool, vertices []int, sigma []int, nFaces int) []int {
	raw := make([]int, nFaces*nFaces)
	for k, v := range vertices {
		s := sigma[k]
		if s == 0 {
			continue
		}
		m := masks[v]
		for i := 0; i < nFaces; i++ {
			row := m[i]
			for j := 0; j < nFaces; j++ {
				if row[j] {
					raw[i*nFaces+j] += s
				}
			}
		}
	}
	return raw
}

// quadraticForm computes x^T M x exactly, over the integers.
func quadraticForm(m f3.Dense, x []int) int {
	n := len(x)
	total := 0
	for i := 0; i < n; i++ {
		if x[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if x[j] == 0 {
				continue
			}
			total += x[i] * m.At(i, j) * x[j]
		}
	}
	return total
}

// ternaryAt decodes idx (0 <= idx < 3^n) into the idx-th tuple of
// itertools.product([-1, 0, 1], repeat=n): position 0 varies slowest,
// position n-1 fastest.
func ternaryAt(idx, n int) []int {
	x := make([]int, n)
	for pos := n - 1; pos >= 0; pos-- {
		x[pos] = idx%3 - 1
		idx /= 3
	}
	return x
}

func pow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}

func sortedCopy(vs []int) []int {
	out := append([]int(nil), vs...)
	sort.Ints(out)
	return out
}
