package tait

import (
	"math/big"

	"github.com/ilyaskalimullinn/alpharep/facesmatrix"
	"github.com/ilyaskalimullinn/alpharep/gausssum"
)

// Aggregated is the grouped-by-(det,rank,gauss) summary spec §4.6 asks
// for, as nine fields: the total and the three rank-parity counters,
// then five parallel arrays indexed by distinct (DetMinors[k], Ranks[k],
// GaussSums[k]) triples.
type Aggregated struct {
	NTait0        *big.Int
	NEvenRanks    int
	NOddRanks     int
	NZeroRanks    int
	DetMinors     []int
	Ranks         []int
	GaussSums     []gausssum.Value
	Nums          []int
	TotalGaussSum []gausssum.Value // GaussSums[k] scaled by Nums[k]
}

type aggKey struct {
	det, rank int
	gauss     string // Value has no natural map key; its String() form is injective over the finitely many values a sweep produces
}

// CalcAggregated runs the same sweep as CalcDetailed but groups σ's by
// their (det, rank, gauss) triple (spec §4.6), so NTait0 agrees with
// CalcDetailed's by construction since both are built from the same
// sweep core.
func CalcAggregated(fm facesmatrix.Matrix, opts Options) (Aggregated, error) {
	steps, err := sweep(fm, opts)
	if err != nil {
		return Aggregated{}, err
	}

	sum := gausssum.NewSum()
	counts := make(map[aggKey]int)
	order := make([]aggKey, 0)

	var nZero, nEven, nOdd int
	for _, s := range steps {
		sum.Add(s.gauss)

		switch {
		case s.rank == 0:
			nZero++
		case s.rank%2 == 1:
			nOdd++
		default:
			nEven++
		}

		key := aggKey{det: s.det, rank: s.rank, gauss: s.gauss.String()}
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}

	n, err := sum.Int()
	if err != nil {
		return Aggregated{}, err
	}

	out := Aggregated{
		NTait0:     big.NewInt(n),
		NEvenRanks: nEven,
		NOddRanks:  nOdd,
		NZeroRanks: nZero,
	}
	gaussByKey := make(map[aggKey]gausssum.Value, len(order))
	for _, s := range steps {
		gaussByKey[aggKey{det: s.det, rank: s.rank, gauss: s.gauss.String()}] = s.gauss
	}
	for _, key := range order {
		num := counts[key]
		gauss := gaussByKey[key]
		out.DetMinors = append(out.DetMinors, key.det)
		out.Ranks = append(out.Ranks, key.rank)
		out.GaussSums = append(out.GaussSums, gauss)
		out.Nums = append(out.Nums, num)
		out.TotalGaussSum = append(out.TotalGaussSum, gauss.MulInt(num))
	}
	return out, nil
}
