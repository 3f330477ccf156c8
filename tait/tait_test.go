package tait

import (
	"testing"

	"github.com/ilyaskalimullinn/alpharep/facesmatrix"
)

// k4FacesMatrix is the Faces Matrix from build_faces_matrix's own
// docstring example: K4's 4 faces over its 4 vertices.
func k4FacesMatrix() facesmatrix.Matrix {
	faces := [][]int{
		{0, 1, 2},
		{0, 1, 3},
		{1, 2, 3},
		{0, 2, 3},
	}
	return facesmatrix.Build(faces)
}

// CalcDetailed sums 16 complex Gaussian-sum terms for K4; per spec §4.6
// the result must still collapse to a nonnegative integer (CalcDetailed
// already returns an error if Int() finds a nonzero imaginary or
// irrational remainder), and every spin assignment must be visited
// exactly once.
func TestCalcDetailedK4(t *testing.T) {
	fm := k4FacesMatrix()
	got, err := CalcDetailed(fm, Options{})
	if err != nil {
		t.Fatalf("CalcDetailed error: %v", err)
	}
	if got.NTait0.Sign() < 0 {
		t.Errorf("NTait0 = %v, want a nonnegative count", got.NTait0)
	}
	if len(got.Gauss) != 16 {
		t.Errorf("len(Gauss) = %d, want 16 (2^4 spin assignments)", len(got.Gauss))
	}
	if len(got.Det) != 16 || len(got.Rank) != 16 {
		t.Errorf("len(Det)=%d len(Rank)=%d, want 16 each", len(got.Det), len(got.Rank))
	}
}

func TestCalcAggregatedMatchesCalcDetailed(t *testing.T) {
	fm := k4FacesMatrix()
	detailed, err := CalcDetailed(fm, Options{})
	if err != nil {
		t.Fatalf("CalcDetailed error: %v", err)
	}
	aggregated, err := CalcAggregated(fm, Options{})
	if err != nil {
		t.Fatalf("CalcAggregated error: %v", err)
	}
	if detailed.NTait0.Cmp(aggregated.NTait0) != 0 {
		t.Errorf("CalcDetailed=%v, CalcAggregated=%v, want equal", detailed.NTait0, aggregated.NTait0)
	}

	total := aggregated.NZeroRanks + aggregated.NEvenRanks + aggregated.NOddRanks
	if total != len(detailed.Gauss) {
		t.Errorf("rank-parity counts sum to %d, want %d", total, len(detailed.Gauss))
	}

	sumNums := 0
	for _, n := range aggregated.Nums {
		sumNums += n
	}
	if sumNums != len(detailed.Gauss) {
		t.Errorf("aggregated Nums sum to %d, want %d", sumNums, len(detailed.Gauss))
	}
}

func TestCalcDetailedParallelMatchesSerial(t *testing.T) {
	fm := k4FacesMatrix()
	serial, err := CalcDetailed(fm, Options{})
	if err != nil {
		t.Fatalf("serial CalcDetailed error: %v", err)
	}
	parallel, err := CalcDetailed(fm, Options{Parallel: 4})
	if err != nil {
		t.Fatalf("parallel CalcDetailed error: %v", err)
	}
	if serial.NTait0.Cmp(parallel.NTait0) != 0 {
		t.Errorf("serial=%v, parallel=%v, want equal", serial.NTait0, parallel.NTait0)
	}
	for i := range serial.Gauss {
		if serial.Gauss[i].String() != parallel.Gauss[i].String() {
			t.Fatalf("Gauss[%d] differs between serial and parallel sweeps: %v vs %v", i, serial.Gauss[i], parallel.Gauss[i])
		}
	}
}

// Empty fixed map must reduce to CalcDetailed, per spec §8 property 7:
// ℓ is then the all-zero vector and the consistency check is vacuous.
func TestFixedEmptyMatchesCalcDetailed(t *testing.T) {
	fm := k4FacesMatrix()
	detailed, err := CalcDetailed(fm, Options{})
	if err != nil {
		t.Fatalf("CalcDetailed error: %v", err)
	}
	fixed, err := Fixed(fm, nil, Options{})
	if err != nil {
		t.Fatalf("Fixed error: %v", err)
	}
	if detailed.NTait0.Cmp(fixed.NTait0) != 0 {
		t.Errorf("CalcDetailed=%v, Fixed(nil)=%v, want equal", detailed.NTait0, fixed.NTait0)
	}
}

func TestGoodSpinsSatisfyEveryFace(t *testing.T) {
	faces := [][]int{
		{0, 1, 2, 0},
		{0, 1, 3, 0},
		{1, 2, 3, 1},
		{0, 2, 3, 0},
	}
	good := GoodSpins(faces)
	if len(good) == 0 {
		t.Fatal("expected at least one good spin assignment")
	}
	for _, sigma := range good {
		for _, face := range faces {
			s := 0
			seen := make(map[int]bool)
			for _, v := range face {
				if !seen[v] {
					seen[v] = true
					s += sigma[v]
				}
			}
			if m := ((s % 3) + 3) % 3; m != 0 {
				t.Errorf("sigma %v: face %v sums to %d mod 3, want 0", sigma, face, m)
			}
		}
	}
}

func TestSValuesProducesExpectedCount(t *testing.T) {
	fm := k4FacesMatrix()
	// One "in" vertex and one "mid" vertex out of K4's 4.
	results, err := SValues(fm, []int{0}, []int{1}, Options{})
	if err != nil {
		t.Fatalf("SValues error: %v", err)
	}
	// |mid|=1 -> 2 sigma_mid; F=4 faces -> 3^4=81 values of x.
	want := 2 * 81
	if len(results) != want {
		t.Errorf("len(results) = %d, want %d", len(results), want)
	}
}
