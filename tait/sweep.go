package tait

import (
	"sync"

	"github.com/ilyaskalimullinn/alpharep/f3"
	"github.com/ilyaskalimullinn/alpharep/facesmatrix"
	"github.com/ilyaskalimullinn/alpharep/gausssum"
)

// numVertices returns the vertex count implied by a Faces Matrix of a
// planar cubic graph with n faces: F = V/2 + 2, so V = 2(F-2).
func numVertices(nFaces int) int {
	return 2 * (nFaces - 2)
}

// sigmaAt decodes index idx (0 <= idx < 2^n) into the idx-th tuple of
// itertools.product([-1, 1], repeat=n): vertex 0 varies slowest, vertex
// n-1 fastest, matching the canonical lexicographic order spec §5
// requires of every returned sweep.
func sigmaAt(idx, n int) []int {
	sigma := make([]int, n)
	for v := 0; v < n; v++ {
		bit := (idx >> uint(n-1-v)) & 1
		if bit == 0 {
			sigma[v] = -1
		} else {
			sigma[v] = 1
		}
	}
	return sigma
}

// fillMatrix evaluates the masked Faces Matrix for a concrete spin
// assignment: M(σ)[i][j] = Σ_v masks[v][i][j] · σ[v] (mod 3).
func fillMatrix(masks [][][]bool, sigma []int, nFaces int) f3.Dense {
	raw := make([]int, nFaces*nFaces)
	for v, s := range sigma {
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
	return f3.NewDense(nFaces, nFaces, raw)
}

// sweepStep is one evaluated σ: the spin assignment itself, its Gaussian
// sum, det', rank, and the witnessing principal-minor rows.
type sweepStep struct {
	sigma []int
	gauss gausssum.Value
	det   int
	rank  int
	rows  []int
}

// sweep evaluates Gau'(M(σ)) for every σ ∈ {-1,+1}^V in canonical
// lexicographic order, optionally fanning the work out across
// opts.Parallel workers while preserving that order in the result.
func sweep(fm facesmatrix.Matrix, opts Options) ([]sweepStep, error) {
	nFaces := fm.N()
	nVertices := numVertices(nFaces)
	masks := fm.Masks(nVertices)
	total := 1 << uint(nVertices)

	steps := make([]sweepStep, total)

	workers := opts.parallelism()
	if workers > total {
		workers = total
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (total + workers - 1) / workers
	var wg sync.WaitGroup
	var done int
	var mu sync.Mutex
	var cancelled bool

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > total {
			end = total
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for idx := start; idx < end; idx++ {
				mu.Lock()
				stop := cancelled
				mu.Unlock()
				if stop {
					return
				}
				if opts.cancelled() {
					mu.Lock()
					cancelled = true
					mu.Unlock()
					return
				}
				sigma := sigmaAt(idx, nVertices)
				m := fillMatrix(masks, sigma, nFaces)
				gauss, det, rank, rows := gausssum.Gauss(m)
				steps[idx] = sweepStep{sigma: sigma, gauss: gauss, det: det, rank: rank, rows: rows}

				mu.Lock()
				done++
				d := done
				mu.Unlock()
				opts.report(d, total)
			}
		}(start, end)
	}
	wg.Wait()

	if cancelled {
		return nil, ErrCancelled
	}
	return steps, nil
}
