package dualchromatic

import (
	"fmt"

	"gonum.org/v1/gonum/graph"

	"github.com/ilyaskalimullinn/alpharep/facesmatrix"
)

// Count computes the Tait-0 cross-check (spec §4.8) from a dual
// adjacency matrix: the number of proper 4-colorings of the dual graph,
// divided by 12.
func Count(dualAdjacency [][]int) (int, error) {
	g := buildGraph(dualAdjacency)
	return countFromGraph(g)
}

// CountFromFacesMatrix derives the dual adjacency matrix from a Faces
// Matrix before counting.
func CountFromFacesMatrix(fm facesmatrix.Matrix) (int, error) {
	return Count(fm.DualAdjacency())
}

func countFromGraph(g graph.Undirected) (int, error) {
	p := chromaticCount(g, 4, make(map[string]int))
	if p%12 != 0 {
		return 0, fmt.Errorf("%w: P(4) = %d", ErrNotDivisibleBy12, p)
	}
	return p / 12, nil
}

// chromaticCount evaluates the chromatic polynomial of g at k via
// deletion-contraction: P(G, k) = P(G-e, k) - P(G/e, k) for any edge e,
// with P(G, k) = k^|V| once every edge is gone. Results are memoized by
// the current graph's (node, edge) signature, since independent
// recursion branches often collapse to the same shape.
func chromaticCount(g graph.Undirected, k int, memo map[string]int) int {
	sig := signature(g)
	if v, ok := memo[sig]; ok {
		return v
	}

	edges := graph.EdgesOf(g.Edges())
	var result int
	if len(edges) == 0 {
		result = intPow(k, countNodes(g))
	} else {
		e := edges[0]
		result = chromaticCount(deleteEdge(g, e), k, memo) - chromaticCount(contractEdge(g, e), k, memo)
	}

	memo[sig] = result
	return result
}

func intPow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}
