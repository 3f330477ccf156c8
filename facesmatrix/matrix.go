package facesmatrix

import (
	"fmt"
	"sort"
	"strings"
)

// Matrix is the Faces Matrix of a planar graph: Matrix[i][j] lists the
// vertices shared by face i and face j, sorted and deduplicated.
// Matrix[i][i] is face i's own vertex set.
type Matrix [][][]int

// Build constructs the Faces Matrix from a list of faces, each a cycle
// of vertex indices as produced by package planar's Faces (spec §4.3).
func Build(faces [][]int) Matrix {
	n := len(faces)
	sets := make([][]int, n)
	for i, face := range faces {
		sets[i] = uniqueSorted(face)
	}

	m := make(Matrix, n)
	for i := range m {
		m[i] = make([][]int, n)
	}
	for i := 0; i < n; i++ {
		m[i][i] = sets[i]
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := intersect(sets[i], sets[j])
			m[i][j] = v
			m[j][i] = v
		}
	}
	return m
}

func uniqueSorted(vs []int) []int {
	seen := make(map[int]bool, len(vs))
	out := make([]int, 0, len(vs))
	for _, v := range vs {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

func intersect(a, b []int) []int {
	bSet := make(map[int]bool, len(b))
	for _, v := range b {
		bSet[v] = true
	}
	var out []int
	for _, v := range a {
		if bSet[v] {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// N returns the number of faces (the matrix's dimension).
func (m Matrix) N() int {
	return len(m)
}

// Symmetric reports whether m[i][j] equals m[j][i] for all i, j — always
// true for a correctly built Matrix, and a cheap sanity check for one
// assembled by hand or deserialized.
func (m Matrix) Symmetric() bool {
	n := len(m)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !equalInts(m[i][j], m[j][i]) {
				return false
			}
		}
	}
	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// DualAdjacency builds the dual adjacency matrix: faces i != j are
// adjacent whenever m[i][j] is nonempty (ported from
// faces_matrix_to_dual_adjacency_matrix; spec §4.9).
func (m Matrix) DualAdjacency() [][]int {
	n := len(m)
	adj := make([][]int, n)
	for i := range adj {
		adj[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && len(m[i][j]) > 0 {
				adj[i][j] = 1
			}
		}
	}
	return adj
}

// Masks returns, for each vertex 0..numVertices-1, the face x face
// boolean matrix marking which pairs of faces meet at that vertex
// (ported from the masks_tensor construction shared by
// calc_tait_0_fixed_in_detail and calc_s_values). Package tait uses
// these to fill in a Faces Matrix for a concrete spin assignment without
// re-scanning face membership on every candidate.
func (m Matrix) Masks(numVertices int) [][][]bool {
	n := len(m)
	masks := make([][][]bool, numVertices)
	for v := range masks {
		masks[v] = make([][]bool, n)
		for i := range masks[v] {
			masks[v][i] = make([]bool, n)
		}
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			for _, v := range m[i][j] {
				masks[v][i][j] = true
				masks[v][j][i] = true
			}
		}
	}
	return masks
}

// String renders m for debugging/logging.
func (m Matrix) String() string {
	var b strings.Builder
	for i, row := range m {
		if i > 0 {
			b.WriteByte('\n')
		}
		parts := make([]string, len(row))
		for j, cell := range row {
			parts[j] = fmt.Sprint(cell)
		}
		b.WriteString(strings.Join(parts, " "))
	}
	return b.String()
}
