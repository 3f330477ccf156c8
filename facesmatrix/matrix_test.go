package facesmatrix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Grounded on build_faces_matrix's own docstring example for K4.
func TestBuildK4(t *testing.T) {
	faces := [][]int{
		{0, 1, 2},
		{0, 1, 3},
		{1, 2, 3},
		{0, 2, 3},
	}
	m := Build(faces)

	want := Matrix{
		{{0, 1, 2}, {0, 1}, {1, 2}, {0, 2}},
		{{0, 1}, {0, 1, 3}, {1, 3}, {0, 3}},
		{{1, 2}, {1, 3}, {1, 2, 3}, {2, 3}},
		{{0, 2}, {0, 3}, {2, 3}, {0, 2, 3}},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Build(K4 faces) mismatch (-want +got):\n%s", diff)
	}
	if !m.Symmetric() {
		t.Error("Faces Matrix should be symmetric")
	}
}

func TestBuildDedupesRepeatedFaceVertices(t *testing.T) {
	// A face cycle includes its closing vertex twice; Build should treat
	// it as a set.
	faces := [][]int{{0, 1, 2, 0}}
	m := Build(faces)
	if got, want := m[0][0], []int{0, 1, 2}; !cmp.Equal(got, want) {
		t.Errorf("diagonal = %v, want %v", got, want)
	}
}

func TestDualAdjacencyK4(t *testing.T) {
	faces := [][]int{
		{0, 1, 2},
		{0, 1, 3},
		{1, 2, 3},
		{0, 2, 3},
	}
	m := Build(faces)
	adj := m.DualAdjacency()
	// Every pair of K4's 4 faces shares at least one vertex, so the dual
	// is complete on 4 nodes (no self-loops).
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 1
			if i == j {
				want = 0
			}
			if adj[i][j] != want {
				t.Errorf("adj[%d][%d] = %d, want %d", i, j, adj[i][j], want)
			}
		}
	}
}

func TestMasksMatchFaceMembership(t *testing.T) {
	faces := [][]int{
		{0, 1, 2},
		{0, 1, 3},
		{1, 2, 3},
		{0, 2, 3},
	}
	m := Build(faces)
	masks := m.Masks(4)
	for v := 0; v < 4; v++ {
		for f1 := 0; f1 < 4; f1++ {
			for f2 := 0; f2 < 4; f2++ {
				inIntersection := contains(m[f1][f2], v)
				if masks[v][f1][f2] != inIntersection {
					t.Errorf("masks[%d][%d][%d] = %v, want %v", v, f1, f2, masks[v][f1][f2], inIntersection)
				}
			}
		}
	}
}

func contains(vs []int, v int) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}
