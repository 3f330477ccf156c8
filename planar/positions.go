package planar

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Positions computes a planar layout of a cubic graph given by its
// adjacency matrix (spec §4.1), returning one [x, y] pair per vertex.
//
// It first finds a rotation system whose traced faces satisfy Euler's
// formula (see findEmbedding), then places the largest face's vertices
// on a regular polygon and solves for every remaining vertex's position
// as the average of its neighbors (Tutte's barycentric embedding
// theorem), via a floating-point LU solve.
func Positions(adjacency [][]int) ([][2]float64, error) {
	n := len(adjacency)
	for v := 0; v < n; v++ {
		if len(neighborsOf(adjacency, v)) != 3 {
			return nil, fmt.Errorf("%w: vertex %d has degree %d, want 3", ErrNotCubic, v, len(neighborsOf(adjacency, v)))
		}
	}

	rs, faces, err := findEmbedding(adjacency)
	if err != nil {
		return nil, err
	}
	return tutteEmbed(n, rs, faces), nil
}

func tutteEmbed(n int, rs rotationSystem, faces [][]int) [][2]float64 {
	outer := faces[0]
	for _, f := range faces {
		if len(f) > len(outer) {
			outer = f
		}
	}

	polygonIndex := make(map[int]int, len(outer))
	for idx, v := range outer {
		if _, seen := polygonIndex[v]; !seen {
			polygonIndex[v] = idx
		}
	}
	m := len(polygonIndex)

	pos := make([][2]float64, n)
	for v, idx := range polygonIndex {
		angle := 2 * math.Pi * float64(idx) / float64(m)
		pos[v] = [2]float64{math.Cos(angle), math.Sin(angle)}
	}

	var inner []int
	for v := 0; v < n; v++ {
		if _, onOuter := polygonIndex[v]; !onOuter {
			inner = append(inner, v)
		}
	}
	if len(inner) == 0 {
		return pos
	}

	innerIndex := make(map[int]int, len(inner))
	for i, v := range inner {
		innerIndex[v] = i
	}

	k := len(inner)
	a := mat.NewDense(k, k, nil)
	bx := mat.NewVecDense(k, nil)
	by := mat.NewVecDense(k, nil)
	for i, v := range inner {
		deg := len(rs[v])
		a.Set(i, i, a.At(i, i)+float64(deg))
		for _, w := range rs[v] {
			if j, isInner := innerIndex[w]; isInner {
				a.Set(i, j, a.At(i, j)-1)
			} else {
				bx.SetVec(i, bx.AtVec(i)+pos[w][0])
				by.SetVec(i, by.AtVec(i)+pos[w][1])
			}
		}
	}

	var lu mat.LU
	lu.Factorize(a)
	var x, y mat.VecDense
	if err := lu.SolveVecTo(&x, false, bx); err != nil {
		// A singular Tutte system means the chosen outer face does not
		// bound the graph's unique unbounded face under this embedding;
		// fall back to placing inner vertices at the polygon centroid.
		for _, v := range inner {
			pos[v] = centroid(pos, polygonIndex)
		}
		return pos
	}
	if err := lu.SolveVecTo(&y, false, by); err != nil {
		for _, v := range inner {
			pos[v] = centroid(pos, polygonIndex)
		}
		return pos
	}
	for i, v := range inner {
		pos[v] = [2]float64{x.AtVec(i), y.AtVec(i)}
	}
	return pos
}

func centroid(pos [][2]float64, polygonIndex map[int]int) [2]float64 {
	var cx, cy float64
	for v := range polygonIndex {
		cx += pos[v][0]
		cy += pos[v][1]
	}
	n := float64(len(polygonIndex))
	return [2]float64{cx / n, cy / n}
}
