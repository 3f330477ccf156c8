package planar

// rotationSystem holds, for each vertex, its neighbors in cyclic
// (counter-clockwise) order.
type rotationSystem [][]int

func neighborsOf(adjacency [][]int, v int) []int {
	var out []int
	for j, a := range adjacency[v] {
		if a != 0 {
			out = append(out, j)
		}
	}
	return out
}

// buildRotation derives the rotation system for mask: bit v of mask
// chooses, for vertex v, between the ascending neighbor order and its
// reverse — the only two distinct cyclic orders of 3 elements.
func buildRotation(adjacency [][]int, mask int) rotationSystem {
	n := len(adjacency)
	rs := make(rotationSystem, n)
	for v := 0; v < n; v++ {
		nb := neighborsOf(adjacency, v)
		if mask&(1<<uint(v)) != 0 {
			reverseInts(nb)
		}
		rs[v] = nb
	}
	return rs
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// nextInFace returns the neighbor that continues a face boundary when
// arriving at v from u: the neighbor immediately following u in v's
// cyclic rotation. This is the standard face-tracing step for a
// combinatorial embedding given by a rotation system.
func nextInFace(rs rotationSystem, u, v int) int {
	nb := rs[v]
	for idx, w := range nb {
		if w == u {
			return nb[(idx+1)%len(nb)]
		}
	}
	panic("planar: u is not adjacent to v in its rotation system")
}

// traceFaces walks every directed edge of rs exactly once, grouping the
// walks into face boundary cycles.
func traceFaces(rs rotationSystem, n int) [][]int {
	type dedge struct{ u, v int }
	visited := make(map[dedge]bool)
	var faces [][]int
	for u := 0; u < n; u++ {
		for _, v := range rs[u] {
			if visited[dedge{u, v}] {
				continue
			}
			var face []int
			cu, cv := u, v
			for {
				visited[dedge{cu, cv}] = true
				face = append(face, cu)
				cu, cv = cv, nextInFace(rs, cu, cv)
				if cu == u && cv == v {
					break
				}
			}
			faces = append(faces, face)
		}
	}
	return faces
}

// findEmbedding brute-forces the 2^n rotation systems of a cubic graph
// until one traces faces satisfying Euler's formula V - E + F = 2, which
// holds iff a genus-0 embedding exists (spec §4.1).
func findEmbedding(adjacency [][]int) (rotationSystem, [][]int, error) {
	n := len(adjacency)
	edges := 0
	for i := 0; i < n; i++ {
		edges += len(neighborsOf(adjacency, i))
	}
	edges /= 2

	for mask := 0; mask < (1 << uint(n)); mask++ {
		rs := buildRotation(adjacency, mask)
		faces := traceFaces(rs, n)
		if n-edges+len(faces) == 2 {
			return rs, faces, nil
		}
	}
	return nil, nil, ErrNotPlanar
}
