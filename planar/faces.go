package planar

import "math"

// Faces traces the faces of a planar cubic graph from its adjacency
// matrix and an existing geometric layout (spec §4.2), ported from
// original_source/app/graph.py's find_faces_in_graph/find_neighbors.
//
// Unlike the combinatorial tracer in rotation.go (used internally by
// Positions to search for a valid embedding), this walks the actual
// coordinates: arriving at vertex j from vertex i, the next vertex on
// the face boundary is j's unvisited neighbor that is first
// counter-clockwise from the j->i direction. Each directed edge is
// consumed exactly once, so every face (including the outer one) is
// produced exactly once, each starting and ending at the same vertex.
func Faces(adjacency [][]int, pos [][2]float64) [][]int {
	n := len(adjacency)
	remaining := make([][]int, n)
	for i := range adjacency {
		remaining[i] = append([]int(nil), adjacency[i]...)
	}

	var faces [][]int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if remaining[i][j] == 0 {
				continue
			}
			face := []int{i, j}
			for face[len(face)-1] != face[0] {
				last := len(face) - 1
				prev, cur := face[last-1], face[last]
				remaining[prev][cur] = 0
				next := firstCounterClockwiseNeighbor(remaining, pos, prev, cur)
				face = append(face, next)
			}
			last := len(face) - 1
			remaining[face[last-1]][face[last]] = 0
			faces = append(faces, face)
		}
	}
	return faces
}

// firstCounterClockwiseNeighbor returns cur's unvisited neighbor (other
// than prev) whose rotation angle from the cur->prev direction is
// smallest, i.e. the first one reached sweeping counter-clockwise.
func firstCounterClockwiseNeighbor(remaining [][]int, pos [][2]float64, prev, cur int) int {
	best := -1
	bestAngle := math.Inf(1)
	for v, a := range remaining[cur] {
		if a == 0 || v == prev {
			continue
		}
		angle := rotationAngle(pos[prev], pos[cur], pos[v])
		if angle < bestAngle {
			bestAngle = angle
			best = v
		}
	}
	return best
}

// rotationAngle is the counter-clockwise angle, in [0, 2π), from the
// pos1->pos0 vector to the pos1->pos2 vector.
func rotationAngle(pos0, pos1, pos2 [2]float64) float64 {
	main := [2]float64{pos0[0] - pos1[0], pos0[1] - pos1[1]}
	next := [2]float64{pos2[0] - pos1[0], pos2[1] - pos1[1]}
	return ccwAngle(main, next)
}

// ccwAngle is the counter-clockwise angle from v1 to v2, in [0, 2π).
func ccwAngle(v1, v2 [2]float64) float64 {
	v1 = normalize(v1)
	v2 = normalize(v2)
	sin := v1[0]*v2[1] - v1[1]*v2[0]
	cos := v1[0]*v2[0] + v1[1]*v2[1]
	angle := math.Atan2(sin, cos)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

func normalize(v [2]float64) [2]float64 {
	norm := math.Hypot(v[0], v[1])
	if norm == 0 {
		return v
	}
	return [2]float64{v[0] / norm, v[1] / norm}
}
