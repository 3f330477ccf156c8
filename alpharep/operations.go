package alpharep

import (
	"github.com/ilyaskalimullinn/alpharep/dualchromatic"
	"github.com/ilyaskalimullinn/alpharep/facesmatrix"
	"github.com/ilyaskalimullinn/alpharep/gausssum"
	"github.com/ilyaskalimullinn/alpharep/planar"
	"github.com/ilyaskalimullinn/alpharep/tait"
)

// Positions lays out a planar cubic graph's vertices, given as an
// adjacency matrix, returning one (x, y) pair per vertex.
func Positions(adjacency [][]int) ([][2]float64, error) {
	return planar.Positions(adjacency)
}

// FindFaces traces the embedding's faces from a vertex layout already
// produced by Positions.
func FindFaces(adjacency [][]int, pos [][2]float64) [][]int {
	return planar.Faces(adjacency, pos)
}

// BuildFacesMatrix builds the Faces Matrix from a face list.
func BuildFacesMatrix(faces [][]int) facesmatrix.Matrix {
	return facesmatrix.Build(faces)
}

// CalcTait0Detailed enumerates every spin assignment's Gaussian sum,
// rank, and largest nonzero principal minor, and sums them into Tait-0.
func CalcTait0Detailed(fm facesmatrix.Matrix, opts tait.Options) (tait.Detailed, error) {
	return tait.CalcDetailed(fm, opts)
}

// CalcTait0Aggregated is CalcTait0Detailed's result grouped by
// (determinant, rank, Gaussian sum).
func CalcTait0Aggregated(fm facesmatrix.Matrix, opts tait.Options) (tait.Aggregated, error) {
	return tait.CalcAggregated(fm, opts)
}

// CalcTait0Fixed enumerates only the spin assignments consistent with a
// partial assignment of fixed vertex spins.
func CalcTait0Fixed(fm facesmatrix.Matrix, fixed map[int]int, opts tait.Options) (tait.FixedResult, error) {
	return tait.Fixed(fm, fixed, opts)
}

// CalcTait0DualChromatic cross-checks Tait-0 via the dual graph's
// chromatic polynomial at x=4, divided by 12.
func CalcTait0DualChromatic(fm facesmatrix.Matrix) (int, error) {
	return dualchromatic.CountFromFacesMatrix(fm)
}

// CalcSValues runs the S-values sweep over the given "in" and "mid"
// vertex partitions.
func CalcSValues(fm facesmatrix.Matrix, verticesIn, verticesMid []int, opts tait.Options) ([]gausssum.Value, error) {
	return tait.SValues(fm, verticesIn, verticesMid, opts)
}
