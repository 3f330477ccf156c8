// Package tait enumerates Tait-0 colorings of a planar cubic graph by
// summing normalized Gaussian sums over its Faces Matrix for every spin
// assignment σ ∈ {-1,+1}^V (spec §4.5-§4.7, §4.9).
//
// Detailed and Aggregated share one internal sweep core (sweep.go), the
// way gonum's mat.SVD and mat.Eigen share one factorization pipeline
// behind differently shaped result types — so they are guaranteed to
// agree on the total Tait-0 count by construction. Fixed runs its own
// loop over the free vertices, built from the same sigmaAt and
// fillMatrix helpers; with fixed == nil it visits the same σ in the same
// order and every bordered determinant is 0, so its total matches
// Detailed's.
//
// Every sweep here enumerates σ in plain lexicographic (binary-counter)
// order. The Gray-code speed trick design note §9 suggests — successive
// M(σ) differ from M(σ with one bit flipped) by a single rank-1 update —
// is a valid internal optimization but is not implemented here: for the
// small graphs this engine targets (F <= ~20 faces) the O(V·F²) masks-sum
// per σ this package does already run comfortably, and keeping one
// obviously-correct sweep order removes a whole class of bugs from
// restoring canonical order before returning, which §5 requires
// regardless of internal iteration order.
package tait
