// Package planar computes a planar embedding of a cubic graph and traces
// its faces (spec §4.1-§4.2).
//
// The original implementation (original_source/app/graph.py) delegates
// the embedding itself to networkx's planar_layout, which wraps a general
// planarity test (left-right / Boyer-Myrvold) plus a combinatorial
// embedding-to-coordinates step. No example repo in this module's corpus
// carries a general planarity library, and porting Boyer-Myrvold from
// scratch is out of proportion to what the spec actually needs.
//
// Spec §2 restricts the domain to cubic graphs: every vertex has degree
// exactly 3. That restriction makes a from-scratch algorithm tractable:
// at a degree-3 vertex a combinatorial rotation system has only two
// possible cyclic orders of its three edges (clockwise or
// counter-clockwise), so the space of rotation systems for the whole
// graph has size 2^V, not (deg-1)! per vertex. Positions searches that
// space directly, keeping a rotation system if and only if tracing faces
// under it satisfies Euler's formula V - E + F = 2 (a genus-0 embedding
// exists iff some rotation system achieves it, for a connected graph).
// Once a valid rotation system is found, vertex coordinates are produced
// by Tutte's barycentric embedding theorem: fix the vertices of one face
// at the corners of a regular polygon and solve, for every other vertex,
// "I am the average of my neighbors" as a linear system. gonum's
// mat.LU.SolveVecTo (mirrored on gonum-gonum/mat/lu_test.go's usage pattern)
// does that solve.
package planar
