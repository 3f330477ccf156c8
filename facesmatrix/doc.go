// Package facesmatrix builds the Faces Matrix of a planar cubic graph
// (spec §4.3) and derives the dual adjacency structures used by package
// dualchromatic.
//
// Grounded on original_source/app/graph.py's build_faces_matrix and
// faces_matrix_to_dual_adjacency_matrix: fm[i][j] is the sorted list of
// vertices shared by face i and face j (fm[i][i] is face i's own vertex
// set). The dual adjacency matrix marks faces i != j adjacent whenever
// fm[i][j] is nonempty, matching the original's definition exactly —
// it does not require the shared set to have size 2, so two faces that
// only touch at a single vertex still count as dual-adjacent.
package facesmatrix
