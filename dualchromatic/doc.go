// Package dualchromatic cross-checks a Tait-0 count against the dual
// graph's chromatic polynomial evaluated at 4 (spec §4.8): a planar
// cubic graph's Tait-0 count equals P(dual graph, 4) / 12.
//
// Grounded on original_source/app/graph.py's calc_tait_0_dual_chromatic,
// which hands the dual adjacency matrix to networkx's
// nx.chromatic_polynomial. This module has no polynomial-algebra system
// and only ever needs the value at x=4, so it evaluates P(G, 4) directly
// via the deletion-contraction recurrence
//
//	P(G, k) = P(G - e, k) - P(G / e, k),  P(G with no edges, k) = k^|V|
//
// over a gonum.org/v1/gonum/graph/simple.UndirectedGraph, in the same
// style graph/coloring/coloring.go walks a graph.Undirected — rather
// than constructing an explicit polynomial and substituting x=4.
package dualchromatic
