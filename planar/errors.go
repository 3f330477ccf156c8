package planar

import "errors"

// ErrNotPlanar is returned by Positions when no rotation system of the
// input graph satisfies Euler's formula, i.e. the graph has no genus-0
// embedding.
var ErrNotPlanar = errors.New("planar: graph has no planar embedding")

// ErrNotCubic is returned by Positions when some vertex does not have
// degree exactly 3. Spec §2 restricts the domain to cubic graphs; the
// 2^V rotation-system search below is only valid in that regime, since a
// degree-3 vertex has exactly two distinct cyclic neighbor orders.
var ErrNotCubic = errors.New("planar: graph is not cubic")
