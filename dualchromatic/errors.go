package dualchromatic

import "errors"

// ErrNotDivisibleBy12 is returned when the dual graph's chromatic
// polynomial at 4 is not a multiple of 12 — which should never happen
// for the dual of a planar cubic graph's Faces Matrix (spec §4.8, §7)
// and signals a malformed input graph rather than a recoverable state.
var ErrNotDivisibleBy12 = errors.New("dualchromatic: chromatic polynomial at 4 is not divisible by 12")
