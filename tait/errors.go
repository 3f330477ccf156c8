package tait

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned by a sweep when Options.Cancel reported true
// before the sweep finished.
var ErrCancelled = errors.New("tait: sweep cancelled")

// ErrInconsistent is the sentinel Fixed wraps in an *InconsistencyError
// when a σ_free makes the fixed-spin linear system inconsistent (spec
// §4.7 step 4, §7).
var ErrInconsistent = errors.New("tait: fixed-spin system is inconsistent")

// InconsistencyDiagnostic carries the details spec §4.7/§7 require when
// Fixed discovers an inconsistent system for some free-vertex spin
// assignment: the offending assignment, the augmented matrix it built,
// and the two ranks whose mismatch proved inconsistency.
type InconsistencyDiagnostic struct {
	SigmaFree     []int
	Augmented     [][]int
	Rank          int
	AugmentedRank int
}

// InconsistencyError wraps ErrInconsistent with a Diagnostic.
type InconsistencyError struct {
	Diagnostic InconsistencyDiagnostic
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("tait: fixed-spin system is inconsistent for sigma_free %v", e.Diagnostic.SigmaFree)
}

func (e *InconsistencyError) Unwrap() error { return ErrInconsistent }
