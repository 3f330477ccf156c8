package gausssum

import (
	"errors"
	"fmt"
)

// ErrNotInteger is the sentinel spec §7 names "NotInteger": the
// end-of-sweep assertion that a sum of Gaussian terms simplifies to a
// rational integer failed. This is a bug-indicating, fatal condition,
// not a recoverable one — see spec §7.
var ErrNotInteger = errors.New("gausssum: sum did not simplify to an integer")

// NotIntegerError carries the unsimplified Value for debugging, as §7
// requires ("surface with the unsimplified value").
type NotIntegerError struct {
	Value Value
}

func (e *NotIntegerError) Error() string {
	return fmt.Sprintf("%s: got %s", ErrNotInteger, e.Value)
}

func (e *NotIntegerError) Unwrap() error { return ErrNotInteger }
