package gausssum

// Sum accumulates a running total of Values exactly, with no
// intermediate rounding — the accumulator behind every sweep in package
// tait. Construct it with NewSum; the zero value holds nil rationals
// and is not usable.
type Sum struct {
	total Value
}

// NewSum returns an empty accumulator (total zero).
func NewSum() *Sum {
	return &Sum{total: zero()}
}

// Add folds v into the running total.
func (s *Sum) Add(v Value) {
	s.total = s.total.Add(v)
}

// Value returns the accumulated total so far.
func (s *Sum) Value() Value {
	return s.total
}

// Int returns the accumulated total as an exact integer, or a
// *NotIntegerError (wrapping ErrNotInteger) if the imaginary/√3 parts did
// not cancel exactly. Spec §4.5-§4.7 require every sweep's total to pass
// this check.
func (s *Sum) Int() (int64, error) {
	n, ok := s.total.IsInt()
	if !ok {
		return 0, &NotIntegerError{Value: s.total}
	}
	return n.Int64(), nil
}

// SumValues adds a slice of Values and returns the total — a convenience
// for call sites that already materialized the whole per-σ list (spec
// §4.5's "detailed" enumerator keeps one).
func SumValues(vs []Value) Value {
	s := NewSum()
	for _, v := range vs {
		s.Add(v)
	}
	return s.Value()
}
