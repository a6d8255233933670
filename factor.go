// Package factor: construction and element access.
// Constructors are the only producers of Factor values and validate every
// structural invariant up front, so the algebraic methods stay total.
package factor

import "math"

// New creates a factor over scope with the given cardinalities and table
// values.
// Stage 1 (Validate): equal lengths, cardinalities >= 1, distinct scope ids,
// value count == product(cardinalities), finite values.
// Stage 2 (Prepare): compute prefix-product strides, copy inputs.
// Stage 3 (Finalize): return the new Factor or the first failing sentinel.
// Complexity: O(Count) time and memory.
func New(scope, cards []int, values []float64) (*Factor, error) {
	n, err := validateShape(scope, cards)
	if err != nil {
		return nil, err
	}
	if len(values) != n {
		return nil, ErrValueCount
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
	}

	f := alloc(scope, cards, n)
	copy(f.values, values)

	return f, nil
}

// NewZero creates a factor over scope with the given cardinalities and an
// all-zero table, ready to be filled in via Set.
// Complexity: O(Count) time and memory.
func NewZero(scope, cards []int) (*Factor, error) {
	n, err := validateShape(scope, cards)
	if err != nil {
		return nil, err
	}

	return alloc(scope, cards, n), nil
}

// validateShape checks scope/cardinality structure and returns the table
// size (product of cardinalities).
func validateShape(scope, cards []int) (int, error) {
	if len(scope) != len(cards) {
		return 0, ErrScopeCardinality
	}
	n := 1
	for _, c := range cards {
		if c < 1 {
			return 0, ErrBadCardinality
		}
		n *= c
	}
	// Distinct-id check; scopes are short, so the map cost is negligible.
	seen := make(map[int]struct{}, len(scope))
	for _, id := range scope {
		if _, dup := seen[id]; dup {
			return 0, ErrDuplicateVariable
		}
		seen[id] = struct{}{}
	}

	return n, nil
}

// alloc builds a Factor with copied scope/cards, computed strides and a
// zeroed table of n entries.
func alloc(scope, cards []int, n int) *Factor {
	f := &Factor{
		scope:   append([]int(nil), scope...),
		cards:   append([]int(nil), cards...),
		strides: make([]int, len(cards)),
		values:  make([]float64, n),
	}
	// Mixed-radix positional numbering: the first scope variable is the
	// least-significant digit.
	acc := 1
	for i, c := range cards {
		f.strides[i] = acc
		acc *= c
	}

	return f
}

// IndexOf maps an assignment (one value per scope variable, in scope order)
// to its flat storage index.
// Stage 1 (Validate): arity, then each value within [0, cardinality).
// Stage 2 (Execute): dot product with the stride vector.
// Complexity: O(len(scope)).
func (f *Factor) IndexOf(assignment []int) (int, error) {
	if len(assignment) != len(f.scope) {
		return 0, ErrArity
	}
	idx := 0
	for i, v := range assignment {
		if v < 0 || v >= f.cards[i] {
			return 0, ErrAssignmentRange
		}
		idx += v * f.strides[i]
	}

	return idx, nil
}

// AssignmentOf maps a flat storage index back to its assignment, the inverse
// of IndexOf: assignment[i] = (index / strides[i]) % cards[i].
// Complexity: O(len(scope)).
func (f *Factor) AssignmentOf(index int) ([]int, error) {
	if index < 0 || index >= len(f.values) {
		return nil, ErrIndexRange
	}
	a := make([]int, len(f.scope))
	for i := range f.scope {
		a[i] = (index / f.strides[i]) % f.cards[i]
	}

	return a, nil
}

// At retrieves the entry for the given assignment.
// Complexity: O(len(scope)).
func (f *Factor) At(assignment []int) (float64, error) {
	idx, err := f.IndexOf(assignment)
	if err != nil {
		return 0, err
	}

	return f.values[idx], nil
}

// Set assigns v to the entry for the given assignment. v must be finite.
// Complexity: O(len(scope)).
func (f *Factor) Set(assignment []int, v float64) error {
	idx, err := f.IndexOf(assignment)
	if err != nil {
		return err
	}

	return f.SetIndex(idx, v)
}

// AtIndex retrieves the entry at flat index i, 0 <= i < Count().
// Complexity: O(1).
func (f *Factor) AtIndex(i int) (float64, error) {
	if i < 0 || i >= len(f.values) {
		return 0, ErrIndexRange
	}

	return f.values[i], nil
}

// SetIndex assigns v at flat index i. v must be finite.
// Complexity: O(1).
func (f *Factor) SetIndex(i int, v float64) error {
	if i < 0 || i >= len(f.values) {
		return ErrIndexRange
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	f.values[i] = v

	return nil
}
