// Package factor: evidence conditioning and factor division.
package factor

// Reduce conditions the factor on observed evidence: it returns a new
// factor without variableID in its scope, keeping only the entries where
// variableID takes the given value. If variableID is not in scope, f itself
// is returned unchanged, mirroring Marginalize's identity policy. A value
// outside [0, cardinality) fails with ErrAssignmentRange.
//
// The traversal reuses the elimination odometer: the kept-variable cursor
// walks the source table from the fixed base offset value*stride.
// Complexity: O(output Count).
func (f *Factor) Reduce(variableID, value int) (*Factor, error) {
	pos := positionOf(f.scope, variableID)
	if pos == absent {
		return f, nil
	}
	if value < 0 || value >= f.cards[pos] {
		return nil, ErrAssignmentRange
	}

	out, od := f.dropVariable(pos)
	base := value * f.strides[pos]
	for i := range out.values {
		out.values[i] = f.values[od.cursor(0)+base]
		od.step()
	}

	return out, nil
}

// Divide returns the pointwise quotient f/g, the message-cancellation
// operation of belief propagation. g's scope must be a subset of f's scope
// with matching cardinalities (ErrScopeNotSubset otherwise); the result has
// f's scope. Cells follow the standard factor-division convention: 0/0 is
// defined as 0. A zero divisor entry under a non-zero numerator fails with
// ErrDivideByZero, keeping the table free of Inf.
// Complexity: O(Count).
func (f *Factor) Divide(g *Factor) (*Factor, error) {
	// Divisor stride row over f's scope; 0 where g does not constrain the
	// digit (broadcast).
	yRow := make([]int, len(f.scope))
	for l, id := range f.scope {
		if yi := positionOf(g.scope, id); yi != absent {
			if g.cards[yi] != f.cards[l] {
				return nil, ErrScopeNotSubset
			}
			yRow[l] = g.strides[yi]
		}
	}
	// Every divisor variable must occur in f's scope.
	for _, id := range g.scope {
		if positionOf(f.scope, id) == absent {
			return nil, ErrScopeNotSubset
		}
	}

	out := alloc(f.scope, f.cards, len(f.values))
	od := newOdometer(f.cards, yRow)
	for i := range out.values {
		num, den := f.values[i], g.values[od.cursor(0)]
		switch {
		case den != 0:
			out.values[i] = num / den
		case num != 0:
			return nil, ErrDivideByZero
		}
		od.step()
	}

	return out, nil
}
