// Package factor: variable elimination (sum and max), normalization and
// maximum-assignment recovery.
package factor

// Marginalize returns a new factor with variableID summed out: its scope is
// f's scope without variableID, and each entry is the sum over all settings
// of variableID with the remaining variables held fixed. If variableID is
// not in scope, f itself is returned unchanged; the identity keeps the
// operation total and composable in iterative algorithms.
//
// The traversal keeps a single walking cursor into the source table driven
// by an odometer over the kept variables; each output cell reads the
// marginCard source entries spaced marginStride apart from the cursor. Total
// source visits: O(output Count * eliminated cardinality), with no per-cell
// index recomputation.
func (f *Factor) Marginalize(variableID int) *Factor {
	pos := positionOf(f.scope, variableID)
	if pos == absent {
		return f
	}
	out, od := f.dropVariable(pos)
	marginStride, marginCard := f.strides[pos], f.cards[pos]

	for i := range out.values {
		cur, s := od.cursor(0), 0.0
		for t := 0; t < marginCard; t++ {
			s += f.values[cur]
			cur += marginStride
		}
		out.values[i] = s
		od.step()
	}

	return out
}

// MaxMarginalize returns a new factor with variableID maxed out instead of
// summed out, the max-product companion of Marginalize used for MAP queries.
// Same scope, ordering and identity-on-absent behavior as Marginalize.
func (f *Factor) MaxMarginalize(variableID int) *Factor {
	pos := positionOf(f.scope, variableID)
	if pos == absent {
		return f
	}
	out, od := f.dropVariable(pos)
	marginStride, marginCard := f.strides[pos], f.cards[pos]

	for i := range out.values {
		cur := od.cursor(0)
		best := f.values[cur]
		for t := 1; t < marginCard; t++ {
			cur += marginStride
			if f.values[cur] > best {
				best = f.values[cur]
			}
		}
		out.values[i] = best
		od.step()
	}

	return out
}

// dropVariable allocates the elimination result (f's scope without position
// pos) and an odometer over the kept variables whose single cursor walks the
// source table.
func (f *Factor) dropVariable(pos int) (*Factor, *odometer) {
	kept := len(f.scope) - 1
	scope := make([]int, 0, kept)
	cards := make([]int, 0, kept)
	srcRow := make([]int, 0, kept)
	for i, id := range f.scope {
		if i == pos {
			continue
		}
		scope = append(scope, id)
		cards = append(cards, f.cards[i])
		srcRow = append(srcRow, f.strides[i])
	}

	return alloc(scope, cards, len(f.values)/f.cards[pos]), newOdometer(cards, srcRow)
}

// Normalize returns a new factor whose entries sum to 1, dividing every
// entry by the total mass. A zero-mass table cannot be normalized; in that
// case f itself is returned unchanged (a documented no-op, not an error),
// so repeated normalization of running products never needs call-site
// special-casing. The zero check is exact, not an epsilon test.
// Complexity: O(Count).
func (f *Factor) Normalize() *Factor {
	z := f.Sum()
	if z == 0 {
		return f
	}
	out := f.Clone()
	for i := range out.values {
		out.values[i] /= z
	}

	return out
}

// ArgMax returns the assignment (in scope order) of the greatest entry,
// resolving ties toward the lowest flat index. The running maximum is
// seeded from the first entry, so an all-non-positive table correctly
// reports the assignment of index 0. A valid factor always has at least one
// entry (cardinalities are >= 1), so ArgMax is total.
// Complexity: O(Count).
func (f *Factor) ArgMax() []int {
	bestIdx := 0
	best := f.values[0]
	for i := 1; i < len(f.values); i++ {
		if f.values[i] > best {
			best, bestIdx = f.values[i], i
		}
	}
	a, _ := f.AssignmentOf(bestIdx) // bestIdx is always in range

	return a
}
