// Package factor: factor product and scalar scaling.
package factor

import "fmt"

// absent marks a result-scope variable that does not occur in an operand's
// scope; its odometer stride is 0, so the operand's cursor is held fixed
// while that digit cycles (broadcasting).
const absent = -1

// Multiply returns the pointwise product of f and g over the union of their
// scopes. The result scope is f's scope followed by every g variable not
// already present, preserving each side's internal order; cardinalities
// carry over from whichever side first introduces the variable. Every
// result entry is the product of the two source entries addressed by the
// result assignment restricted to each operand's scope. This covers all
// overlap patterns: disjoint scopes (full outer product), identical scopes
// (exact pointwise product), and partial overlap.
//
// Two factors sharing a variable id refer to the same random variable by
// convention and must agree on its cardinality; a clash is a programmer
// error and panics.
//
// Complexity: O(result Count) time, with O(1) index work per entry via the
// shared odometer.
func (f *Factor) Multiply(g *Factor) *Factor {
	// Union scope: f's variables first, then g's new ones, stable order.
	scope := append([]int(nil), f.scope...)
	cards := append([]int(nil), f.cards...)
	for i, id := range g.scope {
		if positionOf(f.scope, id) == absent {
			scope = append(scope, id)
			cards = append(cards, g.cards[i])
		}
	}

	// Per-result-position operand maps and odometer stride rows.
	xRow := make([]int, len(scope))
	yRow := make([]int, len(scope))
	for l, id := range scope {
		if xi := positionOf(f.scope, id); xi != absent {
			xRow[l] = f.strides[xi]
		}
		if yi := positionOf(g.scope, id); yi != absent {
			yRow[l] = g.strides[yi]
			if xi := positionOf(f.scope, id); xi != absent && f.cards[xi] != g.cards[yi] {
				panic(fmt.Sprintf("factor: cardinality clash for variable %d (%d vs %d)",
					id, f.cards[xi], g.cards[yi]))
			}
		}
	}

	n := 1
	for _, c := range cards {
		n *= c
	}
	out := alloc(scope, cards, n)
	od := newOdometer(cards, xRow, yRow)
	for i := range out.values {
		out.values[i] = f.values[od.cursor(0)] * g.values[od.cursor(1)]
		od.step()
	}

	return out
}

// Scale returns a new factor with every entry multiplied by s; the scalar
// form of the product. Same scope and cardinalities as f.
// Complexity: O(Count).
func (f *Factor) Scale(s float64) *Factor {
	out := f.Clone()
	for i := range out.values {
		out.values[i] *= s
	}

	return out
}

// positionOf returns the index of id within scope, or absent. Scopes are
// short, so the linear scan beats a map.
func positionOf(scope []int, id int) int {
	for i, v := range scope {
		if v == id {
			return i
		}
	}

	return absent
}
