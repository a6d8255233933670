// Package factor: the Factor value type and its read-only surface.
// A Factor is a dense table over a fixed, ordered scope of discrete
// variables, stored in a flat slice for performance and cache friendliness.
package factor

import (
	"fmt"
	"strings"
)

// Factor is a dense multi-dimensional table indexed by a tuple of discrete
// random variables. scope holds the variable ids in storage order, cards the
// matching domain sizes, and values the table in mixed-radix flat order:
// the entry for assignment a lives at sum(a[i]*strides[i]).
//
// Scope and cardinalities are fixed for the life of the instance; only the
// table values may be mutated (Set/SetIndex). Algebraic operations
// (Multiply, Marginalize, Normalize, Scale, Reduce, Divide) return new
// independent instances and never alias storage, so a constructed Factor is
// safe to share across goroutines once the last write completes.
type Factor struct {
	scope   []int     // variable ids, order-significant, pairwise distinct
	cards   []int     // domain sizes, cards[i] >= 1, len == len(scope)
	strides []int     // strides[0]=1; strides[i]=strides[i-1]*cards[i-1]
	values  []float64 // flat backing storage, len == product(cards)
}

// Scope returns a copy of the factor's ordered variable ids.
// Complexity: O(len(scope)).
func (f *Factor) Scope() []int {
	out := make([]int, len(f.scope))
	copy(out, f.scope)

	return out
}

// Cardinalities returns a copy of the factor's ordered domain sizes.
// Complexity: O(len(scope)).
func (f *Factor) Cardinalities() []int {
	out := make([]int, len(f.cards))
	copy(out, f.cards)

	return out
}

// Count returns the number of table entries, the product of all
// cardinalities. An empty scope yields Count()==1, a scalar factor.
// Complexity: O(1).
func (f *Factor) Count() int {
	return len(f.values)
}

// Sum returns the total mass of the table, the sum of all entries.
// Complexity: O(Count).
func (f *Factor) Sum() float64 {
	var z float64
	for _, v := range f.values {
		z += v
	}

	return z
}

// Clone returns a deep copy of the factor. Mutating the clone never affects
// the original.
// Complexity: O(Count) time and memory.
func (f *Factor) Clone() *Factor {
	vals := make([]float64, len(f.values))
	copy(vals, f.values)

	return &Factor{
		scope:   append([]int(nil), f.scope...),
		cards:   append([]int(nil), f.cards...),
		strides: append([]int(nil), f.strides...),
		values:  vals,
	}
}

// Equal reports whether g has the same scope, the same cardinalities, and
// values equal within eps at every entry. Scope order matters: two factors
// over the same variable set in different orders are not Equal.
// Complexity: O(Count).
func (f *Factor) Equal(g *Factor, eps float64) bool {
	if len(f.scope) != len(g.scope) || len(f.values) != len(g.values) {
		return false
	}
	for i := range f.scope {
		if f.scope[i] != g.scope[i] || f.cards[i] != g.cards[i] {
			return false
		}
	}
	for i := range f.values {
		d := f.values[i] - g.values[i]
		if d > eps || d < -eps {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Format: "phi(scope|cards) [v0 v1 ...]".
func (f *Factor) String() string {
	var sb strings.Builder
	sb.WriteString("phi(")
	for i, id := range f.scope {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d/%d", id, f.cards[i])
	}
	sb.WriteString(") [")
	for i, v := range f.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteByte(']')

	return sb.String()
}
