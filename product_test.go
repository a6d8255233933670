package factor_test

import (
	"testing"

	"github.com/katalvlaran/factor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMultiply_PartialOverlap pins the broadcast product on a known table:
// phi(X0,X1) over cards (3,2) times psi(X1,X2) over cards (2,2) must yield
// the 3x2x2 joint below, entry for entry.
func TestMultiply_PartialOverlap(t *testing.T) {
	phi := mustNew(t, []int{0, 1}, []int{3, 2}, []float64{0.5, 0.1, 0.3, 0.8, 0, 0.9})
	psi := mustNew(t, []int{1, 2}, []int{2, 2}, []float64{0.5, 0.1, 0.7, 0.2})

	want := mustNew(t, []int{0, 1, 2}, []int{3, 2, 2},
		[]float64{0.25, 0.05, 0.15, 0.08, 0, 0.09, 0.35, 0.07, 0.21, 0.16, 0, 0.18})

	got := phi.Multiply(psi)
	assert.Equal(t, []int{0, 1, 2}, got.Scope(), "left scope first, then new right variables")
	assert.Equal(t, []int{3, 2, 2}, got.Cardinalities())
	assert.True(t, want.Equal(got, 1e-16), "joint table mismatch:\nwant %v\ngot  %v", want, got)
}

// TestMultiply_Commutative verifies that A*B and B*A hold the same
// assignment-to-value mapping even though their scope orders differ.
func TestMultiply_Commutative(t *testing.T) {
	a := mustNew(t, []int{0, 1}, []int{3, 2}, []float64{0.5, 0.1, 0.3, 0.8, 0, 0.9})
	b := mustNew(t, []int{1, 2}, []int{2, 2}, []float64{0.5, 0.1, 0.7, 0.2})

	ab := a.Multiply(b)
	ba := b.Multiply(a)
	require.ElementsMatch(t, ab.Scope(), ba.Scope(), "both products cover the same variable set")

	// Walk every AB assignment and look the same assignment up in BA's order.
	baPos := map[int]int{}
	for i, id := range ba.Scope() {
		baPos[id] = i
	}
	cards := ab.Cardinalities()
	scope := ab.Scope()
	asg := make([]int, len(scope))
	for {
		va, err := ab.At(asg)
		require.NoError(t, err)

		reordered := make([]int, len(asg))
		for i, id := range scope {
			reordered[baPos[id]] = asg[i]
		}
		vb, err := ba.At(reordered)
		require.NoError(t, err)
		assert.InDelta(t, va, vb, 1e-16, "assignment %v", asg)

		if !nextAssignment(asg, cards) {
			break
		}
	}
}

// TestMultiply_DisjointScopes checks the full outer product: no shared
// variables, every pair of source entries multiplied exactly once.
func TestMultiply_DisjointScopes(t *testing.T) {
	a := mustNew(t, []int{0}, []int{2}, []float64{2, 3})
	b := mustNew(t, []int{1}, []int{3}, []float64{5, 7, 11})

	got := a.Multiply(b)
	want := mustNew(t, []int{0, 1}, []int{2, 3}, []float64{10, 15, 14, 21, 22, 33})
	assert.True(t, want.Equal(got, 0), "outer product mismatch: got %v", got)
}

// TestMultiply_IdenticalScopes checks the exact pointwise case: same scope,
// same layout, entries multiply one-for-one.
func TestMultiply_IdenticalScopes(t *testing.T) {
	a := mustNew(t, []int{4, 2}, []int{2, 2}, []float64{1, 2, 3, 4})
	b := mustNew(t, []int{4, 2}, []int{2, 2}, []float64{10, 10, 0.5, 0.25})

	got := a.Multiply(b)
	want := mustNew(t, []int{4, 2}, []int{2, 2}, []float64{10, 20, 1.5, 1})
	assert.True(t, want.Equal(got, 1e-16), "pointwise product mismatch: got %v", got)
}

// TestMultiply_ScalarFactor checks that an empty-scope factor acts as a
// broadcast constant on either side.
func TestMultiply_ScalarFactor(t *testing.T) {
	a := mustNew(t, []int{0}, []int{3}, []float64{1, 2, 3})
	s := mustNew(t, nil, nil, []float64{2})

	left := s.Multiply(a)
	right := a.Multiply(s)
	want := mustNew(t, []int{0}, []int{3}, []float64{2, 4, 6})
	assert.True(t, want.Equal(right, 0), "scalar on the right: got %v", right)
	assert.Equal(t, []int{0}, left.Scope(), "scalar on the left still unions to a's scope")
	assert.InDelta(t, 4, mustAt(t, left, []int{1}), 0, "scalar on the left scales entries")
}

// TestMultiply_CardinalityClash documents the shared-variable convention:
// disagreeing cardinalities for one id are a programmer error and panic.
func TestMultiply_CardinalityClash(t *testing.T) {
	a := mustNew(t, []int{0}, []int{3}, []float64{1, 2, 3})
	b := mustNew(t, []int{0}, []int{2}, []float64{1, 2})
	assert.Panics(t, func() { a.Multiply(b) }, "cardinality clash must panic")
}

// TestScale verifies scalar scaling returns a fresh table and leaves the
// source untouched.
func TestScale(t *testing.T) {
	f := mustNew(t, []int{0}, []int{3}, []float64{1, 2, 3})
	g := f.Scale(0.5)

	want := mustNew(t, []int{0}, []int{3}, []float64{0.5, 1, 1.5})
	assert.True(t, want.Equal(g, 0), "scaled table mismatch: got %v", g)
	assert.Equal(t, 3.0, mustAt(t, f, []int{2}), "source must be untouched")

	one := f.Scale(1)
	assert.True(t, f.Equal(one, 0), "scaling by 1 is the identity mapping")
}

// mustAt reads an entry by assignment, failing the test on error.
func mustAt(t *testing.T, f *factor.Factor, a []int) float64 {
	t.Helper()
	v, err := f.At(a)
	require.NoError(t, err)

	return v
}
