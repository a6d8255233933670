// Package factor implements the dense discrete factor, the fundamental
// building block of probabilistic graphical model inference (belief
// propagation, variable elimination): a table mapping every joint
// assignment of a set of discrete random variables to a real value
// (an unnormalized probability, a potential, or a message).
//
// 🚀 What is a factor?
//
//	A factor phi over variables X1..Xn with cardinalities c1..cn stores
//	c1*...*cn values in a flat slice, addressed by a mixed-radix
//	stride mapping: the entry for assignment a lives at
//	sum(a[i]*strides[i]), a bijection between the joint domain and
//	0..Count()-1. All of the package's algebra rides on that mapping.
//
// ✨ Key features:
//   - construction with full structural validation (New / NewZero)
//   - element access by assignment or by flat index, both bounds-checked
//   - factor product with implicit broadcasting over unioned scopes
//   - sum- and max-marginalization of a single variable
//   - normalization, scalar scaling, evidence reduction, factor division
//   - maximum-assignment recovery (ArgMax)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/factor"
//
//	phi, _ := factor.New([]int{0, 1}, []int{3, 2},
//	    []float64{0.5, 0.1, 0.3, 0.8, 0, 0.9})
//	psi, _ := factor.New([]int{1, 2}, []int{2, 2},
//	    []float64{0.5, 0.1, 0.7, 0.2})
//
//	joint := phi.Multiply(psi)        // scope {0,1,2}, broadcast product
//	belief := joint.Marginalize(1)    // sum variable 1 out
//	posterior := belief.Normalize()   // mass 1
//	mode := posterior.ArgMax()        // most likely assignment
//
// Variable identifiers are caller-assigned integers with no registry; two
// factors sharing an id refer to the same random variable by convention.
//
// Performance:
//
//   - Product and marginalization visit each source entry a constant number
//     of times using an incremental mixed-radix "odometer" counter; no
//     per-cell index arithmetic is recomputed.
//   - Time: O(result Count) for Multiply, O(Count) for everything else.
//   - Memory: each operation returns a factor owning its own storage.
//
// Concurrency: a Factor is plain data with no internal locking. Treat a
// completed factor as immutable once shared; independent operations on
// independent factors are safe to run in parallel.
//
// See examples in example_test.go.
package factor
