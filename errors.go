// SPDX-License-Identifier: MIT
// Package factor: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the factor
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors (violated caller conventions).

package factor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "factor: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; callers match them with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape (scope/cardinality) -> duplicate scope id -> value count -> NaN/Inf
// -> arity -> assignment/index range -> scope subset -> divide-by-zero.

var (
	// ErrScopeCardinality is returned by constructors when the scope and
	// cardinality sequences have different lengths.
	ErrScopeCardinality = errors.New("factor: scope and cardinality lengths differ")

	// ErrBadCardinality is returned by constructors when any cardinality is < 1.
	// Every variable must have a non-empty domain.
	ErrBadCardinality = errors.New("factor: cardinality must be >= 1")

	// ErrDuplicateVariable is returned by constructors when the same variable
	// id appears more than once in a scope. An id denotes one variable and may
	// appear at most once per factor.
	ErrDuplicateVariable = errors.New("factor: duplicate variable in scope")

	// ErrValueCount is returned by constructors when the supplied value slice
	// length does not equal the product of the cardinalities.
	ErrValueCount = errors.New("factor: value count does not match table size")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required (construction and setters).
	ErrNaNInf = errors.New("factor: NaN or Inf encountered")

	// ErrArity indicates an assignment whose length does not match the scope
	// length. Assignment-based accessors MUST return this, not panic.
	ErrArity = errors.New("factor: assignment length does not match scope")

	// ErrAssignmentRange indicates a per-variable assignment value outside
	// [0, cardinality).
	ErrAssignmentRange = errors.New("factor: assignment value out of range")

	// ErrIndexRange indicates a flat index outside [0, Count()).
	ErrIndexRange = errors.New("factor: flat index out of range")

	// ErrScopeNotSubset is returned by Divide when the divisor's scope is not
	// a subset of the receiver's scope (or a shared variable disagrees on
	// cardinality).
	ErrScopeNotSubset = errors.New("factor: divisor scope is not a subset")

	// ErrDivideByZero is returned by Divide when a zero divisor entry meets a
	// non-zero numerator. The 0/0 cell is defined as 0 and is not an error.
	ErrDivideByZero = errors.New("factor: division by zero entry")
)
