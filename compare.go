package skipnav

import "cmp"

// Comparator defines a total order over K. It follows the semantics of
// cmp.Compare: a negative result if a < b, zero if a == b and a positive
// result if a > b.
type Comparator[K any] func(a, b K) int

const (
	// CmpLess if x is less than y.
	CmpLess = -1
	// CmpEqual if x equals y.
	CmpEqual = 0
	// CmpGreater if x is greater than y.
	CmpGreater = 1
)

// NaturalOrder returns a Comparator for builtin ordered types.
func NaturalOrder[K cmp.Ordered]() Comparator[K] {
	return cmp.Compare[K]
}

// Reverse returns a Comparator that orders keys opposite to c.
func Reverse[K any](c Comparator[K]) Comparator[K] {
	return func(a, b K) int { return c(b, a) }
}

// Comparing orders values of T by a key extracted from each of them. It
// replaces field-name based comparators with an explicit accessor.
func Comparing[T, F any](extract func(T) F, c Comparator[F]) Comparator[T] {
	return func(a, b T) int { return c(extract(a), extract(b)) }
}

// ThenComparing returns a Comparator that consults next only when first
// reports the two values as equal.
func ThenComparing[T any](first, next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := first(a, b); r != CmpEqual {
			return r
		}
		return next(a, b)
	}
}

// sign clamps a comparator result to CmpLess, CmpEqual or CmpGreater.
func sign(r int) int {
	switch {
	case r < 0:
		return CmpLess
	case r > 0:
		return CmpGreater
	default:
		return CmpEqual
	}
}
