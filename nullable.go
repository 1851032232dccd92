package skipnav

import (
	"encoding/json"

	g "github.com/anacrolix/generics"
)

// Nullable holds either a value or one of two absent states. An Unset
// Nullable was never assigned; a Null one was explicitly emptied. The zero
// value is Unset.
type Nullable[T any] struct {
	assigned bool
	v        g.Option[T]
}

// Unset returns a Nullable in the not-yet-assigned state.
func Unset[T any]() Nullable[T] {
	return Nullable[T]{}
}

// Null returns a Nullable in the explicitly empty state.
func Null[T any]() Nullable[T] {
	return Nullable[T]{assigned: true, v: g.None[T]()}
}

// Value returns a Nullable holding v.
func Value[T any](v T) Nullable[T] {
	return Nullable[T]{assigned: true, v: g.Some(v)}
}

// IsUnset reports whether n was never assigned.
func (n Nullable[T]) IsUnset() bool { return !n.assigned }

// IsNull reports whether n was explicitly emptied.
func (n Nullable[T]) IsNull() bool { return n.assigned && !n.v.Ok }

// Get returns the held value and true, or the zero value and false for
// either absent state.
func (n Nullable[T]) Get() (T, bool) {
	return n.v.Value, n.v.Ok
}

// rank orders the three states: Unset < Null < value.
func (n Nullable[T]) rank() int {
	switch {
	case !n.assigned:
		return 0
	case !n.v.Ok:
		return 1
	default:
		return 2
	}
}

// MarshalJSON renders both absent states as null.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.v.Ok {
		return []byte("null"), nil
	}
	return json.Marshal(n.v.Value)
}

// NullsFirst lifts c to Nullable values. Unset sorts below Null, which sorts
// below every value; each absent state equals only itself, and c is only
// consulted when both sides hold a value.
func NullsFirst[T any](c Comparator[T]) Comparator[Nullable[T]] {
	return func(a, b Nullable[T]) int {
		ra, rb := a.rank(), b.rank()
		if ra != rb || ra < 2 {
			return sign(ra - rb)
		}
		return sign(c(a.v.Value, b.v.Value))
	}
}
