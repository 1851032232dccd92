package skipnav

import "iter"

// Entry is a key/value pair copied out of a Map.
type Entry[K, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// KeyView is a live, read-only projection of the keys of a Map. It borrows
// the map's structure and holds no storage of its own.
type KeyView[K any] struct {
	w        walker[K]
	contains func(K) bool
}

// Len returns the number of keys currently in the map.
func (v KeyView[K]) Len() int { return v.w.size() }

// IsEmpty reports whether the map has no keys.
func (v KeyView[K]) IsEmpty() bool { return v.w.size() == 0 }

// Contains reports whether key is present, using the map's comparator.
func (v KeyView[K]) Contains(key K) bool { return v.contains(key) }

// Cursor returns a pull-style cursor over the keys in ascending order.
func (v KeyView[K]) Cursor() *Cursor[K] { return newCursor(v.w) }

// Steps returns a step-record cursor over the keys in ascending order.
func (v KeyView[K]) Steps() *Steps[K] { return newSteps(v.w) }

// All returns an iterator over the keys in ascending order.
func (v KeyView[K]) All() iter.Seq[K] { return seq(v.w) }

// ForEach calls fn for every key in ascending order.
func (v KeyView[K]) ForEach(fn func(K)) {
	for k := range seq(v.w) {
		fn(k)
	}
}

// EntryView is a live, read-only projection of the entries of a Map.
type EntryView[K, V any] struct {
	w      walker[Entry[K, V]]
	lookup func(K) (V, bool)
}

func (v EntryView[K, V]) Len() int      { return v.w.size() }
func (v EntryView[K, V]) IsEmpty() bool { return v.w.size() == 0 }

// Contains reports whether key is present and match accepts its value.
func (v EntryView[K, V]) Contains(key K, match func(V) bool) bool {
	val, ok := v.lookup(key)
	return ok && match(val)
}

func (v EntryView[K, V]) Cursor() *Cursor[Entry[K, V]] { return newCursor(v.w) }
func (v EntryView[K, V]) Steps() *Steps[Entry[K, V]]   { return newSteps(v.w) }
func (v EntryView[K, V]) All() iter.Seq[Entry[K, V]]   { return seq(v.w) }

func (v EntryView[K, V]) ForEach(fn func(Entry[K, V])) {
	for e := range seq(v.w) {
		fn(e)
	}
}
