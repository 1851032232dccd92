package skipnav

import (
	"encoding/json"
	"iter"
)

// present is the value stored for every element of a Set.
type present = struct{}

// Set is an ordered set backed by the same skip list as Map. It is not safe
// for concurrent use.
type Set[K any] struct {
	ix *index[K, present]
}

// NewSet returns an empty Set ordered by c.
func NewSet[K any](c Comparator[K], opts ...Option) *Set[K] {
	return &Set[K]{ix: newIndex[K, present](c, NewConfig(opts...))}
}

// NewSetFromKeys returns a Set holding keys.
func NewSetFromKeys[K any](c Comparator[K], keys []K, opts ...Option) *Set[K] {
	s := NewSet(c, opts...)
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

func (s *Set[K]) Comparator() Comparator[K] { return s.ix.cmp }
func (s *Set[K]) Len() int                  { return s.ix.count }
func (s *Set[K]) IsEmpty() bool             { return s.ix.count == 0 }

// Add inserts key. It returns true if key was not already present.
func (s *Set[K]) Add(key K) bool {
	_, existed := s.ix.put(key, present{})
	return !existed
}

// Remove deletes key and reports whether it was present.
func (s *Set[K]) Remove(key K) bool {
	_, ok := s.ix.remove(key)
	return ok
}

// Contains reports whether key is present, using the set's comparator.
func (s *Set[K]) Contains(key K) bool {
	return s.ix.getEntry(key) != none
}

func (s *Set[K]) Clear() { s.ix.clear() }

func (s *Set[K]) keyAt(h handle) (K, bool) {
	n := s.ix.node(h)
	if n == nil {
		var zero K
		return zero, false
	}
	return n.key, true
}

// First returns the smallest element.
func (s *Set[K]) First() (K, bool) { return s.keyAt(s.ix.firstEntry()) }

// Last returns the greatest element.
func (s *Set[K]) Last() (K, bool) { return s.keyAt(s.ix.lastEntry()) }

// Floor returns the greatest element less than or equal to key.
func (s *Set[K]) Floor(key K) (K, bool) { return s.keyAt(s.ix.floorEntry(key)) }

// Ceiling returns the least element greater than or equal to key.
func (s *Set[K]) Ceiling(key K) (K, bool) { return s.keyAt(s.ix.ceilingEntry(key)) }

// Higher returns the least element strictly greater than key.
func (s *Set[K]) Higher(key K) (K, bool) { return s.keyAt(s.ix.higherEntry(key)) }

// Lower returns the greatest element strictly less than key.
func (s *Set[K]) Lower(key K) (K, bool) { return s.keyAt(s.ix.lowerEntry(key)) }

// NextHigher is Higher under the name iteration code uses.
func (s *Set[K]) NextHigher(key K) (K, bool) { return s.Higher(key) }

// PollFirst removes and returns the smallest element.
func (s *Set[K]) PollFirst() (K, bool) {
	return s.poll(s.ix.firstEntry())
}

// PollLast removes and returns the greatest element.
func (s *Set[K]) PollLast() (K, bool) {
	return s.poll(s.ix.lastEntry())
}

// poll unlinks the node it was given without searching for its key again.
func (s *Set[K]) poll(h handle) (K, bool) {
	key, ok := s.keyAt(h)
	if ok {
		s.ix.removeNode(h)
	}
	return key, ok
}

func (s *Set[K]) walker() walker[K] { return keyWalker[K, present]{ix: s.ix} }

// Cursor returns a pull-style cursor over the elements in ascending order.
func (s *Set[K]) Cursor() *Cursor[K] { return newCursor(s.walker()) }

// Steps returns a step-record cursor over the elements in ascending order.
func (s *Set[K]) Steps() *Steps[K] { return newSteps(s.walker()) }

// All returns an iterator over the elements in ascending order.
func (s *Set[K]) All() iter.Seq[K] { return seq(s.walker()) }

// View returns a live, read-only view of the set.
func (s *Set[K]) View() KeyView[K] {
	return KeyView[K]{w: s.walker(), contains: s.Contains}
}

func (s *Set[K]) ForEach(fn func(K)) {
	for k := range s.All() {
		fn(k)
	}
}

// Keys copies the elements out in ascending order.
func (s *Set[K]) Keys() []K {
	out := make([]K, 0, s.ix.count)
	for k := range s.All() {
		out = append(out, k)
	}
	return out
}

// MarshalJSON renders the set as a plain array in ascending order.
func (s *Set[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Keys())
}

func (s *Set[K]) Validate() error { return s.ix.validate() }
func (s *Set[K]) Levels() [][]K   { return s.ix.levels() }
func (s *Set[K]) Stats() Stats    { return s.ix.stats() }
