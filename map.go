package skipnav

import (
	"encoding/json"
	"iter"
)

// Map is an ordered map backed by a skip list with a fixed number of
// levels. Keys are ordered by the Comparator given at construction; lookups
// and navigation run in expected O(log n) time. A Map is not safe for
// concurrent use.
type Map[K, V any] struct {
	ix *index[K, V]
}

// New returns an empty Map ordered by c.
func New[K, V any](c Comparator[K], opts ...Option) *Map[K, V] {
	return &Map[K, V]{ix: newIndex[K, V](c, NewConfig(opts...))}
}

// NewFromEntries returns a Map loaded with entries in order. A later entry
// overwrites an earlier one with an equal key.
func NewFromEntries[K, V any](c Comparator[K], entries []Entry[K, V], opts ...Option) *Map[K, V] {
	m := New[K, V](c, opts...)
	for _, e := range entries {
		m.Put(e.Key, e.Value)
	}
	return m
}

// Comparator returns the comparator that orders the keys.
func (m *Map[K, V]) Comparator() Comparator[K] { return m.ix.cmp }

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.ix.count }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.ix.count == 0 }

// Get returns the value for a key.
// The boolean is true if the key exists, false otherwise.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.valueAt(m.ix.getEntry(key))
}

// ContainsKey returns true if the key exists in the map.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.ix.getEntry(key) != none
}

// ContainsValueFunc reports whether any value satisfies match. It scans the
// whole map.
func (m *Map[K, V]) ContainsValueFunc(match func(V) bool) bool {
	for h := m.ix.firstEntry(); h != none; h = m.ix.nextHigherNode(h) {
		if match(m.ix.node(h).value) {
			return true
		}
	}
	return false
}

// Put inserts or updates the value for the given key.
// It returns the previous value and a flag indicating whether an existing entry was replaced.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	return m.ix.put(key, value)
}

// Remove deletes key and returns the value it held.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	return m.ix.remove(key)
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() { m.ix.clear() }

func (m *Map[K, V]) keyAt(h handle) (K, bool) {
	n := m.ix.node(h)
	if n == nil {
		var zero K
		return zero, false
	}
	return n.key, true
}

func (m *Map[K, V]) valueAt(h handle) (V, bool) {
	n := m.ix.node(h)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

func (m *Map[K, V]) entryAt(h handle) (Entry[K, V], bool) {
	n := m.ix.node(h)
	if n == nil {
		return Entry[K, V]{}, false
	}
	return Entry[K, V]{Key: n.key, Value: n.value}, true
}

// FirstKey returns the smallest key.
func (m *Map[K, V]) FirstKey() (K, bool) { return m.keyAt(m.ix.firstEntry()) }

// FirstEntry returns the entry with the smallest key.
func (m *Map[K, V]) FirstEntry() (Entry[K, V], bool) { return m.entryAt(m.ix.firstEntry()) }

// LastKey returns the greatest key.
func (m *Map[K, V]) LastKey() (K, bool) { return m.keyAt(m.ix.lastEntry()) }

// LastEntry returns the entry with the greatest key.
func (m *Map[K, V]) LastEntry() (Entry[K, V], bool) { return m.entryAt(m.ix.lastEntry()) }

// FloorKey returns the greatest key less than or equal to key.
func (m *Map[K, V]) FloorKey(key K) (K, bool) { return m.keyAt(m.ix.floorEntry(key)) }

// FloorEntry returns the entry with the greatest key less than or equal to key.
func (m *Map[K, V]) FloorEntry(key K) (Entry[K, V], bool) {
	return m.entryAt(m.ix.floorEntry(key))
}

// CeilingKey returns the least key greater than or equal to key.
func (m *Map[K, V]) CeilingKey(key K) (K, bool) { return m.keyAt(m.ix.ceilingEntry(key)) }

// CeilingEntry returns the entry with the least key greater than or equal to key.
func (m *Map[K, V]) CeilingEntry(key K) (Entry[K, V], bool) {
	return m.entryAt(m.ix.ceilingEntry(key))
}

// HigherKey returns the least key strictly greater than key.
func (m *Map[K, V]) HigherKey(key K) (K, bool) { return m.keyAt(m.ix.higherEntry(key)) }

// HigherEntry returns the entry with the least key strictly greater than key.
func (m *Map[K, V]) HigherEntry(key K) (Entry[K, V], bool) {
	return m.entryAt(m.ix.higherEntry(key))
}

// LowerKey returns the greatest key strictly less than key.
func (m *Map[K, V]) LowerKey(key K) (K, bool) { return m.keyAt(m.ix.lowerEntry(key)) }

// LowerEntry returns the entry with the greatest key strictly less than key.
func (m *Map[K, V]) LowerEntry(key K) (Entry[K, V], bool) {
	return m.entryAt(m.ix.lowerEntry(key))
}

// NextHigherKey returns the key that follows key, which must be present.
// It reports false when key is absent or is the last key.
func (m *Map[K, V]) NextHigherKey(key K) (K, bool) {
	h := m.ix.getEntry(key)
	if h == none {
		var zero K
		return zero, false
	}
	return m.keyAt(m.ix.nextHigherNode(h))
}

// KeySet returns a live view of the keys.
func (m *Map[K, V]) KeySet() KeyView[K] {
	return KeyView[K]{w: keyWalker[K, V]{ix: m.ix}, contains: m.ContainsKey}
}

// EntrySet returns a live view of the entries.
func (m *Map[K, V]) EntrySet() EntryView[K, V] {
	return EntryView[K, V]{w: entryWalker[K, V]{ix: m.ix}, lookup: m.Get}
}

// Keys returns an iterator over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return seq[K](keyWalker[K, V]{ix: m.ix})
}

// All returns an iterator over the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for h := m.ix.firstEntry(); h != none; h = m.ix.nextHigherNode(h) {
			n := m.ix.node(h)
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Entries copies the entries out in ascending key order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, m.ix.count)
	for e := range seq[Entry[K, V]](entryWalker[K, V]{ix: m.ix}) {
		out = append(out, e)
	}
	return out
}

// MarshalJSON renders the map as an array of {"key", "value"} objects in
// ascending key order.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Entries())
}

// Validate checks the structural invariants of the map and returns an
// assertion error describing the first violation.
func (m *Map[K, V]) Validate() error { return m.ix.validate() }

// Levels lists the keys linked on each level, lowest level first.
func (m *Map[K, V]) Levels() [][]K { return m.ix.levels() }

// Stats returns the operation counters.
func (m *Map[K, V]) Stats() Stats { return m.ix.stats() }
