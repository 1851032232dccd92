package skipnav

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// EOI is end of iteration
//
//lint:ignore ST1012 this is a sentinel error, not a typical error
var EOI = errors.New("EOI")

// walker projects nodes of an index onto T. Walkers hold no state of their
// own; cursors keep the current handle.
type walker[T any] interface {
	first() handle
	next(h handle) handle
	at(h handle) (T, bool)
	size() int
}

type keyWalker[K, V any] struct{ ix *index[K, V] }

func (w keyWalker[K, V]) first() handle        { return w.ix.firstEntry() }
func (w keyWalker[K, V]) next(h handle) handle { return w.ix.nextHigherNode(h) }
func (w keyWalker[K, V]) size() int            { return w.ix.count }
func (w keyWalker[K, V]) at(h handle) (K, bool) {
	n := w.ix.node(h)
	if n == nil {
		var zero K
		return zero, false
	}
	return n.key, true
}

type entryWalker[K, V any] struct{ ix *index[K, V] }

func (w entryWalker[K, V]) first() handle        { return w.ix.firstEntry() }
func (w entryWalker[K, V]) next(h handle) handle { return w.ix.nextHigherNode(h) }
func (w entryWalker[K, V]) size() int            { return w.ix.count }
func (w entryWalker[K, V]) at(h handle) (Entry[K, V], bool) {
	n := w.ix.node(h)
	if n == nil {
		return Entry[K, V]{}, false
	}
	return Entry[K, V]{Key: n.key, Value: n.value}, true
}

// Cursor is a forward, single-pass iterator. It remembers only the last node
// it returned and asks the structure for that node's successor on every
// step, so mutating the structure while a Cursor is in use gives undefined
// results.
type Cursor[T any] struct {
	w       walker[T]
	current handle
	started bool
}

func newCursor[T any](w walker[T]) *Cursor[T] {
	return &Cursor[T]{w: w}
}

func (c *Cursor[T]) peek() handle {
	if !c.started {
		return c.w.first()
	}
	return c.w.next(c.current)
}

// HasNext reports whether calling Next will succeed.
func (c *Cursor[T]) HasNext() bool {
	if c == nil || c.w == nil {
		return false
	}
	return c.peek() != none
}

// Next advances to the next element and returns it. It returns EOI when the
// iteration is exhausted.
func (c *Cursor[T]) Next() (T, error) {
	var zero T
	if c == nil || c.w == nil {
		return zero, EOI
	}
	h := c.peek()
	v, ok := c.w.at(h)
	if !ok {
		return zero, EOI
	}
	c.current = h
	c.started = true
	return v, nil
}

// Step is one record of a Steps traversal. Value is the zero value once Done
// is set.
type Step[T any] struct {
	Done  bool
	Value T
}

// Steps yields a Step per element. It is positioned on the first element at
// construction and, like Cursor, keeps only the current node.
type Steps[T any] struct {
	w        walker[T]
	location handle
}

func newSteps[T any](w walker[T]) *Steps[T] {
	return &Steps[T]{w: w, location: w.first()}
}

// Next returns the current element and moves to its successor. Once the
// traversal is over every call returns a Step with Done set.
func (s *Steps[T]) Next() Step[T] {
	if s == nil || s.w == nil {
		return Step[T]{Done: true}
	}
	v, ok := s.w.at(s.location)
	if !ok {
		s.location = none
		return Step[T]{Done: true}
	}
	s.location = s.w.next(s.location)
	return Step[T]{Value: v}
}

func seq[T any](w walker[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := w.first(); h != none; h = w.next(h) {
			v, ok := w.at(h)
			if !ok || !yield(v) {
				return
			}
		}
	}
}
