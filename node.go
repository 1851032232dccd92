package skipnav

// handle addresses a node in the arena. Handles are 1-based so that the zero
// value of a slot means "no node".
type handle int32

const none handle = 0

// node holds key/value and per-level forward and backward slots. Both slot
// slices have the node's height and are never resized.
type node[K, V any] struct {
	key   K
	value V
	next  []handle
	prev  []handle
}

func newNode[K, V any](key K, value V, height int) *node[K, V] {
	return &node[K, V]{
		key:   key,
		value: value,
		next:  make([]handle, height),
		prev:  make([]handle, height),
	}
}

func (n *node[K, V]) height() int { return len(n.next) }

// arena owns every node ever inserted since the last clear. Unlinked nodes
// stay in place with stale slots.
type arena[K, V any] struct {
	nodes []*node[K, V]
}

func newArena[K, V any](capacity int) arena[K, V] {
	return arena[K, V]{nodes: make([]*node[K, V], 0, capacity)}
}

func (a *arena[K, V]) alloc(n *node[K, V]) handle {
	a.nodes = append(a.nodes, n)
	return handle(len(a.nodes))
}

// get returns the node for h, or nil for none and for handles that do not
// belong to the current arena.
func (a *arena[K, V]) get(h handle) *node[K, V] {
	if h <= none || int(h) > len(a.nodes) {
		return nil
	}
	return a.nodes[h-1]
}
