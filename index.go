package skipnav

// index is the ordered structure behind Map and Set. Every level L is a
// doubly linked chain, started from head[L], of the nodes whose height
// exceeds L. It is not safe for concurrent use.
type index[K, V any] struct {
	cmp       Comparator[K]
	config    Config
	maxHeight int
	head      []handle
	arena     arena[K, V]
	count     int
	rng       *RNG
	metrics   metrics
}

func newIndex[K, V any](c Comparator[K], config Config) *index[K, V] {
	return &index[K, V]{
		cmp:       c,
		config:    config,
		maxHeight: config.maxHeight,
		head:      make([]handle, config.maxHeight),
		arena:     newArena[K, V](config.initialCapacity),
		rng:       newRNGWithSeed(config.seed),
	}
}

func (ix *index[K, V]) compare(a, b K) int {
	ix.metrics.incComparison()
	return sign(ix.cmp(a, b))
}

func (ix *index[K, V]) node(h handle) *node[K, V] {
	return ix.arena.get(h)
}

func (ix *index[K, V]) setHead(level int, h handle) {
	ix.head[level] = h
	ix.metrics.incHeadUpdate()
}

func (ix *index[K, V]) mutated(op string) {
	if invariantsEnabled {
		if err := ix.validate(); err != nil {
			panic(err)
		}
	}
	if afterMutationHook != nil {
		afterMutationHook(op)
	}
}

// newNodeHeight fills empty head slots first, lowest level first. Once every
// level has a head, heights are drawn uniformly from [1, maxHeight-1].
func (ix *index[K, V]) newNodeHeight() int {
	for level, h := range ix.head {
		if h == none {
			return level + 1
		}
	}
	return ix.rng.UniformLevel(ix.maxHeight)
}

// put inserts key or replaces its value. It returns the previous value and
// true if the key was already present.
func (ix *index[K, V]) put(key K, value V) (V, bool) {
	var zero V
	if ix.count < 1 {
		h := ix.arena.alloc(newNode(key, value, 1))
		ix.setHead(0, h)
		ix.count = 1
		ix.metrics.incInsert()
		ix.mutated("put")
		return zero, false
	}

	floor, exact := ix.descend(key, true)
	if exact {
		n := ix.node(floor)
		old := n.value
		n.value = value
		ix.metrics.incReplacement()
		ix.mutated("put")
		return old, true
	}

	n := newNode(key, value, ix.newNodeHeight())
	h := ix.arena.alloc(n)
	ix.link(h, n, floor)
	ix.count++
	ix.metrics.incInsert()
	ix.mutated("put")
	return zero, false
}

// link splices n in after pred at every level n occupies. pred is n's
// predecessor at level 0, or none when n becomes the smallest key. At higher
// levels the predecessor is found by walking backward from pred until a node
// tall enough for the level is reached.
func (ix *index[K, V]) link(h handle, n *node[K, V], pred handle) {
	for level := range n.next {
		for pred != none {
			p := ix.node(pred)
			if p.height() > level {
				break
			}
			pred = p.prev[p.height()-1]
		}

		if pred == none {
			old := ix.head[level]
			n.next[level] = old
			if o := ix.node(old); o != nil {
				o.prev[level] = h
			}
			ix.setHead(level, h)
			continue
		}

		p := ix.node(pred)
		succ := p.next[level]
		p.next[level] = h
		n.prev[level] = pred
		n.next[level] = succ
		if s := ix.node(succ); s != nil {
			s.prev[level] = h
		}
	}
}

// remove deletes key and returns its value.
func (ix *index[K, V]) remove(key K) (V, bool) {
	h, exact := ix.descend(key, true)
	if !exact {
		var zero V
		return zero, false
	}
	old := ix.node(h).value
	ix.removeNode(h)
	return old, true
}

// removeNode unlinks h from every level it occupies. The slots of the
// unlinked node are left as they were.
func (ix *index[K, V]) removeNode(h handle) {
	n := ix.node(h)
	if n == nil {
		return
	}
	for level := range n.next {
		prev, next := n.prev[level], n.next[level]
		if p := ix.node(prev); p != nil {
			p.next[level] = next
		}
		if s := ix.node(next); s != nil {
			s.prev[level] = prev
		}
		if ix.head[level] == h {
			ix.setHead(level, next)
		}
	}
	ix.count--
	ix.metrics.incRemoval()
	ix.mutated("remove")
}

func (ix *index[K, V]) clear() {
	ix.arena = newArena[K, V](ix.config.initialCapacity)
	ix.head = make([]handle, ix.maxHeight)
	ix.count = 0
	ix.mutated("clear")
}

// descend walks from the highest level down and returns the last node whose
// key is below key, or at most key when inclusive is set. exact reports an
// equal key, in which case the descent stops at that node.
func (ix *index[K, V]) descend(key K, inclusive bool) (h handle, exact bool) {
	if ix.count < 1 {
		return none, false
	}
	cur := none
	for level := ix.maxHeight - 1; level >= 0; level-- {
		next := ix.head[level]
		if cur != none {
			next = ix.node(cur).next[level]
		}
		for next != none {
			n := ix.node(next)
			c := ix.compare(n.key, key)
			if c == CmpGreater || (c == CmpEqual && !inclusive) {
				break
			}
			cur = next
			if c == CmpEqual {
				return cur, true
			}
			next = n.next[level]
		}
	}
	return cur, false
}

func (ix *index[K, V]) getEntry(key K) handle {
	h, exact := ix.descend(key, true)
	if !exact {
		return none
	}
	return h
}

// floorEntry returns the node with the greatest key <= key.
func (ix *index[K, V]) floorEntry(key K) handle {
	h, _ := ix.descend(key, true)
	return h
}

// lowerEntry returns the node with the greatest key < key.
func (ix *index[K, V]) lowerEntry(key K) handle {
	h, _ := ix.descend(key, false)
	return h
}

// ceilingEntry returns the node with the least key >= key.
func (ix *index[K, V]) ceilingEntry(key K) handle {
	h, exact := ix.descend(key, true)
	switch {
	case h == none:
		return ix.firstEntry()
	case exact:
		return h
	default:
		return ix.nextHigherNode(h)
	}
}

// higherEntry returns the node with the least key > key.
func (ix *index[K, V]) higherEntry(key K) handle {
	h, _ := ix.descend(key, true)
	if h == none {
		return ix.firstEntry()
	}
	return ix.nextHigherNode(h)
}

func (ix *index[K, V]) firstEntry() handle {
	if ix.count < 1 {
		return none
	}
	return ix.head[0]
}

// lastEntry starts at the highest occupied level and keeps jumping along the
// highest non-empty forward slot until no slot leads anywhere.
func (ix *index[K, V]) lastEntry() handle {
	if ix.count < 1 {
		return none
	}
	cur := none
	for level := ix.maxHeight - 1; level >= 0 && cur == none; level-- {
		cur = ix.head[level]
	}
	for {
		n := ix.node(cur)
		advanced := false
		for level := n.height() - 1; level >= 0; level-- {
			if next := n.next[level]; next != none {
				cur = next
				advanced = true
				break
			}
		}
		if !advanced {
			return cur
		}
	}
}

// nextHigherNode returns the in-order successor of h.
func (ix *index[K, V]) nextHigherNode(h handle) handle {
	if ix.count < 1 {
		return none
	}
	n := ix.node(h)
	if n == nil {
		return none
	}
	return n.next[0]
}

// levels lists the keys on each level, lowest level first.
func (ix *index[K, V]) levels() [][]K {
	out := make([][]K, ix.maxHeight)
	for level := range out {
		keys := []K{}
		for h := ix.head[level]; h != none; h = ix.node(h).next[level] {
			keys = append(keys, ix.node(h).key)
		}
		out[level] = keys
	}
	return out
}

func (ix *index[K, V]) stats() Stats {
	return ix.metrics.snapshot()
}
