package skipnav

import "github.com/cockroachdb/errors"

// validate walks every level and checks the structural invariants: ascending
// keys, backward slots mirroring forward slots, each level holding exactly
// the nodes taller than it, and the level 0 chain matching the tracked
// count. It uses the raw comparator so that stats are not disturbed.
func (ix *index[K, V]) validate() error {
	if len(ix.head) != ix.maxHeight {
		return errors.AssertionFailedf("head array has %d slots, want %d", len(ix.head), ix.maxHeight)
	}

	live := make(map[handle]struct{}, ix.count)
	taller := make([]int, ix.maxHeight)
	for level := 0; level < ix.maxHeight; level++ {
		var (
			prev  = none
			steps = 0
		)
		for h := ix.head[level]; h != none; h = ix.node(h).next[level] {
			n := ix.node(h)
			if n == nil {
				return errors.AssertionFailedf("level %d: dangling handle %d", level, h)
			}
			steps++
			if steps > len(ix.arena.nodes) {
				return errors.AssertionFailedf("level %d: cycle detected", level)
			}
			if n.height() > ix.maxHeight {
				return errors.AssertionFailedf("level %d: node height %d exceeds %d", level, n.height(), ix.maxHeight)
			}
			if n.height() <= level {
				return errors.AssertionFailedf("level %d: node of height %d is linked", level, n.height())
			}
			if n.prev[level] != prev {
				return errors.AssertionFailedf("level %d: backward slot of %d is %d, want %d", level, h, n.prev[level], prev)
			}
			if prev != none && ix.cmp(ix.node(prev).key, n.key) >= 0 {
				return errors.AssertionFailedf("level %d: keys out of order at %d", level, h)
			}
			if level == 0 {
				live[h] = struct{}{}
				for l := 1; l < n.height(); l++ {
					taller[l]++
				}
			} else if _, ok := live[h]; !ok {
				return errors.AssertionFailedf("level %d: node %d is missing from level 0", level, h)
			}
			prev = h
		}
		if level == 0 {
			if steps != ix.count {
				return errors.AssertionFailedf("reachable count %d does not match tracked count %d", steps, ix.count)
			}
			continue
		}
		if steps != taller[level] {
			return errors.AssertionFailedf("level %d links %d nodes, %d are tall enough", level, steps, taller[level])
		}
	}
	return nil
}
