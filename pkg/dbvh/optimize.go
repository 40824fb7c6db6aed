package dbvh

// Optimize improves tree quality incrementally: each iteration advances a
// rolling cursor (path) to the next in-use, height>=2 node A, then shuffles
// A's grandchildren (spec §4.G "incremental subtree shuffle along a rolling
// cursor"). A's own children B and C stay in place; only which grandchild
// belongs to which is ever changed.
func (t *Tree) Optimize(iterations int) {
	defer t.guard.enter("Optimize")()
	defer t.syncMetrics()

	for i := 0; i < iterations; i++ {
		a := t.nextShuffleCandidate()
		if a == NullIndex {
			return
		}

		t.shuffle(a)
	}
}

// nextShuffleCandidate advances t.path past free nodes and nodes with
// height < 2 (which, having no grandchildren, have nothing to shuffle),
// wrapping past nodeCapacity. Returns NullIndex if no candidate exists
// anywhere in the pool.
func (t *Tree) nextShuffleCandidate() int32 {
	capacity := t.nodeCapacity
	if capacity == 0 {
		return NullIndex
	}

	for tries := int32(0); tries < capacity; tries++ {
		idx := t.path % capacity
		t.path++

		n := &t.nodes[idx]
		if !n.free() && n.height >= 2 {
			return idx
		}
	}

	return NullIndex
}

// shuffle considers regrouping A's two internal children B={D,E} and
// C={F,G} as {D,F}+{E,G} or {D,G}+{E,F}, applying whichever strictly
// improves on the current summed parent-level area a(B)+a(C) (spec §4.G).
// A's own aabb never changes (the same four grandchildren are covered
// either way); only B, C, and A's cached height may need a refit.
func (t *Tree) shuffle(a int32) {
	an := &t.nodes[a]
	bIdx, cIdx := an.child1, an.child2
	b, c := &t.nodes[bIdx], &t.nodes[cIdx]

	if b.isLeaf || c.isLeaf {
		return
	}

	dIdx, eIdx := b.child1, b.child2
	fIdx, gIdx := c.child1, c.child2
	d, e := &t.nodes[dIdx], &t.nodes[eIdx]
	f, g := &t.nodes[fIdx], &t.nodes[gIdx]

	current := d.aabb.Union(e.aabb).Area() + f.aabb.Union(g.aabb).Area()
	dfEg := d.aabb.Union(f.aabb).Area() + e.aabb.Union(g.aabb).Area()
	dgEf := d.aabb.Union(g.aabb).Area() + e.aabb.Union(f.aabb).Area()

	switch {
	case dfEg < current && dfEg <= dgEf:
		t.regroup(bIdx, cIdx, dIdx, fIdx, eIdx, gIdx)
	case dgEf < current:
		t.regroup(bIdx, cIdx, dIdx, gIdx, eIdx, fIdx)
	default:
		return
	}

	t.refitAabbHeight(a)
}

// regroup reassigns B's children to {b1, b2} and C's children to {c1, c2},
// reparenting all four grandchildren, then refits B and C in place.
func (t *Tree) regroup(bIdx, cIdx, b1, b2, c1, c2 int32) {
	b, c := &t.nodes[bIdx], &t.nodes[cIdx]

	b.child1, b.child2 = b1, b2
	c.child1, c.child2 = c1, c2

	t.nodes[b1].setParent(bIdx)
	t.nodes[b2].setParent(bIdx)
	t.nodes[c1].setParent(cIdx)
	t.nodes[c2].setParent(cIdx)

	t.refitAabbHeight(bIdx)
	t.refitAabbHeight(cIdx)
}

// refitAabbHeight recomputes index's own aabb/height from its current
// children and propagates upward while a parent's height actually
// changes. Unlike refit (insert.go), it never rotates: shuffle and
// rotation are distinct local-improvement operations (spec §4.E vs §4.G).
func (t *Tree) refitAabbHeight(index int32) {
	for index != NullIndex {
		n := &t.nodes[index]
		c1, c2 := &t.nodes[n.child1], &t.nodes[n.child2]

		n.aabb = c1.aabb.Union(c2.aabb)

		newHeight := 1 + maxInt32(c1.height, c2.height)
		if newHeight == n.height {
			return
		}
		n.height = newHeight

		index = n.parent()
	}
}
