package dbvh

// insertLeaf inserts the already-allocated leaf id into the tree under the
// active heuristic, then splices and refits ancestors (spec §4.C).
func (t *Tree) insertLeaf(leaf int32) {
	if t.root == NullIndex {
		t.root = leaf
		t.nodes[leaf].setParent(NullIndex)
		return
	}

	q := t.nodes[leaf].aabb

	var sibling int32
	switch t.heuristic {
	case SAH, SAHRotate:
		sibling = t.chooseSiblingExactSAH(q, false)
	case Bittner:
		sibling = t.chooseSiblingExactSAH(q, true)
	case ApproxSAH, ApproxSAHRotate:
		sibling = t.chooseSiblingApproxSAH(q)
	case Manhattan:
		sibling = t.chooseSiblingManhattan(q)
	default:
		sibling = t.chooseSiblingExactSAH(q, false)
	}

	t.splice(sibling, leaf)
	t.refit(t.nodes[leaf].parent())
}

// splice allocates a new internal parent P over sibling S and the new leaf
// L, and wires it into the tree in S's old place (spec §4.C "Splicing").
func (t *Tree) splice(sibling, leaf int32) {
	oldParent := t.nodes[sibling].parent()

	p := t.allocateNode()
	pn := &t.nodes[p]
	pn.aabb = t.nodes[leaf].aabb.Union(t.nodes[sibling].aabb)
	pn.height = t.nodes[sibling].height + 1
	pn.setParent(oldParent)

	if oldParent != NullIndex {
		op := &t.nodes[oldParent]
		if op.child1 == sibling {
			op.child1 = p
		} else {
			op.child2 = p
		}
	} else {
		t.root = p
	}

	pn.child1 = sibling
	pn.child2 = leaf
	t.nodes[sibling].setParent(p)
	t.nodes[leaf].setParent(p)
}

// refit walks from index to the root, recomputing aabb/height, optionally
// applying rotation at each visited ancestor (spec §4.C "Ancestor refit").
func (t *Tree) refit(index int32) {
	rotate := t.heuristic.rotates()

	for index != NullIndex {
		index = t.balanceOne(index, rotate)

		n := &t.nodes[index]
		c1, c2 := &t.nodes[n.child1], &t.nodes[n.child2]
		n.aabb = c1.aabb.Union(c2.aabb)
		n.height = 1 + maxInt32(c1.height, c2.height)

		index = n.parent()
	}
}

// balanceOne applies rotation at index when enabled, returning the index
// to continue the refit walk from (rotation never changes which node is
// "at" this position in the ancestor chain, only its children).
func (t *Tree) balanceOne(index int32, rotate bool) int32 {
	if rotate {
		t.rotate(index)
	}
	return index
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// chooseSiblingExactSAH implements spec §4.C's exact branch-and-bound SAH:
// a min-heap of lower bounds, popped smallest first, terminating once the
// popped bound exceeds the best full cost found so far. When
// unconditionalPush is true this is the Bittner variant (children pushed
// without pre-filtering, matching the spec's "considered push" vs
// "unconditional push" distinction).
func (t *Tree) chooseSiblingExactSAH(q AABB, unconditionalPush bool) int32 {
	t.heap.reset()
	t.heap.pushBound(t.root, q.Area())

	bestCost := inf
	bestSibling := t.root

	qArea := q.Area()

	for len(t.heap) > 0 {
		if len(t.heap) > t.maxHeapCount {
			t.maxHeapCount = len(t.heap)
		}

		item := t.heap.popMin()
		if item.bound > bestCost {
			break
		}

		n := &t.nodes[item.index]
		directCost := q.Union(n.aabb).Area()
		inheritedCost := item.bound - qArea
		totalCost := directCost + inheritedCost

		if totalCost < bestCost {
			bestCost = totalCost
			bestSibling = item.index
		}

		if !n.isLeaf {
			inherited := totalCost - n.aabb.Area()

			for _, c := range [2]int32{n.child1, n.child2} {
				bound := inherited + qArea

				if unconditionalPush || bound <= bestCost {
					t.heap.pushBound(c, bound)
				}
			}
		}
	}

	return bestSibling
}

const inf = 1.0e300 * 1.0e300 // +Inf without importing math here

// chooseSiblingApproxSAH implements spec §4.C's single-descent approximate
// SAH: at each internal node, compare making it the sibling against
// descending into either child, breaking ties on centre distance
// (Omohundro-style rule, per spec §9's Open Question resolution).
func (t *Tree) chooseSiblingApproxSAH(q AABB) int32 {
	index := t.root

	for {
		n := &t.nodes[index]
		if n.isLeaf {
			return index
		}

		c1, c2 := &t.nodes[n.child1], &t.nodes[n.child2]

		costHere := q.Union(n.aabb).Area()
		cost1 := q.Union(c1.aabb).Area() - c1.aabb.Area()
		cost2 := q.Union(c2.aabb).Area() - c2.aabb.Area()

		if costHere <= cost1 && costHere <= cost2 {
			return index
		}

		if cost1 == cost2 {
			d1 := c1.aabb.Center().DistSquared(q.Center())
			d2 := c2.aabb.Center().DistSquared(q.Center())
			if d1 <= d2 {
				index = n.child1
			} else {
				index = n.child2
			}
			continue
		}

		if cost1 < cost2 {
			index = n.child1
		} else {
			index = n.child2
		}
	}
}

// chooseSiblingManhattan implements spec §4.C's Manhattan descent: no cost
// evaluation, just recurse into the L1-centroid-closer child.
func (t *Tree) chooseSiblingManhattan(q AABB) int32 {
	index := t.root
	qc := q.Center()

	for {
		n := &t.nodes[index]
		if n.isLeaf {
			return index
		}

		c1, c2 := &t.nodes[n.child1], &t.nodes[n.child2]
		if c1.aabb.Center().L1Dist(qc) <= c2.aabb.Center().L1Dist(qc) {
			index = n.child1
		} else {
			index = n.child2
		}
	}
}
