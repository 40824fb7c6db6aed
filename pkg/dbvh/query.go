package dbvh

// Query visits every leaf whose AABB overlaps aabb, calling visit with its
// proxy id. Traversal stops early if visit returns false. This is the
// tree's only spatial query: a broad-phase overlap test, not a
// nearest-neighbour or ray-cast search (spec §4.E explicitly scopes those
// out).
func (t *Tree) Query(aabb AABB, visit func(proxyID int32) bool) {
	if t.root == NullIndex {
		return
	}

	var stack []int32
	stack = append(stack, t.root)

	for len(stack) > 0 {
		index := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[index]
		if !n.aabb.Overlaps(aabb) {
			continue
		}

		if n.isLeaf {
			if !visit(index) {
				return
			}
			continue
		}

		stack = append(stack, n.child1, n.child2)
	}
}
