package dbvh

// rotate applies the cheapest of the four grandchild/uncle swaps at index,
// if any of them shrinks the combined area of index's two children (spec
// §3 "local rotations (grandchild<->uncle swap) for cost-reducing ...
// topology improvement"). It never changes which node sits at index; it
// only rearranges index's descendants. The caller recomputes index's own
// aabb/height immediately afterwards.
//
// Node index has children B and C. If C is internal with children F, G,
// swapping B with F (case BF) or B with G (case BG) can shrink C's area.
// Symmetrically, if B is internal with children D, E, swapping C with D
// (case CD) or C with E (case CE) can shrink B's area. The four counters
// track how often each case wins, for diagnosing which rotation shapes a
// given workload favours.
func (t *Tree) rotate(index int32) {
	n := &t.nodes[index]
	if n.isLeaf {
		return
	}

	bIdx, cIdx := n.child1, n.child2
	b, c := &t.nodes[bIdx], &t.nodes[cIdx]

	current := b.aabb.Area() + c.aabb.Area()

	const (
		none = iota
		caseBF
		caseBG
		caseCD
		caseCE
	)

	best := none
	bestArea := current

	if !c.isLeaf {
		fIdx, gIdx := c.child1, c.child2
		f, g := &t.nodes[fIdx], &t.nodes[gIdx]

		if a := f.aabb.Area() + b.aabb.Union(g.aabb).Area(); a < bestArea {
			bestArea, best = a, caseBF
		}
		if a := g.aabb.Area() + b.aabb.Union(f.aabb).Area(); a < bestArea {
			bestArea, best = a, caseBG
		}
	}

	if !b.isLeaf {
		dIdx, eIdx := b.child1, b.child2
		d, e := &t.nodes[dIdx], &t.nodes[eIdx]

		if a := d.aabb.Area() + c.aabb.Union(e.aabb).Area(); a < bestArea {
			bestArea, best = a, caseCD
		}
		if a := e.aabb.Area() + c.aabb.Union(d.aabb).Area(); a < bestArea {
			bestArea, best = a, caseCE
		}
	}

	switch best {
	case caseBF:
		t.swapGrandchild(index, bIdx, cIdx, c.child1)
		t.countBF++
	case caseBG:
		t.swapGrandchild(index, bIdx, cIdx, c.child2)
		t.countBG++
	case caseCD:
		t.swapGrandchild(index, cIdx, bIdx, b.child1)
		t.countCD++
	case caseCE:
		t.swapGrandchild(index, cIdx, bIdx, b.child2)
		t.countCE++
	}
}

// swapGrandchild exchanges uncle (a child of index) with grandchild (a
// child of sibling, the other child of index), reparenting both and
// refitting sibling's aabb/height in place.
func (t *Tree) swapGrandchild(index, uncle, sibling, grandchild int32) {
	s := &t.nodes[sibling]
	n := &t.nodes[index]

	if s.child1 == grandchild {
		s.child1 = uncle
	} else {
		s.child2 = uncle
	}

	if n.child1 == uncle {
		n.child1 = grandchild
	} else {
		n.child2 = grandchild
	}

	t.nodes[uncle].setParent(sibling)
	t.nodes[grandchild].setParent(index)

	c1, c2 := &t.nodes[s.child1], &t.nodes[s.child2]
	s.aabb = c1.aabb.Union(c2.aabb)
	s.height = 1 + maxInt32(c1.height, c2.height)
}
