package dbvh

import "sort"

// binCount is the number of SAH buckets used by BuildTopDownSAH (spec §4.D
// "top-down binned-SAH, BIN_COUNT=64").
const binCount = 64

// RebuildBottomUp discards the current internal topology and rebuilds it
// with the bottom-up O(n^2) agglomerative algorithm: repeatedly merge the
// pair of roots whose combined AABB area is smallest, until one remains
// (spec §4.D). Leaves and their payloads are untouched.
func (t *Tree) RebuildBottomUp() {
	defer t.guard.enter("RebuildBottomUp")()
	t.rebuild(t.buildBottomUp)
}

// BuildTopDownSAH discards the current internal topology and rebuilds it
// top-down: at each level, the leaf set is partitioned along the axis of
// greatest centroid extent using a 64-bucket binned SAH sweep, and the
// two sides recurse independently (spec §4.D).
func (t *Tree) BuildTopDownSAH() {
	defer t.guard.enter("BuildTopDownSAH")()
	t.rebuild(func(leaves []int32) int32 { return t.buildTopDownSAH(leaves) })
}

// BuildTopDownMedian discards the current internal topology and rebuilds
// it top-down: at each level, leaves are split at the median centroid
// along the axis of greatest extent (spec §4.D).
func (t *Tree) BuildTopDownMedian() {
	defer t.guard.enter("BuildTopDownMedian")()
	t.rebuild(func(leaves []int32) int32 { return t.buildTopDownMedian(leaves) })
}

func (t *Tree) rebuild(build func(leaves []int32) int32) {
	defer t.syncMetrics()

	leaves := t.collectLeaves()
	t.freeInternalNodes()

	if len(leaves) == 0 {
		t.root = NullIndex
		return
	}

	t.root = build(leaves)
	t.nodes[t.root].setParent(NullIndex)
}

func (t *Tree) collectLeaves() []int32 {
	leaves := make([]int32, 0, t.proxyCount)
	for i := int32(0); i < t.nodeCapacity; i++ {
		n := &t.nodes[i]
		if !n.free() && n.isLeaf {
			leaves = append(leaves, i)
		}
	}
	return leaves
}

func (t *Tree) freeInternalNodes() {
	for i := int32(0); i < t.nodeCapacity; i++ {
		n := &t.nodes[i]
		if !n.free() && !n.isLeaf {
			t.freeNode(i)
		}
	}
}

// buildBottomUp is the O(n^2) agglomerative builder: at every step it
// scans all current pairwise combinations, merges the cheapest, and
// replaces both with the new parent until a single root remains.
func (t *Tree) buildBottomUp(leaves []int32) int32 {
	items := append([]int32(nil), leaves...)

	for len(items) > 1 {
		bestI, bestJ := 0, 1
		bestArea := inf

		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				a := t.nodes[items[i]].aabb.Union(t.nodes[items[j]].aabb).Area()
				if a < bestArea {
					bestArea, bestI, bestJ = a, i, j
				}
			}
		}

		i1, i2 := items[bestI], items[bestJ]

		p := t.allocateNode()
		pn := &t.nodes[p]
		pn.aabb = t.nodes[i1].aabb.Union(t.nodes[i2].aabb)
		pn.child1, pn.child2 = i1, i2
		pn.height = 1 + maxInt32(t.nodes[i1].height, t.nodes[i2].height)
		t.nodes[i1].setParent(p)
		t.nodes[i2].setParent(p)

		items[bestJ] = items[len(items)-1]
		items = items[:len(items)-1]
		items[bestI] = p
	}

	return items[0]
}

func (t *Tree) makeParent(items []int32) int32 {
	switch len(items) {
	case 1:
		return items[0]
	case 2:
		p := t.allocateNode()
		pn := &t.nodes[p]
		pn.aabb = t.nodes[items[0]].aabb.Union(t.nodes[items[1]].aabb)
		pn.child1, pn.child2 = items[0], items[1]
		pn.height = 1 + maxInt32(t.nodes[items[0]].height, t.nodes[items[1]].height)
		t.nodes[items[0]].setParent(p)
		t.nodes[items[1]].setParent(p)
		return p
	default:
		panic("dbvh: makeParent called with invalid item count")
	}
}

func (t *Tree) link(c1, c2 int32) int32 {
	p := t.allocateNode()
	pn := &t.nodes[p]
	pn.aabb = t.nodes[c1].aabb.Union(t.nodes[c2].aabb)
	pn.child1, pn.child2 = c1, c2
	pn.height = 1 + maxInt32(t.nodes[c1].height, t.nodes[c2].height)
	t.nodes[c1].setParent(p)
	t.nodes[c2].setParent(p)
	return p
}

// centroidBounds returns the union of every leaf's AABB centre, used to
// pick the split axis of greatest extent.
func (t *Tree) centroidBounds(leaves []int32) AABB {
	c0 := t.nodes[leaves[0]].aabb.Center()
	bounds := AABB{Lower: c0, Upper: c0}
	for _, l := range leaves[1:] {
		c := t.nodes[l].aabb.Center()
		bounds.Lower = bounds.Lower.Min(c)
		bounds.Upper = bounds.Upper.Max(c)
	}
	return bounds
}

func widestAxis(b AABB) int {
	w := b.Widths()
	axis := 0
	best := w.X
	if w.Y > best {
		axis, best = 1, w.Y
	}
	if w.Z > best {
		axis = 2
	}
	return axis
}

func centroidComponent(c Vec3, axis int) float64 {
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// buildTopDownSAH recursively partitions leaves by a binned SAH sweep
// along the widest centroid axis, falling back to splitting the leaf list
// in half, in its current order, when the bucket sweep cannot separate the
// set (e.g. all centroids coincide).
func (t *Tree) buildTopDownSAH(leaves []int32) int32 {
	if len(leaves) <= 2 {
		return t.makeParent(leaves)
	}

	bounds := t.centroidBounds(leaves)
	axis := widestAxis(bounds)
	lo := centroidComponent(bounds.Lower, axis)
	hi := centroidComponent(bounds.Upper, axis)

	if hi-lo < 1e-12 {
		mid := len(leaves) / 2
		return t.link(t.buildTopDownSAH(leaves[:mid]), t.buildTopDownSAH(leaves[mid:]))
	}

	type bucket struct {
		count int
		aabb  AABB
		has   bool
	}
	var buckets [binCount]bucket

	binOf := func(l int32) int {
		c := centroidComponent(t.nodes[l].aabb.Center(), axis)
		b := int(float64(binCount) * (c - lo) / (hi - lo))
		if b < 0 {
			b = 0
		}
		if b >= binCount {
			b = binCount - 1
		}
		return b
	}

	for _, l := range leaves {
		b := &buckets[binOf(l)]
		if !b.has {
			b.aabb = t.nodes[l].aabb
			b.has = true
		} else {
			b.aabb = b.aabb.Union(t.nodes[l].aabb)
		}
		b.count++
	}

	// Sweep BIN_COUNT-1 candidate splits, accumulating left-to-right and
	// right-to-left prefix aabbs/counts to evaluate SAH cost in O(BIN_COUNT).
	var leftAABB [binCount]AABB
	var leftCount [binCount]int
	running := AABB{}
	runningHas := false
	runningCount := 0
	for i := 0; i < binCount; i++ {
		if buckets[i].has {
			if !runningHas {
				running = buckets[i].aabb
				runningHas = true
			} else {
				running = running.Union(buckets[i].aabb)
			}
			runningCount += buckets[i].count
		}
		leftAABB[i] = running
		leftCount[i] = runningCount
	}

	bestSplit := -1
	bestCost := inf
	running = AABB{}
	runningHas = false
	runningCount = 0
	for i := binCount - 1; i >= 1; i-- {
		if buckets[i].has {
			if !runningHas {
				running = buckets[i].aabb
				runningHas = true
			} else {
				running = running.Union(buckets[i].aabb)
			}
			runningCount += buckets[i].count
		}

		lc, rc := leftCount[i-1], runningCount
		if lc == 0 || rc == 0 {
			continue
		}

		cost := float64(lc)*leftAABB[i-1].Area() + float64(rc)*running.Area()
		if cost < bestCost {
			bestCost, bestSplit = cost, i
		}
	}

	if bestSplit < 0 {
		mid := len(leaves) / 2
		return t.link(t.buildTopDownSAH(leaves[:mid]), t.buildTopDownSAH(leaves[mid:]))
	}

	left := make([]int32, 0, len(leaves))
	right := make([]int32, 0, len(leaves))
	for _, l := range leaves {
		if binOf(l) < bestSplit {
			left = append(left, l)
		} else {
			right = append(right, l)
		}
	}

	if len(left) == 0 || len(right) == 0 {
		mid := len(leaves) / 2
		left, right = leaves[:mid], leaves[mid:]
	}

	return t.link(t.buildTopDownSAH(left), t.buildTopDownSAH(right))
}

// buildTopDownMedian recursively partitions leaves at the median centroid
// along the widest centroid axis (spec §4.D "top-down median split").
func (t *Tree) buildTopDownMedian(leaves []int32) int32 {
	if len(leaves) <= 2 {
		return t.makeParent(leaves)
	}

	bounds := t.centroidBounds(leaves)
	axis := widestAxis(bounds)

	items := append([]int32(nil), leaves...)
	sort.Slice(items, func(i, j int) bool {
		return centroidComponent(t.nodes[items[i]].aabb.Center(), axis) <
			centroidComponent(t.nodes[items[j]].aabb.Center(), axis)
	})

	mid := len(items) / 2
	return t.link(t.buildTopDownMedian(items[:mid]), t.buildTopDownMedian(items[mid:]))
}
