package dbvh

import (
	"fmt"

	"github.com/flier/dbvh/pkg/opt"
)

// Tree is a dynamic bounding volume hierarchy over client AABBs (spec §3).
// The zero value is not ready to use; construct with New.
type Tree struct {
	nodes         []node
	root          int32
	nodeCount     int32
	nodeCapacity  int32
	freeListHead  int32
	proxyCount    int32
	insertionCount int64

	heuristic InsertionHeuristic

	// path is the optimiser's rolling cursor (spec §4.G).
	path int32

	// heap is the reusable priority-queue scratch buffer shared by the
	// exact-SAH and Bittner heuristics (spec §3/§5, §4.C). maxHeapCount is
	// its high-water mark.
	heap         pqueue
	maxHeapCount int

	// Rotation diagnostics (spec §3).
	countBF, countBG, countCD, countCE int64

	guard reentrancyGuard

	metrics MetricsSink
}

// New returns an empty Tree using the exact-SAH heuristic without rotation
// (spec §6 "Default heuristic: exact SAH without rotation unless
// overridden.").
func New() *Tree {
	t := &Tree{root: NullIndex, heuristic: SAH}
	t.resetPool()
	return t
}

// SetHeuristic changes the insertion heuristic used by future calls to
// CreateProxy. It does not retroactively change the shape of the existing
// tree.
func (t *Tree) SetHeuristic(h InsertionHeuristic) { t.heuristic = h }

// Heuristic returns the active insertion heuristic.
func (t *Tree) Heuristic() InsertionHeuristic { return t.heuristic }

// ProxyCount returns the number of leaves currently in the tree.
func (t *Tree) ProxyCount() int32 { return t.proxyCount }

// NodeCount returns the number of in-use nodes (leaves + internals).
func (t *Tree) NodeCount() int32 { return t.nodeCount }

// NodeCapacity returns the pool's current capacity.
func (t *Tree) NodeCapacity() int32 { return t.nodeCapacity }

// Root returns the index of the root node, or NullIndex if the tree is
// empty (invariant 1).
func (t *Tree) Root() int32 { return t.root }

// CreateProxy allocates a new leaf for aabb with the given client
// objectIndex, inserts it into the tree under the active heuristic, and
// returns its proxy id (spec §4.B). The id is a node pool index and stays
// valid until DestroyProxy.
func (t *Tree) CreateProxy(aabb AABB, objectIndex int32) int32 {
	defer t.guard.enter("CreateProxy")()

	id := t.allocateNode()
	n := &t.nodes[id]
	n.aabb = aabb
	n.isLeaf = true
	n.height = 0
	n.objectIndex = objectIndex

	t.insertLeaf(id)
	t.proxyCount++
	t.insertionCount++

	t.syncMetrics()

	return id
}

// DestroyProxy removes a leaf from the tree and frees its node. Precondition:
// id names a live leaf (spec §4.B); an out-of-range, freed, or internal id
// panics in every build.
func (t *Tree) DestroyProxy(id int32) {
	defer t.guard.enter("DestroyProxy")()

	if id < 0 || id >= t.nodeCapacity || t.nodes[id].free() || !t.nodes[id].isLeaf {
		panic(fmt.Sprintf("dbvh: DestroyProxy: %d is not a live proxy id", id))
	}

	t.removeLeaf(id)
	t.freeNode(id)
	t.proxyCount--

	t.syncMetrics()
}

// GetAABB returns the stored AABB for a proxy (leaf) or internal node id.
func (t *Tree) GetAABB(id int32) AABB {
	assert(id >= 0 && id < t.nodeCapacity && !t.nodes[id].free(),
		"dbvh: GetAABB: invalid node id %d", id)

	return t.nodes[id].aabb
}

// CheckedGetAABB is GetAABB without the panic: an out-of-range or
// already-freed id reports opt.None instead of failing an assertion,
// for callers (e.g. CLI lookups) driven by untrusted external ids.
func (t *Tree) CheckedGetAABB(id int32) opt.Option[AABB] {
	if id < 0 || id >= t.nodeCapacity || t.nodes[id].free() {
		return opt.None[AABB]()
	}

	return opt.Some(t.nodes[id].aabb)
}

// ObjectIndex returns the client-supplied payload for a leaf.
func (t *Tree) ObjectIndex(id int32) int32 {
	assert(id >= 0 && id < t.nodeCapacity && t.nodes[id].isLeaf,
		"dbvh: ObjectIndex: node %d is not a leaf", id)

	return t.nodes[id].objectIndex
}

// IsLeaf reports whether id names a leaf node.
func (t *Tree) IsLeaf(id int32) bool {
	return id >= 0 && id < t.nodeCapacity && t.nodes[id].isLeaf
}

// Clear logically empties the tree, resetting counts and rebuilding the
// free list over all slots, but keeps the pool's capacity (spec §4.B).
func (t *Tree) Clear() {
	defer t.guard.enter("Clear")()

	t.resetPool()
	t.path = 0
	t.countBF, t.countBG, t.countCD, t.countCE = 0, 0, 0, 0
	t.syncMetrics()
}
