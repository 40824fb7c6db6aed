package dbvh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/flier/dbvh/pkg/dbvh"
)

// Seed scenario 1: an empty tree.
func TestEmptyTree(t *testing.T) {
	tr := New()

	assert.EqualValues(t, 0, tr.Height())
	assert.EqualValues(t, 0, tr.ProxyCount())
	assert.Zero(t, tr.AreaRatio())
	assert.Equal(t, NullIndex, tr.Root())
}

// Seed scenario 2: a single box.
func TestSingleBox(t *testing.T) {
	tr := New()

	box := AABB{Lower: Vec3{X: -0.5, Y: -0.5, Z: -0.5}, Upper: Vec3{X: 0.5, Y: 0.5, Z: 0.5}}
	id := tr.CreateProxy(box, 42)

	assert.EqualValues(t, 0, tr.Height())
	assert.EqualValues(t, 1, tr.ProxyCount())
	assert.Equal(t, id, tr.Root())
	assert.Zero(t, tr.AreaRatio())
	assert.Equal(t, box, tr.GetAABB(id))
	assert.EqualValues(t, 42, tr.ObjectIndex(id))
}

// Seed scenario 3: an ordered row of 32 unit cubes under exact SAH.
func TestOrderedRow(t *testing.T) {
	tr := New()
	tr.SetHeuristic(SAH)

	for i := 0; i < 32; i++ {
		f := float64(i)
		tr.CreateProxy(AABB{
			Lower: Vec3{X: f, Y: 0, Z: 0},
			Upper: Vec3{X: f + 1, Y: 1, Z: 1},
		}, int32(i))
	}

	assert.EqualValues(t, 32, tr.ProxyCount())
	assert.LessOrEqual(t, tr.Height(), int32(10))
	assert.Less(t, tr.AreaRatio(), 6.0)
}

// Seed scenario 5: insert/destroy churn.
func TestInsertDestroyChurn(t *testing.T) {
	tr := New()

	const n = 1000
	ids := make([]int32, n)
	rng := newLCG(7)

	for i := 0; i < n; i++ {
		ids[i] = tr.CreateProxy(randomAABB(rng), int32(i))
	}
	assert.EqualValues(t, n, tr.ProxyCount())

	for i := n - 1; i >= 0; i-- {
		tr.DestroyProxy(ids[i])
	}

	assert.Equal(t, NullIndex, tr.Root())
	assert.EqualValues(t, 0, tr.ProxyCount())
	assert.Equal(t, tr.NodeCapacity(), tr.NodeCapacity()-tr.NodeCount())
	assert.EqualValues(t, 0, tr.NodeCount())
}

// Clear resets counts but keeps capacity (spec §4.B, P6).
func TestClearKeepsCapacity(t *testing.T) {
	tr := New()

	for i := 0; i < 100; i++ {
		tr.CreateProxy(AABB{Upper: Vec3{X: 1, Y: 1, Z: 1}}, int32(i))
	}

	capBefore := tr.NodeCapacity()
	tr.Clear()

	assert.Equal(t, NullIndex, tr.Root())
	assert.EqualValues(t, 0, tr.ProxyCount())
	assert.Equal(t, capBefore, tr.NodeCapacity())
}

// DestroyProxy on an out-of-range id or an already-destroyed id is a
// precondition violation (spec §7 kind 1): fatal.
func TestDestroyProxyPreconditions(t *testing.T) {
	tr := New()
	id := tr.CreateProxy(AABB{Upper: Vec3{X: 1, Y: 1, Z: 1}}, 0)

	assert.Panics(t, func() { tr.DestroyProxy(id + 1000) })
	assert.NotPanics(t, func() { tr.DestroyProxy(id) })
	assert.Panics(t, func() { tr.DestroyProxy(id) }, "double destroy must panic")
}
