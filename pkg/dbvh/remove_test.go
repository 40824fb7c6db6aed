package dbvh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/flier/dbvh/pkg/dbvh"
)

func box(x float64) AABB {
	return AABB{Lower: Vec3{X: x, Y: 0, Z: 0}, Upper: Vec3{X: x + 1, Y: 1, Z: 1}}
}

// Removing the sole leaf clears the root (spec §4.D).
func TestRemoveOnlyLeaf(t *testing.T) {
	tr := New()
	id := tr.CreateProxy(box(0), 0)

	tr.DestroyProxy(id)

	assert.Equal(t, NullIndex, tr.Root())
	assert.EqualValues(t, 0, tr.ProxyCount())
}

// Removing a leaf whose parent is the root promotes the sibling to root
// (spec §4.D "If G does not exist ... promote S to root").
func TestRemovePromotesSiblingToRoot(t *testing.T) {
	tr := New()
	a := tr.CreateProxy(box(0), 0)
	b := tr.CreateProxy(box(1), 1)

	tr.DestroyProxy(a)

	assert.Equal(t, b, tr.Root())
	assert.EqualValues(t, 1, tr.ProxyCount())
}

// Removing a deeper leaf collapses its parent into the grandparent and
// refits ancestors (spec §4.D).
func TestRemoveCollapsesParentIntoGrandparent(t *testing.T) {
	tr := New()
	ids := make([]int32, 4)
	for i := range ids {
		ids[i] = tr.CreateProxy(box(float64(i)*3), int32(i))
	}

	tr.DestroyProxy(ids[2])

	assert.EqualValues(t, 3, tr.ProxyCount())
	for i, id := range ids {
		if i == 2 {
			continue
		}
		assert.Equal(t, box(float64(i)*3), tr.GetAABB(id))
	}
}
