//go:build debug

package dbvh_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "github.com/flier/dbvh/pkg/dbvh"
)

// Validate() (spec §4.H) walks the whole tree re-checking invariants 2, 3,
// 4, and 6 — the structural properties (P2, P3) that cannot be probed from
// outside the package, since internal-node indices are never exposed
// (spec §3 "Ownership"). Only compiled under the debug build tag, the
// same tag that turns Validate's assertions from no-ops into panics.
func TestValidateAfterMutation(t *testing.T) {
	heuristics := []InsertionHeuristic{SAH, SAHRotate, Bittner, ApproxSAH, ApproxSAHRotate, Manhattan}

	for _, h := range heuristics {
		h := h
		Convey("Given a tree driven by "+h.String(), t, func() {
			tr := New()
			tr.SetHeuristic(h)
			rng := newLCG(uint64(h) + 31)

			ids := make([]int32, 0, 300)
			for i := 0; i < 300; i++ {
				ids = append(ids, tr.CreateProxy(randomAABB(rng), int32(i)))

				Convey("Validate never panics after an insert", func() {
					So(func() { tr.Validate() }, ShouldNotPanic)
				})
			}

			tr.Optimize(100)
			Convey("Validate never panics after optimisation", func() {
				So(func() { tr.Validate() }, ShouldNotPanic)
			})

			for i := 0; i < len(ids); i += 2 {
				tr.DestroyProxy(ids[i])
			}
			Convey("Validate never panics after partial destruction", func() {
				So(func() { tr.Validate() }, ShouldNotPanic)
			})
		})
	}
}

func TestValidateAfterBulkBuilds(t *testing.T) {
	Convey("Given a populated tree", t, func() {
		tr := New()
		rng := newLCG(5)
		for i := 0; i < 150; i++ {
			tr.CreateProxy(randomAABB(rng), int32(i))
		}

		Convey("RebuildBottomUp preserves all invariants", func() {
			tr.RebuildBottomUp()
			So(func() { tr.Validate() }, ShouldNotPanic)
		})

		Convey("BuildTopDownSAH preserves all invariants", func() {
			tr.BuildTopDownSAH()
			So(func() { tr.Validate() }, ShouldNotPanic)
		})

		Convey("BuildTopDownMedian preserves all invariants", func() {
			tr.BuildTopDownMedian()
			So(func() { tr.Validate() }, ShouldNotPanic)
		})
	})
}
