//go:build debug

package dbvh

import (
	"sync/atomic"

	"github.com/flier/dbvh/internal/debug"
)

// reentrancyGuard enforces SPEC_FULL.md §5: the tree is single-threaded and
// non-reentrant. In debug builds, entering a mutating method while another
// is in flight on a different goroutine panics instead of corrupting the
// pool silently.
type reentrancyGuard struct {
	owner atomic.Int64 // goroutine id currently inside a mutating call, or 0
}

func (g *reentrancyGuard) enter(op string) func() {
	id := debug.Goid()

	if prev := g.owner.Swap(id); prev != 0 && prev != id {
		panic("dbvh: concurrent mutation detected: " + op +
			" called from a second goroutine while another mutating call is in flight")
	}

	return func() { g.owner.Store(0) }
}
