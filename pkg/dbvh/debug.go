package dbvh

import "github.com/flier/dbvh/internal/debug"

// assert panics with a formatted message if cond is false, but only in
// debug builds (internal/debug.Assert is a no-op otherwise). Precondition
// and invariant violations are programmer errors per spec §7: fatal,
// assertion-checked, never a recoverable error value.
func assert(cond bool, format string, args ...any) {
	debug.Assert(cond, format, args...)
}

// debugf traces a tree mutation. A no-op outside debug builds.
func (t *Tree) debugf(op, format string, args ...any) {
	debug.Log(nil, op, format, args...)
}
