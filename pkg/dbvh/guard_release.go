//go:build !debug

package dbvh

// reentrancyGuard compiles away entirely outside debug builds; the check
// it performs is pure instrumentation, never required for correctness of a
// correctly-calling program (spec §5/§7).
type reentrancyGuard struct{}

func (g *reentrancyGuard) enter(op string) func() { return func() {} }
