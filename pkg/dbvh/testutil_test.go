package dbvh_test

import (
	. "github.com/flier/dbvh/pkg/dbvh"
)

// lcg is a tiny deterministic linear-congruential generator, used instead
// of math/rand so property tests are reproducible without seeding
// concerns across Go versions.
type lcg struct{ state uint64 }

func newLCG(seed uint64) *lcg { return &lcg{state: seed + 1} }

func (g *lcg) next() uint64 {
	g.state = g.state*6364136223846793005 + 1442695040888963407
	return g.state
}

// float01 returns a deterministic pseudo-random float in [0, 1).
func (g *lcg) float01() float64 {
	return float64(g.next()>>11) / (1 << 53)
}

func (g *lcg) floatRange(lo, hi float64) float64 {
	return lo + g.float01()*(hi-lo)
}

func randomAABB(g *lcg) AABB {
	center := Vec3{X: g.floatRange(-500, 500), Y: g.floatRange(-500, 500), Z: g.floatRange(-500, 500)}
	half := Vec3{X: g.floatRange(0.1, 5), Y: g.floatRange(0.1, 5), Z: g.floatRange(0.1, 5)}
	return AABB{Lower: center.Sub(half), Upper: center.Add(half)}
}
