package stopwatch_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flier/dbvh/internal/stopwatch"
)

func TestLapsAccumulate(t *testing.T) {
	sw := stopwatch.Start()
	time.Sleep(time.Millisecond)
	d1 := sw.Lap("build")
	time.Sleep(time.Millisecond)
	d2 := sw.Lap("optimize")

	laps := sw.Laps()
	assert.Len(t, laps, 2)
	assert.Equal(t, "build", laps[0].Name)
	assert.Equal(t, "optimize", laps[1].Name)
	assert.GreaterOrEqual(t, d1, time.Duration(0))
	assert.GreaterOrEqual(t, d2, time.Duration(0))
	assert.Equal(t, laps[0].Duration+laps[1].Duration, sw.Total())
}
