// Package stopwatch is the thin high-resolution timer spec §1 names as an
// external collaborator of the core: it never participates in pkg/dbvh's
// invariants, and exists purely so cmd/dbvh-bench can report how long a
// build or optimisation pass took.
package stopwatch

import "time"

// Stopwatch measures elapsed wall-clock time across one or more laps.
type Stopwatch struct {
	start time.Time
	laps  []Lap
}

// Lap is one named, timed interval.
type Lap struct {
	Name     string
	Duration time.Duration
}

// Start begins timing.
func Start() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

// Lap records the elapsed time since the previous lap (or since Start, for
// the first lap) under name, and resets the internal clock for the next
// lap.
func (s *Stopwatch) Lap(name string) time.Duration {
	now := time.Now()
	d := now.Sub(s.start)
	s.laps = append(s.laps, Lap{Name: name, Duration: d})
	s.start = now
	return d
}

// Laps returns every recorded lap, in order.
func (s *Stopwatch) Laps() []Lap {
	return append([]Lap(nil), s.laps...)
}

// Total sums every recorded lap's duration.
func (s *Stopwatch) Total() time.Duration {
	var total time.Duration
	for _, l := range s.laps {
		total += l.Duration
	}
	return total
}
