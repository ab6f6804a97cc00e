package hull_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpart/hull"
)

// lineTable is a LineSet backed by two slices indexed by line id.
type lineTable struct {
	slope []int64
	icpt  []int64
}

var _ hull.LineSet = (*lineTable)(nil)

func (l *lineTable) Slope(id int) int64     { return l.slope[id] }
func (l *lineTable) Intercept(id int) int64 { return l.icpt[id] }

// add appends a line and returns its id.
func (l *lineTable) add(slope, icpt int64) int {
	l.slope = append(l.slope, slope)
	l.icpt = append(l.icpt, icpt)

	return len(l.slope) - 1
}

// value evaluates line id at x.
func (l *lineTable) value(id int, x int64) int64 {
	return l.slope[id]*x + l.icpt[id]
}

// bruteMax returns the best value over ids at x.
func (l *lineTable) bruteMax(ids []int, x int64) int64 {
	best := l.value(ids[0], x)
	for _, id := range ids[1:] {
		if v := l.value(id, x); v > best {
			best = v
		}
	}

	return best
}

// requireWellFormed asserts the structural invariants of an envelope.
func requireWellFormed(t *testing.T, env *hull.Envelope) {
	t.Helper()

	entries := env.Entries()
	require.NotEmpty(t, entries)
	require.True(t, entries[0].Boundary.IsNegInf(), "bottom boundary must be -inf")
	for p := 1; p < len(entries); p++ {
		require.True(t, entries[p-1].Boundary.Less(entries[p].Boundary),
			"boundaries must strictly increase: %v then %v", entries[p-1].Boundary, entries[p].Boundary)
	}

	st := env.Stats()
	require.Equal(t, env.Len(), st.Pushes+1-st.Pops, "every entry is the sentinel or a push not yet popped")
}

// queryModes lists both strategies for table-driven tests.
var queryModes = []hull.QueryMode{hull.BinarySearch, hull.MonotonePointer}
