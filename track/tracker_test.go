package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTracker(t *testing.T, capacity uint64) *Tracker {
	t.Helper()
	rt, err := New(capacity, nil)
	require.NoError(t, err)
	return rt
}

func TestNewRejectsZeroCapacity(t *testing.T) {
	_, err := New(0, nil)
	require.ErrorIs(t, err, ErrZeroCapacity)
}

func TestInsertAndLookup(t *testing.T) {
	rt := newTracker(t, 100)

	require.NoError(t, rt.Insert(7, 10, 20))

	r, ok := rt.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, Region{Start: 10, Length: 20}, r)

	_, ok = rt.Lookup(8)
	assert.False(t, ok)
	assert.Equal(t, 1, rt.Len())
}

func TestInsertDuplicateID(t *testing.T) {
	rt := newTracker(t, 100)

	require.NoError(t, rt.Insert(1, 0, 10))
	err := rt.Insert(1, 50, 10)
	require.ErrorIs(t, err, ErrDuplicateID)

	// No mutation on failure: the original region survives.
	r, ok := rt.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, Region{Start: 0, Length: 10}, r)
	assert.Equal(t, 1, rt.Len())
}

func TestInsertOutOfBounds(t *testing.T) {
	rt := newTracker(t, 100)

	require.ErrorIs(t, rt.Insert(1, 95, 10), ErrOutOfBounds)
	require.ErrorIs(t, rt.Insert(2, 101, 0), ErrOutOfBounds)

	// start+length at exactly capacity is in bounds.
	require.NoError(t, rt.Insert(3, 90, 10))

	// Huge values must not wrap around the bounds check.
	require.ErrorIs(t, rt.Insert(4, ^uint64(0), 2), ErrOutOfBounds)
	assert.Equal(t, 1, rt.Len())
}

func TestInsertOverlap(t *testing.T) {
	rt := newTracker(t, 100)
	require.NoError(t, rt.Insert(1, 20, 10))

	cases := []struct {
		name          string
		start, length uint64
	}{
		{"exact", 20, 10},
		{"straddles left edge", 15, 10},
		{"straddles right edge", 25, 10},
		{"contained", 22, 5},
		{"containing", 10, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, rt.Insert(2, tc.start, tc.length), ErrOverlap)
		})
	}

	// Adjacent regions touch but do not overlap.
	require.NoError(t, rt.Insert(3, 10, 10))
	require.NoError(t, rt.Insert(4, 30, 10))
}

func TestInsertZeroLength(t *testing.T) {
	rt := newTracker(t, 100)
	require.NoError(t, rt.Insert(1, 20, 10))

	// A zero-width region is fine in free space, at a region boundary, and
	// even at the very end of the address space.
	require.NoError(t, rt.Insert(2, 50, 0))
	require.NoError(t, rt.Insert(3, 20, 0))
	require.NoError(t, rt.Insert(4, 100, 0))

	// Strictly inside an occupied region it still counts as a collision.
	require.ErrorIs(t, rt.Insert(5, 25, 0), ErrOverlap)

	r, ok := rt.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, uint64(0), r.Length)

	// The collision test is symmetric: a region that would swallow the
	// zero-width occupant at 50 is rejected too, while one that only
	// touches it is fine.
	require.ErrorIs(t, rt.Insert(6, 45, 10), ErrOverlap)
	require.NoError(t, rt.Insert(7, 50, 10))
	assert.InEpsilon(t, 0.20, rt.Usage(), 1e-9)
}

func TestRemove(t *testing.T) {
	rt := newTracker(t, 100)
	require.NoError(t, rt.Insert(1, 0, 10))

	assert.True(t, rt.Remove(1))
	assert.False(t, rt.Remove(1), "second remove finds nothing")
	assert.False(t, rt.Remove(99), "unknown id is not an error")
	assert.Equal(t, 0, rt.Len())

	// The slot is reusable immediately.
	require.NoError(t, rt.Insert(2, 0, 10))
}

func TestRemoveRoundTrip(t *testing.T) {
	rt := newTracker(t, 100)
	require.NoError(t, rt.Insert(1, 0, 10))
	require.NoError(t, rt.Insert(2, 40, 10))

	before := rt.Entries()
	beforeGaps := rt.Gaps()

	require.NoError(t, rt.Insert(3, 15, 20))
	require.True(t, rt.Remove(3))

	assert.Equal(t, before, rt.Entries())
	assert.Equal(t, beforeGaps, rt.Gaps())
}

func TestFindFree(t *testing.T) {
	rt := newTracker(t, 100)

	// Empty tracker: everything is free, lowest offset wins.
	start, ok := rt.FindFree(100)
	require.True(t, ok)
	assert.Equal(t, uint64(0), start)

	require.NoError(t, rt.Insert(1, 10, 10))
	require.NoError(t, rt.Insert(2, 40, 10))

	// First-fit: the gap [0,10) is taken before the larger gap [20,40).
	start, ok = rt.FindFree(10)
	require.True(t, ok)
	assert.Equal(t, uint64(0), start)

	// Too big for the head gap, fits between the regions.
	start, ok = rt.FindFree(15)
	require.True(t, ok)
	assert.Equal(t, uint64(20), start)

	// Only the tail gap [50,100) is large enough.
	start, ok = rt.FindFree(30)
	require.True(t, ok)
	assert.Equal(t, uint64(50), start)

	_, ok = rt.FindFree(51)
	assert.False(t, ok)
}

func TestFindFreeThenInsertSucceeds(t *testing.T) {
	rt := newTracker(t, 64)
	require.NoError(t, rt.Insert(1, 0, 8))
	require.NoError(t, rt.Insert(2, 16, 8))
	require.NoError(t, rt.Insert(3, 40, 8))

	for _, length := range []uint64{1, 5, 8, 16} {
		start, ok := rt.FindFree(length)
		require.True(t, ok, "length %d", length)

		id := ID(100 + length)
		require.NoError(t, rt.Insert(id, start, length), "length %d at %d", length, start)
		require.True(t, rt.Remove(id))
	}
}

func TestUsage(t *testing.T) {
	rt := newTracker(t, 20)
	assert.Equal(t, 0.0, rt.Usage())

	require.NoError(t, rt.Insert(1, 0, 5))
	require.NoError(t, rt.Insert(2, 10, 5))
	assert.InEpsilon(t, 0.5, rt.Usage(), 1e-9)

	rt.Compact()
	assert.InEpsilon(t, 0.5, rt.Usage(), 1e-9, "compaction preserves total occupancy")
}

func TestCompact(t *testing.T) {
	rt := newTracker(t, 100)
	require.NoError(t, rt.Insert(3, 50, 10))
	require.NoError(t, rt.Insert(1, 0, 5))
	require.NoError(t, rt.Insert(2, 20, 15))

	rt.Compact()

	// Slide down in pre-compaction start order: 1, 2, 3.
	want := map[ID]Region{
		1: {Start: 0, Length: 5},
		2: {Start: 5, Length: 15},
		3: {Start: 20, Length: 10},
	}
	assert.Equal(t, want, rt.Entries())

	// One tail gap remains.
	assert.Equal(t, []Region{{Start: 30, Length: 70}}, rt.Gaps())
}

func TestCompactEmpty(t *testing.T) {
	rt := newTracker(t, 10)
	rt.Compact()
	assert.Empty(t, rt.Entries())
	assert.Equal(t, []Region{{Start: 0, Length: 10}}, rt.Gaps())
}

func TestGaps(t *testing.T) {
	rt := newTracker(t, 50)
	require.NoError(t, rt.Insert(1, 10, 10))
	require.NoError(t, rt.Insert(2, 20, 10)) // adjacent: no gap between 1 and 2
	require.NoError(t, rt.Insert(3, 40, 10)) // flush against the end: no tail gap

	assert.Equal(t, []Region{
		{Start: 0, Length: 10},
		{Start: 30, Length: 10},
	}, rt.Gaps())
}

func TestEntriesReturnsCopy(t *testing.T) {
	rt := newTracker(t, 100)
	require.NoError(t, rt.Insert(1, 0, 10))

	m := rt.Entries()
	m[1] = Region{Start: 90, Length: 10}
	m[2] = Region{Start: 50, Length: 10}

	r, ok := rt.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, Region{Start: 0, Length: 10}, r)
	assert.Equal(t, 1, rt.Len())
}

// TestExampleScenario walks the worked end-to-end sequence: fill, search,
// remove, compact, measure.
func TestExampleScenario(t *testing.T) {
	rt := newTracker(t, 20)

	require.NoError(t, rt.Insert(1, 0, 5))
	require.NoError(t, rt.Insert(2, 5, 3))

	start, ok := rt.FindFree(10)
	require.True(t, ok)
	assert.Equal(t, uint64(8), start)
	require.NoError(t, rt.Insert(3, 8, 10))

	// Only the tail [18,20) is free now.
	start, ok = rt.FindFree(1)
	require.True(t, ok)
	assert.Equal(t, uint64(18), start)
	_, ok = rt.FindFree(3)
	assert.False(t, ok)

	require.True(t, rt.Remove(2))

	// The hole left by 2 is the lowest fit again.
	start, ok = rt.FindFree(3)
	require.True(t, ok)
	assert.Equal(t, uint64(5), start)

	rt.Compact()
	assert.Equal(t, map[ID]Region{
		1: {Start: 0, Length: 5},
		3: {Start: 5, Length: 10},
	}, rt.Entries())
	assert.InEpsilon(t, 0.75, rt.Usage(), 1e-9)
}
