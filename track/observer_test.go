package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures every event for inspection.
type recordingSink struct {
	events []Event
}

func (s *recordingSink) Emit(e Event) { s.events = append(s.events, e) }

func TestSinkReceivesEvents(t *testing.T) {
	sink := &recordingSink{}
	rt, err := New(20, sink)
	require.NoError(t, err)

	require.NoError(t, rt.Insert(1, 0, 5))
	require.ErrorIs(t, rt.Insert(1, 10, 5), ErrDuplicateID)
	require.ErrorIs(t, rt.Insert(2, 18, 5), ErrOutOfBounds)
	require.ErrorIs(t, rt.Insert(2, 3, 5), ErrOverlap)
	require.True(t, rt.Remove(1))
	require.False(t, rt.Remove(1))
	rt.Compact()

	require.Len(t, sink.events, 7)

	assert.Equal(t, Event{Op: OpInsert, ID: 1, Region: Region{0, 5}}, sink.events[0])
	assert.ErrorIs(t, sink.events[1].Err, ErrDuplicateID)
	assert.ErrorIs(t, sink.events[2].Err, ErrOutOfBounds)
	assert.ErrorIs(t, sink.events[3].Err, ErrOverlap)
	assert.Equal(t, Event{Op: OpRemove, ID: 1, Region: Region{0, 5}}, sink.events[4])
	assert.ErrorIs(t, sink.events[5].Err, ErrUnknownID)
	assert.Equal(t, OpCompact, sink.events[6].Op)
}

func TestLookupEmitsNothing(t *testing.T) {
	sink := &recordingSink{}
	rt, err := New(20, sink)
	require.NoError(t, err)

	rt.Lookup(1)
	rt.FindFree(5)
	rt.Usage()
	rt.Entries()
	rt.Gaps()

	assert.Empty(t, sink.events, "queries are silent")
}

func TestPanickingSinkDoesNotAbortOperations(t *testing.T) {
	rt, err := New(20, SinkFunc(func(Event) { panic("broken sink") }))
	require.NoError(t, err)

	require.NotPanics(t, func() {
		require.NoError(t, rt.Insert(1, 0, 5))
		require.True(t, rt.Remove(1))
		rt.Compact()
	})

	// The tracker state is unaffected by the sink blowing up.
	require.NoError(t, rt.Insert(2, 0, 20))
	assert.InEpsilon(t, 1.0, rt.Usage(), 1e-9)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "added entry ID=1 [0, 5)",
		Event{Op: OpInsert, ID: 1, Region: Region{0, 5}}.String())
	assert.Equal(t, "removed entry ID=2 [5, 8)",
		Event{Op: OpRemove, ID: 2, Region: Region{5, 3}}.String())
	assert.Equal(t, "compacted entries", Event{Op: OpCompact}.String())
	assert.Contains(t,
		Event{Op: OpInsert, ID: 3, Region: Region{0, 5}, Err: ErrOverlap}.String(),
		"rejected")
}
