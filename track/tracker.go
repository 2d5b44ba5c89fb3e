package track

import (
	"cmp"
	"maps"
	"slices"
	"sort"
)

// Tracker records which sub-ranges of a fixed-capacity linear address space
// are occupied and by which identifier. It is pure bookkeeping: it never
// touches the storage the slots describe, only the accounting of who holds
// what range.
//
// Two structures are kept in lockstep: the id→region table, and a slice of
// occupied regions sorted by start offset. The slice is a secondary index for
// gap search; every mutation updates both within the same call, so the pair is
// never observably inconsistent.
type Tracker struct {
	capacity uint64
	entries  map[ID]Region

	// occupied mirrors entries, sorted by Start. INV: no two elements
	// overlap, every element ends at or before capacity.
	occupied []Region

	sink Sink
}

// New creates a tracker over [0, capacity). A zero capacity is rejected with
// ErrZeroCapacity so that Usage never divides by zero later.
//
// sink receives an event after every mutating operation; nil means discard.
func New(capacity uint64, sink Sink) (*Tracker, error) {
	if capacity == 0 {
		return nil, ErrZeroCapacity
	}
	if sink == nil {
		sink = NopSink{}
	}
	return &Tracker{
		capacity: capacity,
		entries:  make(map[ID]Region),
		sink:     sink,
	}, nil
}

// Capacity returns the fixed size of the tracked address space.
func (t *Tracker) Capacity() uint64 { return t.capacity }

// Len returns the number of live entries.
func (t *Tracker) Len() int { return len(t.entries) }

// FindFree returns the lowest start offset at which a run of length free
// slots fits, first-fit: the scan walks occupied regions in ascending start
// order and takes the first gap that is large enough, including the tail gap
// after the last region. It reports false when no such run exists.
//
// This is a pure query and reserves nothing. A caller pairing FindFree with
// Insert across goroutines must hold its own lock across both calls; the
// tracker does no internal locking.
func (t *Tracker) FindFree(length uint64) (uint64, bool) {
	var lastEnd uint64
	for _, r := range t.occupied {
		if r.Start-lastEnd >= length {
			return lastEnd, true
		}
		lastEnd = r.End()
	}
	if t.capacity-lastEnd >= length {
		return lastEnd, true
	}
	return 0, false
}

// Insert records that id occupies [start, start+length). It fails with
// ErrDuplicateID if the id is already live, ErrOutOfBounds if the region
// extends past the capacity, and ErrOverlap if it intersects any occupied
// region. Failure leaves the tracker untouched.
//
// A zero length is accepted and produces a zero-width region. It occupies no
// slots and collides only when placed strictly inside an occupied region; it
// survives compaction at whatever offset the repacking assigns.
func (t *Tracker) Insert(id ID, start, length uint64) error {
	r := Region{Start: start, Length: length}

	if _, ok := t.entries[id]; ok {
		return t.reject(id, r, ErrDuplicateID)
	}
	if start > t.capacity || length > t.capacity-start {
		return t.reject(id, r, ErrOutOfBounds)
	}
	// Linear collision scan. Fine at this scale; callers tracking very large
	// occupied sets want an interval tree instead.
	for _, o := range t.occupied {
		if r.Overlaps(o) {
			return t.reject(id, r, ErrOverlap)
		}
	}

	t.entries[id] = r
	t.occupied = slices.Insert(t.occupied, t.insertPos(r), r)

	t.emit(Event{Op: OpInsert, ID: id, Region: r})
	return nil
}

// Remove deletes the entry for id and its occupied region. It returns false,
// mutating nothing, when the id has no live entry; an unknown id is an
// expected case, not an error.
func (t *Tracker) Remove(id ID) bool {
	r, ok := t.entries[id]
	if !ok {
		t.emit(Event{Op: OpRemove, ID: id, Err: ErrUnknownID})
		return false
	}

	delete(t.entries, id)
	// Zero-width regions can share a start offset, so scan forward from the
	// insertion point for the exact region.
	for i := t.searchStart(r.Start); i < len(t.occupied); i++ {
		if t.occupied[i] == r {
			t.occupied = slices.Delete(t.occupied, i, i+1)
			break
		}
	}

	t.emit(Event{Op: OpRemove, ID: id, Region: r})
	return true
}

// Lookup returns the region currently held by id.
func (t *Tracker) Lookup(id ID) (Region, bool) {
	r, ok := t.entries[id]
	return r, ok
}

// Usage returns the occupied fraction of the address space, in [0, 1].
// An empty tracker reports 0.
func (t *Tracker) Usage() float64 {
	var used uint64
	for _, r := range t.entries {
		used += r.Length
	}
	return float64(used) / float64(t.capacity)
}

// Compact slides every region down to eliminate gaps: entries are repacked
// contiguously from offset 0 in ascending order of their pre-compaction
// start, preserving each entry's length and the relative order of entries.
// The result is deterministic; it never depends on map iteration order.
// Regions sharing a start offset (only possible when zero-width) are ordered
// by id.
func (t *Tracker) Compact() {
	ids := make([]ID, 0, len(t.entries))
	for id := range t.entries {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b ID) int {
		if c := cmp.Compare(t.entries[a].Start, t.entries[b].Start); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	t.occupied = t.occupied[:0]
	var offset uint64
	for _, id := range ids {
		r := Region{Start: offset, Length: t.entries[id].Length}
		t.entries[id] = r
		t.occupied = append(t.occupied, r)
		offset += r.Length
	}

	t.emit(Event{Op: OpCompact})
}

// Entries returns a copy of the full id→region table. This is the read
// accessor for renderers and other collaborators; the tracker itself never
// consults it.
func (t *Tracker) Entries() map[ID]Region {
	return maps.Clone(t.entries)
}

// Gaps returns the free runs of the address space in ascending order,
// including the tail run after the last occupied region. Zero-width gaps
// between adjacent regions are skipped.
func (t *Tracker) Gaps() []Region {
	var gaps []Region
	var lastEnd uint64
	for _, r := range t.occupied {
		if r.Start > lastEnd {
			gaps = append(gaps, Region{Start: lastEnd, Length: r.Start - lastEnd})
		}
		if r.End() > lastEnd {
			lastEnd = r.End()
		}
	}
	if lastEnd < t.capacity {
		gaps = append(gaps, Region{Start: lastEnd, Length: t.capacity - lastEnd})
	}
	return gaps
}

// searchStart returns the index of the first occupied region whose start is
// >= start.
func (t *Tracker) searchStart(start uint64) int {
	return sort.Search(len(t.occupied), func(i int) bool {
		return t.occupied[i].Start >= start
	})
}

// insertPos returns the insertion index that keeps occupied ordered by
// (Start, Length). Ties on Start only happen with zero-width regions; placing
// the shorter region first keeps the first-fit walk's running end monotone.
func (t *Tracker) insertPos(r Region) int {
	return sort.Search(len(t.occupied), func(i int) bool {
		o := t.occupied[i]
		if o.Start != r.Start {
			return o.Start > r.Start
		}
		return o.Length >= r.Length
	})
}

// reject emits a rejection event and returns err unchanged.
func (t *Tracker) reject(id ID, r Region, err error) error {
	t.emit(Event{Op: OpInsert, ID: id, Region: r, Err: err})
	return err
}

// emit delivers an event to the sink. A panicking sink must never abort a
// tracker operation, so the delivery is guarded.
func (t *Tracker) emit(e Event) {
	defer func() { _ = recover() }()
	t.sink.Emit(e)
}
