// Package track implements occupancy bookkeeping for a fixed-capacity linear
// address space.
//
// # Overview
//
// A Tracker maintains the mapping from application identifier to the half-open
// region [start, start+length) that identifier occupies, together with a
// sorted index of all occupied regions. It answers first-fit free-space
// queries, performs collision-checked insertion, removal, and gap-eliminating
// compaction. It is an accounting layer only: the bytes (array slots, file
// pages, VRAM, whatever the offsets describe) are owned and moved by the
// caller.
//
// # Operations
//
//   - FindFree(length): lowest-offset gap of at least length slots
//   - Insert(id, start, length): collision-checked occupation
//   - Remove(id): release an entry
//   - Lookup(id) / Entries() / Gaps() / Usage(): read-only queries
//   - Compact(): repack all regions contiguously from 0
//
// # Invariants
//
// After every exported operation:
//
//  1. Every occupied region lies within [0, capacity).
//  2. No two occupied regions overlap.
//  3. The occupied index and the entry table describe exactly the same
//     regions.
//  4. Identifiers are unique among live entries.
//
// # First-fit search
//
// FindFree walks the occupied index in ascending start order tracking the end
// of the previous region; the first gap (including the tail after the last
// region) that is large enough wins. Lowest offset wins over best fit. The
// scan is O(live entries).
//
// # Compaction
//
// Compact repacks entries contiguously from offset 0 in ascending order of
// their pre-compaction start: regions slide down in place, preserving relative
// order and individual lengths, eliminating gaps. The iteration order is
// pinned by sorting, never taken from the map, so the resulting layout is
// reproducible across runs and Go versions.
//
// # Usage Example
//
//	rt, err := track.New(20, nil)
//	if err != nil {
//	    return err
//	}
//
//	_ = rt.Insert(1, 0, 5)
//	_ = rt.Insert(2, 5, 3)
//
//	if start, ok := rt.FindFree(10); ok {
//	    _ = rt.Insert(3, start, 10)
//	}
//
//	rt.Remove(2)
//	rt.Compact() // {1:[0,5), 3:[5,15)}
//
// # Observability
//
// Every mutating operation, successful or rejected, emits an Event to the
// Sink supplied at construction. Delivery is fire-and-forget: the tracker
// tolerates a nil sink, never reads anything back, and a panicking sink
// cannot abort an operation. See the eventlog package for ready-made sinks.
//
// # Thread Safety
//
// Tracker instances are not thread-safe. Callers must synchronize access
// externally, and must hold their lock across a FindFree/Insert pair: the
// two calls are not atomic together, so interleaving them hands two callers
// the same gap.
//
// # Related Packages
//
//   - github.com/joshuapare/regionkit/printer: ASCII/JSON layout rendering
//   - github.com/joshuapare/regionkit/eventlog: log and trace sinks
package track
