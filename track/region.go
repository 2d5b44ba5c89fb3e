package track

import "fmt"

// ID is an application-chosen identifier for a tracked region. IDs must be
// unique among live entries but carry no other meaning to the tracker; they
// need not be contiguous or ordered.
type ID int64

// Region is a half-open interval [Start, Start+Length) of slots within a
// tracker's address space. Regions are immutable values; compaction replaces
// them wholesale rather than mutating them in place.
type Region struct {
	Start  uint64
	Length uint64
}

// End returns the first slot past the region (exclusive upper bound).
func (r Region) End() uint64 { return r.Start + r.Length }

// Overlaps reports whether r and o intersect. A zero-width region overlaps
// another region only when its offset falls strictly inside it; two regions
// that merely touch never overlap.
func (r Region) Overlaps(o Region) bool {
	return r.End() > o.Start && r.Start < o.End()
}

func (r Region) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End())
}
