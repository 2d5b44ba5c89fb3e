package printer

import "encoding/json"

// jsonEntry is one occupied region in the JSON snapshot.
type jsonEntry struct {
	ID     int64  `json:"id"`
	Start  uint64 `json:"start"`
	Length uint64 `json:"length"`
	End    uint64 `json:"end"`
}

// jsonGap is one free run in the JSON snapshot.
type jsonGap struct {
	Start  uint64 `json:"start"`
	Length uint64 `json:"length"`
}

// jsonSnapshot is the machine-readable layout document.
type jsonSnapshot struct {
	Capacity uint64      `json:"capacity"`
	Used     uint64      `json:"used"`
	Usage    float64     `json:"usage"`
	Entries  []jsonEntry `json:"entries"`
	Gaps     []jsonGap   `json:"gaps"`
}

// printJSON emits the full layout: entries ordered by start, the free runs
// between them, and the usage ratio. Gaps are recomputed here from the entry
// table, so the snapshot stays a pure function of the read accessor.
func (p *Printer) printJSON() error {
	entries := p.view.Entries()
	capacity := p.view.Capacity()

	snap := jsonSnapshot{
		Capacity: capacity,
		Entries:  []jsonEntry{},
		Gaps:     []jsonGap{},
	}

	var lastEnd uint64
	for _, r := range sortedByStart(entries) {
		snap.Used += r.Region.Length
		snap.Entries = append(snap.Entries, jsonEntry{
			ID:     int64(r.ID),
			Start:  r.Region.Start,
			Length: r.Region.Length,
			End:    r.Region.End(),
		})
		if r.Region.Start > lastEnd {
			snap.Gaps = append(snap.Gaps, jsonGap{Start: lastEnd, Length: r.Region.Start - lastEnd})
		}
		if r.Region.End() > lastEnd {
			lastEnd = r.Region.End()
		}
	}
	if lastEnd < capacity {
		snap.Gaps = append(snap.Gaps, jsonGap{Start: lastEnd, Length: capacity - lastEnd})
	}
	if capacity > 0 {
		snap.Usage = float64(snap.Used) / float64(capacity)
	}

	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
