package printer

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/joshuapare/regionkit/track"
)

// palette cycles per entry id when colored output is enabled.
var palette = []*color.Color{
	color.New(color.FgGreen),
	color.New(color.FgCyan),
	color.New(color.FgMagenta),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
}

// printText renders the layout the classic way: the entry table, an occupancy
// bar (the entry's last id digit at its start cell, '-' fill, ' ' for free
// slots), and an index ruler with decade labels.
func (p *Printer) printText() error {
	entries := p.view.Entries()
	capacity := p.view.Capacity()

	if p.opts.ShowTable {
		if err := p.printTable(entries); err != nil {
			return err
		}
	}

	width := capacity
	truncated := false
	if p.opts.MaxWidth > 0 && capacity > uint64(p.opts.MaxWidth) {
		width = uint64(p.opts.MaxWidth)
		truncated = true
	}

	if err := p.printBar(entries, width, truncated); err != nil {
		return err
	}

	if p.opts.ShowRuler {
		if err := p.printRuler(width, truncated); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printTable(entries map[track.ID]track.Region) error {
	ids := make([]track.ID, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d: %s", id, entries[id])
	}
	_, err := fmt.Fprintf(p.writer, "Entries: {%s}\n", strings.Join(parts, ", "))
	return err
}

func (p *Printer) printBar(entries map[track.ID]track.Region, width uint64, truncated bool) error {
	cells := make([]byte, width)
	for i := range cells {
		cells[i] = ' '
	}
	owner := make([]track.ID, width)
	held := make([]bool, width)

	for id, r := range entries {
		if r.Length == 0 || r.Start >= width {
			continue
		}
		cells[r.Start] = '0' + byte(((id%10)+10)%10)
		owner[r.Start], held[r.Start] = id, true
		for i := r.Start + 1; i < min(r.End(), width); i++ {
			cells[i] = '-'
			owner[i], held[i] = id, true
		}
	}

	var b strings.Builder
	if !p.opts.Color {
		b.Write(cells)
	} else {
		// Emit whole runs so each region gets one color.
		for i := uint64(0); i < width; {
			j := i
			for j < width && held[j] == held[i] && owner[j] == owner[i] {
				j++
			}
			if !held[i] {
				b.Write(cells[i:j])
			} else {
				idx := int(owner[i]) % len(palette)
				if idx < 0 {
					idx += len(palette)
				}
				b.WriteString(palette[idx].Sprint(string(cells[i:j])))
			}
			i = j
		}
	}
	if truncated {
		b.WriteString("…")
	}
	b.WriteByte('\n')

	_, err := fmt.Fprint(p.writer, b.String())
	return err
}

func (p *Printer) printRuler(width uint64, truncated bool) error {
	var b strings.Builder

	for i := uint64(0); i < width; i++ {
		b.WriteByte('0' + byte(i%10))
	}
	if truncated {
		b.WriteString("…")
	}
	b.WriteByte('\n')

	// Decade labels. A long label consumes the following cells, which keeps
	// the line aligned instead of shifting everything rightwards.
	for i := uint64(0); i < width; {
		if i%10 == 0 {
			label := strconv.FormatUint(i, 10)
			b.WriteString(label)
			i += uint64(len(label))
		} else {
			b.WriteByte(' ')
			i++
		}
	}
	b.WriteByte('\n')

	_, err := fmt.Fprint(p.writer, b.String())
	return err
}

// row pairs an id with its region for ordered rendering.
type row struct {
	ID     track.ID
	Region track.Region
}

// sortedByStart returns the entries ordered by region start, ties broken by
// id. Shared by the JSON snapshot.
func sortedByStart(entries map[track.ID]track.Region) []row {
	out := make([]row, 0, len(entries))
	for id, r := range entries {
		out = append(out, row{id, r})
	}
	slices.SortFunc(out, func(a, b row) int {
		if c := cmp.Compare(a.Region.Start, b.Region.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
