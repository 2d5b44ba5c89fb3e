package main

import (
	"fmt"
	"strings"
)

// View renders the entire UI: header, occupancy bar, entry table, status.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf(
		"regionview | capacity %d, %d entries, usage %.1f%%",
		m.rt.Capacity(), m.rt.Len(), m.rt.Usage()*100)))
	b.WriteString("\n\n")

	b.WriteString(barStyle.Render(m.renderBar()))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(rowStyle.Render("(no entries)"))
		b.WriteString("\n")
	}
	for i, row := range m.rows {
		line := fmt.Sprintf("ID=%-4d %-14s length=%d", row.id, row.region.String(), row.region.Length)
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render(
		m.status + "  •  a add · d remove · c compact · ↑/↓ select · q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderBar draws one colored cell per slot, compressed to the terminal width
// when the capacity does not fit.
func (m Model) renderBar() string {
	capacity := m.rt.Capacity()

	width := capacity
	if m.width > 4 && capacity > uint64(m.width-4) {
		width = uint64(m.width - 4)
	}

	// cell i covers slots [i*capacity/width, (i+1)*capacity/width); a cell is
	// drawn occupied when any covering region occupies its first slot.
	cells := make([]int, width) // index into rows, -1 when free
	for i := range cells {
		cells[i] = -1
	}
	for ri, row := range m.rows {
		r := row.region
		if r.Length == 0 {
			continue
		}
		lo := r.Start * width / capacity
		hi := (r.End() - 1) * width / capacity
		for i := lo; i <= hi && i < width; i++ {
			cells[i] = ri
		}
	}

	var b strings.Builder
	for i := uint64(0); i < width; {
		j := i
		for j < width && cells[j] == cells[i] {
			j++
		}
		n := int(j - i)
		if cells[i] < 0 {
			b.WriteString(freeStyle.Render(strings.Repeat("░", n)))
		} else {
			style := regionStyle(cells[i])
			if cells[i] == m.cursor {
				style = style.Bold(true)
			}
			b.WriteString(style.Render(strings.Repeat("█", n)))
		}
		i = j
	}
	return b.String()
}
