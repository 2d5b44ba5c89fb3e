package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Add):
			m.addRandom()
			return m, nil

		case key.Matches(msg, m.keys.Remove):
			m.removeSelected()
			return m, nil

		case key.Matches(msg, m.keys.Compact):
			m.rt.Compact()
			m.refreshRows()
			m.status = "compacted"
			return m, nil
		}
	}
	return m, nil
}

// addRandom places a random-length region at the first-fit offset.
func (m *Model) addRandom() {
	maxLen := m.rt.Capacity() / 8
	if maxLen < 2 {
		maxLen = 2
	}
	length := 1 + uint64(m.rng.Int63n(int64(maxLen)))

	start, ok := m.rt.FindFree(length)
	if !ok {
		m.status = fmt.Sprintf("no free run of %d slots, remove or compact", length)
		return
	}
	id := m.nextID
	m.nextID++

	if err := m.rt.Insert(id, start, length); err != nil {
		m.status = fmt.Sprintf("insert failed: %v", err)
		return
	}
	m.refreshRows()
	m.status = fmt.Sprintf("added ID=%d at [%d, %d)", id, start, start+length)
}

func (m *Model) removeSelected() {
	if len(m.rows) == 0 {
		m.status = "nothing to remove"
		return
	}
	row := m.rows[m.cursor]
	if m.rt.Remove(row.id) {
		m.status = fmt.Sprintf("removed ID=%d %s", row.id, row.region)
	}
	m.refreshRows()
}
