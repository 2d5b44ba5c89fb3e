package main

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/regionkit/track"
)

// KeyMap defines the keybindings for the viewer.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Add     key.Binding
	Remove  key.Binding
	Compact key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add random region")),
		Remove:  key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "remove selected")),
		Compact: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compact")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// entryRow is one line of the entry table, ordered by region start.
type entryRow struct {
	id     track.ID
	region track.Region
}

// Model is the main application model.
type Model struct {
	rt   *track.Tracker
	keys KeyMap
	rng  *rand.Rand

	rows   []entryRow
	cursor int
	nextID track.ID
	status string
	width  int
}

func NewModel(capacity uint64) (Model, error) {
	rt, err := track.New(capacity, nil)
	if err != nil {
		return Model{}, err
	}
	return Model{
		rt:     rt,
		keys:   DefaultKeyMap(),
		rng:    rand.New(rand.NewSource(1)),
		nextID: 1,
		status: "empty layout, press a to add a region",
	}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshRows rebuilds the entry table from the tracker and clamps the cursor.
func (m *Model) refreshRows() {
	entries := m.rt.Entries()
	m.rows = m.rows[:0]
	for id, r := range entries {
		m.rows = append(m.rows, entryRow{id: id, region: r})
	}
	slices.SortFunc(m.rows, func(a, b entryRow) int {
		if c := cmp.Compare(a.region.Start, b.region.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
