// Package printer renders the occupancy layout of a tracker for humans and
// tooling. It is a read-only collaborator: it consumes the entry-table
// accessor and the capacity, and never feeds anything back into the tracker.
package printer

import (
	"io"

	"github.com/joshuapare/regionkit/track"
)

const DefaultMaxWidth = 0

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the three-line ASCII layout (table, bar, ruler).
	FormatText Format = "text"

	// FormatJSON outputs a machine-readable snapshot.
	FormatJSON Format = "json"
)

// View is the read-only surface the printer needs. *track.Tracker satisfies
// it; tests may substitute fixtures.
type View interface {
	Capacity() uint64
	Entries() map[track.ID]track.Region
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// ShowTable includes the id→region table above the bar (text format only).
	// Default: true
	ShowTable bool

	// ShowRuler includes the index ruler and decade labels under the bar
	// (text format only).
	// Default: true
	ShowRuler bool

	// Color enables ANSI-colored occupancy bars (text format only).
	// Default: false
	Color bool

	// MaxWidth truncates bar and ruler lines longer than this many cells.
	// Set to 0 for no limit.
	// Default: 0 (unlimited)
	MaxWidth int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:    FormatText,
		ShowTable: true,
		ShowRuler: true,
		Color:     false,
		MaxWidth:  DefaultMaxWidth,
	}
}

// Printer handles formatted output of tracker layouts.
type Printer struct {
	view   View
	writer io.Writer
	opts   Options
}

// New creates a new Printer.
//
// Example:
//
//	rt, _ := track.New(20, nil)
//	p := printer.New(rt, os.Stdout, printer.DefaultOptions())
//	p.Print()
func New(v View, w io.Writer, opts Options) *Printer {
	return &Printer{
		view:   v,
		writer: w,
		opts:   opts,
	}
}

// Print renders the current layout in the configured format.
func (p *Printer) Print() error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON()
	default:
		return p.printText()
	}
}
