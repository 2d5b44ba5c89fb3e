// Package eventlog provides ready-made sinks for tracker events: colored
// human-readable log lines and OpenTelemetry span events. Sinks are
// best-effort observers; a failing writer or exporter never surfaces back
// into the tracker.
package eventlog

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/joshuapare/regionkit/track"
)

var (
	addColor     = color.New(color.FgGreen)
	removeColor  = color.New(color.FgYellow)
	compactColor = color.New(color.FgCyan)
	rejectColor  = color.New(color.FgRed)
)

// WriterSink renders each event as a "[LOG]:" line on an io.Writer, colored
// by outcome. Write errors are dropped on purpose: logging is fire-and-forget
// and must never reach the tracker's callers.
type WriterSink struct {
	w io.Writer
}

// NewWriter creates a WriterSink writing to w.
func NewWriter(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit implements track.Sink.
func (s *WriterSink) Emit(e track.Event) {
	c := addColor
	switch {
	case e.Err != nil:
		c = rejectColor
	case e.Op == track.OpRemove:
		c = removeColor
	case e.Op == track.OpCompact:
		c = compactColor
	}
	_, _ = fmt.Fprintf(s.w, "[LOG]: %s\n", c.Sprint(e.String()))
}

var _ track.Sink = (*WriterSink)(nil)
