package track

import "fmt"

// Op names the tracker operation an Event describes.
type Op string

const (
	OpInsert  Op = "insert"
	OpRemove  Op = "remove"
	OpCompact Op = "compact"
)

// Event is a fire-and-forget notification emitted after each mutating
// operation, successful or rejected. Err is nil on success and carries the
// rejection sentinel otherwise. The tracker never reads anything back from
// the sink, so events cannot influence core behavior.
type Event struct {
	Op     Op
	ID     ID
	Region Region
	Err    error
}

func (e Event) String() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s ID=%d %s rejected: %v", e.Op, e.ID, e.Region, e.Err)
	case e.Op == OpCompact:
		return "compacted entries"
	case e.Op == OpRemove:
		return fmt.Sprintf("removed entry ID=%d %s", e.ID, e.Region)
	default:
		return fmt.Sprintf("added entry ID=%d %s", e.ID, e.Region)
	}
}

// Sink receives tracker events. Implementations must not retain the tracker
// or call back into it; they observe, render, or discard.
//
// Implementations:
//   - NopSink: discards everything (the default when nil is passed to New)
//   - SinkFunc: adapts a plain function
//   - eventlog.WriterSink: human-readable log lines
//   - eventlog.TraceSink: OpenTelemetry span events
type Sink interface {
	Emit(Event)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Emit(Event) {}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// Compile-time interface checks
var (
	_ Sink = NopSink{}
	_ Sink = SinkFunc(nil)
)
