package track

import "errors"

var (
	// ErrZeroCapacity indicates a tracker was constructed with capacity 0.
	ErrZeroCapacity = errors.New("track: capacity must be non-zero")

	// ErrDuplicateID indicates an insert reused an identifier that is still live.
	ErrDuplicateID = errors.New("track: id already exists")

	// ErrOutOfBounds indicates a proposed region extends past the tracked capacity.
	ErrOutOfBounds = errors.New("track: region exceeds capacity")

	// ErrOverlap indicates a proposed region intersects an existing occupied region.
	ErrOverlap = errors.New("track: region collides with an occupied region")

	// ErrUnknownID indicates an operation referenced an identifier with no live entry.
	// Remove reports absence through its boolean result; this sentinel only appears
	// in events delivered to a Sink.
	ErrUnknownID = errors.New("track: id not found")
)
