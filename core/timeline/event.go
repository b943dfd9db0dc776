package timeline

import (
	"fmt"
	"strings"

	"github.com/avelhart/cutsync/core/timespec"
)

// Kind discriminates the semantic source of an event.
type Kind string

// Event is a single occurrence in a time sequence. Location and Duration are
// in seconds. Events order by Location only; equality covers all fields.
type Event struct {
	Kind     Kind
	Location float64
	Duration float64
}

type eventConfig struct {
	kind     Kind
	duration timespec.Literal
}

type EventOption func(*eventConfig)

// WithKind tags the event with a kind other than the default marker.
func WithKind(kind Kind) EventOption {
	return func(cfg *eventConfig) { cfg.kind = kind }
}

// WithDuration sets the event duration from a time literal.
func WithDuration(duration timespec.Literal) EventOption {
	return func(cfg *eventConfig) { cfg.duration = duration }
}

// NewEvent creates an event at the given location, accepting any time
// literal shape timespec.Seconds accepts. Conversion failures propagate
// unchanged.
func NewEvent(location timespec.Literal, opts ...EventOption) (*Event, error) {
	cfg := eventConfig{kind: KindMarker}
	for _, opt := range opts {
		opt(&cfg)
	}

	seconds, err := timespec.Seconds(location)
	if err != nil {
		return nil, err
	}

	var duration float64
	if cfg.duration != nil {
		duration, err = timespec.Seconds(cfg.duration)
		if err != nil {
			return nil, err
		}
	}

	return &Event{Kind: cfg.kind, Location: seconds, Duration: duration}, nil
}

// Before reports whether the event is located strictly earlier than other.
func (e *Event) Before(other *Event) bool {
	return e.Location < other.Location
}

// Equal reports full structural equality, kind included.
func (e *Event) Equal(other *Event) bool {
	if e == nil || other == nil {
		return e == other
	}
	return *e == *other
}

func (e *Event) String() string {
	return e.repr(-1)
}

// repr renders the event, with its list index when index is non-negative.
// Zero-valued location and duration are omitted.
func (e *Event) repr(index int) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(string(e.Kind))
	if index >= 0 {
		fmt.Fprintf(&b, " %d", index)
	}
	if e.Location != 0 {
		fmt.Fprintf(&b, ", location: %.3f", e.Location)
	}
	if e.Duration != 0 {
		fmt.Fprintf(&b, ", duration: %.3f", e.Duration)
	}
	b.WriteString(">")
	return b.String()
}
