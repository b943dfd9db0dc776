package timeline

import (
	"slices"
	"sort"

	"github.com/jinzhu/copier"

	"github.com/avelhart/cutsync/core/timespec"
)

// EventList is an ordered sequence of events within a time sequence, with an
// optional end bound (the total duration of the sequence it lives in).
type EventList struct {
	events []*Event
	end    *float64
}

type ListOption func(*EventList)

// WithEnd sets the total duration of the time sequence, in seconds.
func WithEnd(end float64) ListOption {
	return func(l *EventList) { l.end = &end }
}

// NewEventList creates a list over the given events. The order given is
// preserved; use AddEvents for sorted insertion.
func NewEventList(events []*Event, opts ...ListOption) *EventList {
	l := &EventList{events: slices.Clone(events)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// EventListFromLocations creates a list by wrapping each raw time literal as
// a marker event.
func EventListFromLocations(locations []timespec.Literal, opts ...ListOption) (*EventList, error) {
	events := make([]*Event, 0, len(locations))
	for _, location := range locations {
		event, err := NewEvent(location)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return NewEventList(events, opts...), nil
}

// Events exposes the underlying event references. Mutations through them are
// visible to every view sharing the list.
func (l *EventList) Events() []*Event {
	return l.events
}

func (l *EventList) Len() int {
	return len(l.events)
}

// End returns the sequence bound and whether one is set.
func (l *EventList) End() (float64, bool) {
	if l.end == nil {
		return 0, false
	}
	return *l.end, true
}

func (l *EventList) SetEnd(end float64) {
	l.end = &end
}

// Type returns the uniform kind of the list, KindMixed for heterogeneous
// lists, or the empty Kind for an empty list.
func (l *EventList) Type() Kind {
	if len(l.events) == 0 {
		return ""
	}
	kind := l.events[0].Kind
	for _, event := range l.events[1:] {
		if event.Kind != kind {
			return KindMixed
		}
	}
	return kind
}

// Locations returns every event's location, in list order.
func (l *EventList) Locations() []float64 {
	locations := make([]float64, len(l.events))
	for i, event := range l.events {
		locations[i] = event.Location
	}
	return locations
}

// Durations returns every event's duration, in list order.
func (l *EventList) Durations() []float64 {
	durations := make([]float64, len(l.events))
	for i, event := range l.events {
		durations[i] = event.Duration
	}
	return durations
}

// Kinds returns every event's kind, in list order.
func (l *EventList) Kinds() []Kind {
	kinds := make([]Kind, len(l.events))
	for i, event := range l.events {
		kinds[i] = event.Kind
	}
	return kinds
}

// Intervals returns the differences between consecutive event locations.
func (l *EventList) Intervals() []float64 {
	return timespec.Intervals(l.Locations())
}

// SegmentLocations returns the start boundaries of the segments the events
// split the sequence into: zero followed by every event location.
func (l *EventList) SegmentLocations() []float64 {
	return append([]float64{0}, l.Locations()...)
}

// SegmentDurations returns the durations of the n+1 segments between zero,
// the events and the end bound. Their sum equals the end. Returns
// ErrMissingEnd when no end is set.
func (l *EventList) SegmentDurations() ([]float64, error) {
	if l.end == nil {
		return nil, ErrMissingEnd
	}
	return timespec.Intervals(append(l.Locations(), *l.end)), nil
}

// AddEvents inserts each event at the position that keeps the list ordered
// by location, after any events at the same location.
func (l *EventList) AddEvents(events ...*Event) {
	for _, event := range events {
		at := sort.Search(len(l.events), func(i int) bool {
			return event.Location < l.events[i].Location
		})
		l.events = slices.Insert(l.events, at, event)
	}
}

// AddLocations converts each raw time literal to a marker event and inserts
// it in order.
func (l *EventList) AddLocations(locations ...timespec.Literal) error {
	for _, location := range locations {
		event, err := NewEvent(location)
		if err != nil {
			return err
		}
		l.AddEvents(event)
	}
	return nil
}

// Offset shifts every event location by delta, in place. The end bound is
// not re-clamped.
func (l *EventList) Offset(delta float64) {
	for _, event := range l.events {
		event.Location += delta
	}
}

// Clear removes all events. The end bound is kept.
func (l *EventList) Clear() {
	l.events = nil
}

// Equal reports whether both lists hold equal event sequences and identical
// end bounds.
func (l *EventList) Equal(other *EventList) bool {
	if other == nil {
		return false
	}
	if len(l.events) != len(other.events) {
		return false
	}
	for i, event := range l.events {
		if !event.Equal(other.events[i]) {
			return false
		}
	}
	if (l.end == nil) != (other.end == nil) {
		return false
	}
	return l.end == nil || *l.end == *other.end
}

// Clone returns a deep copy sharing nothing with the receiver.
func (l *EventList) Clone() *EventList {
	clone := &EventList{events: make([]*Event, len(l.events))}
	for i, event := range l.events {
		duplicate := &Event{}
		copier.Copy(duplicate, event)
		clone.events[i] = duplicate
	}
	if l.end != nil {
		end := *l.end
		clone.end = &end
	}
	return clone
}
