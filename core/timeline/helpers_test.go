package timeline

import (
	"math"
	"testing"

	"github.com/avelhart/cutsync/core/timespec"
)

func mustEventList(t *testing.T, locations []timespec.Literal, opts ...ListOption) *EventList {
	t.Helper()
	list, err := EventListFromLocations(locations, opts...)
	if err != nil {
		t.Fatalf("expected event list to build, got %v", err)
	}
	return list
}

func mustKindList(t *testing.T, kinds []Kind, opts ...ListOption) *EventList {
	t.Helper()
	events := make([]*Event, 0, len(kinds))
	for i, kind := range kinds {
		event, err := NewEvent(float64(i), WithKind(kind))
		if err != nil {
			t.Fatalf("expected event to build, got %v", err)
		}
		events = append(events, event)
	}
	return NewEventList(events, opts...)
}

func assertLocations(t *testing.T, list *EventList, expected []float64) {
	t.Helper()
	locations := list.Locations()
	if len(locations) != len(expected) {
		t.Fatalf("expected %d locations %v, got %d (%v)", len(expected), expected, len(locations), locations)
	}
	for i, location := range locations {
		if math.Abs(location-expected[i]) > 1e-9 {
			t.Fatalf("expected location %d to be %v, got %v", i, expected[i], location)
		}
	}
}
