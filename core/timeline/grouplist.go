package timeline

import (
	"fmt"
	"slices"

	"github.com/avelhart/cutsync/core/timespec"
)

// EventGroupList is an ordered collection of EventList groups with a tracked
// selected subset. The selection holds references into the main sequence:
// retiming a group through either view is visible through the other.
type EventGroupList struct {
	groups   []*EventList
	selected []*EventList
}

type GroupListOption func(*EventGroupList)

// WithSelected marks the given group references as the selected subset.
func WithSelected(groups ...*EventList) GroupListOption {
	return func(gl *EventGroupList) { gl.selected = groups }
}

// NewEventGroupList creates a group list over the given groups.
func NewEventGroupList(groups []*EventList, opts ...GroupListOption) *EventGroupList {
	gl := &EventGroupList{groups: slices.Clone(groups)}
	for _, opt := range opts {
		opt(gl)
	}
	return gl
}

// EventGroupListFromLocations creates a group list by wrapping each raw
// location sequence as an EventList of marker events.
func EventGroupListFromLocations(groups [][]timespec.Literal, opts ...GroupListOption) (*EventGroupList, error) {
	wrapped := make([]*EventList, 0, len(groups))
	for _, locations := range groups {
		group, err := EventListFromLocations(locations)
		if err != nil {
			return nil, err
		}
		wrapped = append(wrapped, group)
	}
	return NewEventGroupList(wrapped, opts...), nil
}

// Groups exposes the underlying group references.
func (gl *EventGroupList) Groups() []*EventList {
	return gl.groups
}

func (gl *EventGroupList) Len() int {
	return len(gl.groups)
}

// End returns the end bound of the last group, absent when the container is
// empty or the last group has no end.
func (gl *EventGroupList) End() (float64, bool) {
	if len(gl.groups) == 0 {
		return 0, false
	}
	return gl.groups[len(gl.groups)-1].End()
}

// SelectedGroups returns a view over the tracked selection. The view shares
// group references with the receiver.
func (gl *EventGroupList) SelectedGroups() *EventGroupList {
	return NewEventGroupList(gl.selected)
}

// UnselectedGroups returns the structural complement of the selection within
// the main sequence, decided by group equality.
func (gl *EventGroupList) UnselectedGroups() *EventGroupList {
	var unselected []*EventList
	for _, group := range gl.groups {
		if !containsEqual(gl.selected, group) {
			unselected = append(unselected, group)
		}
	}
	return NewEventGroupList(unselected)
}

func containsEqual(groups []*EventList, target *EventList) bool {
	for _, group := range groups {
		if group.Equal(target) {
			return true
		}
	}
	return false
}

// SpeedMultiply retimes each group, pairing groups with speeds and offsets
// positionally. Missing speeds default to 1 and missing offsets to 0; extra
// entries beyond the group count are ignored.
func (gl *EventGroupList) SpeedMultiply(speeds []float64, offsets []int) error {
	for i, group := range gl.groups {
		speed := 1.0
		if i < len(speeds) {
			speed = speeds[i]
		}
		offset := 0
		if i < len(offsets) {
			offset = offsets[i]
		}
		if err := group.SpeedMultiply(speed, offset); err != nil {
			return fmt.Errorf("failed to retime group %d: %w", i, err)
		}
	}
	return nil
}

// Flatten concatenates all groups back into a single EventList, in group
// order then in-group order, sharing event references. The flattened end is
// the container end.
func (gl *EventGroupList) Flatten() *EventList {
	var events []*Event
	for _, group := range gl.groups {
		events = append(events, group.events...)
	}

	flattened := NewEventList(events)
	if end, ok := gl.End(); ok {
		flattened.SetEnd(end)
	}
	return flattened
}
