package timeline

import (
	"fmt"
	"slices"

	"github.com/avelhart/cutsync/core/ranges"
)

// GroupByType partitions the list into its type-runs, in original order.
// Each group shares event references with the receiver and inherits its end
// bound. With no selectKinds every group is selected; otherwise a group is
// selected iff its uniform kind is listed.
func (l *EventList) GroupByType(selectKinds ...Kind) *EventGroupList {
	var groups []*EventList
	for _, run := range l.typeRuns() {
		groups = append(groups, &EventList{events: slices.Clone(run), end: l.end})
	}

	selected := groups
	if len(selectKinds) > 0 {
		selected = nil
		for _, group := range groups {
			if slices.Contains(selectKinds, group.Type()) {
				selected = append(selected, group)
			}
		}
	}

	return NewEventGroupList(groups, WithSelected(selected...))
}

// GroupBySlices partitions the list by explicit index spans, completed into
// a full ordered cover of the list by inserting filler spans around them.
// Exactly the groups for the explicitly supplied spans are selected.
// Negative indices are rejected; stops beyond the list length are clamped.
func (l *EventList) GroupBySlices(spans []ranges.Span) (*EventGroupList, error) {
	explicit := make([]ranges.Span, len(spans))
	for i, span := range spans {
		if span.Start < 0 || span.Stop < 0 {
			return nil, &InvalidSliceError{Span: span}
		}
		if span.Stop > len(l.events) {
			span.Stop = len(l.events)
		}
		if span.Start > len(l.events) {
			span.Start = len(l.events)
		}
		explicit[i] = span
	}

	cover, err := ranges.Fill(explicit, len(l.events))
	if err != nil {
		return nil, fmt.Errorf("failed to complete slice cover: %w", err)
	}

	var groups, selected []*EventList
	for _, span := range cover {
		group := &EventList{events: slices.Clone(l.events[span.Start:span.Stop]), end: l.end}
		groups = append(groups, group)
		if slices.Contains(explicit, span) {
			selected = append(selected, group)
		}
	}

	logger.Debug("grouped event list by slices", "spans", len(explicit), "groups", len(groups))
	return NewEventGroupList(groups, WithSelected(selected...)), nil
}
