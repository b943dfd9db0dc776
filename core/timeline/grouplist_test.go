package timeline

import (
	"errors"
	"testing"

	"github.com/avelhart/cutsync/core/timespec"
)

func TestEndComesFromTheLastGroup(t *testing.T) {
	first := mustEventList(t, []timespec.Literal{0, 1}, WithEnd(2))
	second := mustEventList(t, []timespec.Literal{2, 3}, WithEnd(4))

	groups := NewEventGroupList([]*EventList{first, second})

	if end, ok := groups.End(); !ok || end != 4 {
		t.Fatalf("expected end 4 from the last group, got %v (%t)", end, ok)
	}
	if _, ok := NewEventGroupList(nil).End(); ok {
		t.Fatalf("expected no end for an empty group list")
	}
}

func TestSelectionViewsShareGroupReferences(t *testing.T) {
	list := mustKindList(t, []Kind{KindBeat, KindBeat, KindBeat, KindBeat})

	groups := list.GroupByType()
	if err := groups.Groups()[0].SpeedMultiply(0.5, 0); err != nil {
		t.Fatalf("expected retiming through the main view to succeed, got %v", err)
	}

	// The selection aliases the same group, so the mutation is visible there.
	if got := groups.SelectedGroups().Groups()[0].Len(); got != 2 {
		t.Fatalf("expected merge through the main view to show in the selection, got %d events", got)
	}
}

func TestUnselectedGroupsUsesEqualityMembership(t *testing.T) {
	group := mustEventList(t, []timespec.Literal{0, 1})
	lookalike := mustEventList(t, []timespec.Literal{0, 1})
	other := mustEventList(t, []timespec.Literal{2})

	groups := NewEventGroupList([]*EventList{group, other}, WithSelected(lookalike))

	unselected := groups.UnselectedGroups()
	if unselected.Len() != 1 {
		t.Fatalf("expected one unselected group, got %d", unselected.Len())
	}
	if !unselected.Groups()[0].Equal(other) {
		t.Fatalf("expected the structurally distinct group to be unselected")
	}
}

func TestSpeedMultiplyPadsMissingSpeeds(t *testing.T) {
	first := mustEventList(t, []timespec.Literal{0, 1})
	second := mustEventList(t, []timespec.Literal{2, 3})
	third := mustEventList(t, []timespec.Literal{4, 5})
	groups := NewEventGroupList([]*EventList{first, second, third})

	if err := groups.SpeedMultiply([]float64{2}, nil); err != nil {
		t.Fatalf("expected group retiming to succeed, got %v", err)
	}

	assertLocations(t, first, []float64{0, 0.5, 1})
	assertLocations(t, second, []float64{2, 3})
	assertLocations(t, third, []float64{4, 5})
}

func TestSpeedMultiplyIgnoresExtraSpeeds(t *testing.T) {
	only := mustEventList(t, []timespec.Literal{0, 1})
	groups := NewEventGroupList([]*EventList{only})

	// The second factor would be invalid, but no group pairs with it.
	if err := groups.SpeedMultiply([]float64{1, 0.7}, []int{0, 3}); err != nil {
		t.Fatalf("expected extra speeds to be ignored, got %v", err)
	}

	assertLocations(t, only, []float64{0, 1})
}

func TestSpeedMultiplyWrapsGroupErrors(t *testing.T) {
	groups := NewEventGroupList([]*EventList{mustEventList(t, []timespec.Literal{0, 1})})

	err := groups.SpeedMultiply([]float64{0.7}, nil)
	if err == nil {
		t.Fatalf("expected invalid group speed to fail, got no error")
	}
	var speedErr *InvalidSpeedError
	if !errors.As(err, &speedErr) {
		t.Fatalf("expected InvalidSpeedError, got %v", err)
	}
}

func TestFlattenConcatenatesGroupsInOrder(t *testing.T) {
	first := mustEventList(t, []timespec.Literal{0, 1}, WithEnd(6))
	second := mustEventList(t, []timespec.Literal{2, 3}, WithEnd(6))
	groups := NewEventGroupList([]*EventList{first, second})

	flattened := groups.Flatten()

	assertLocations(t, flattened, []float64{0, 1, 2, 3})
	if end, ok := flattened.End(); !ok || end != 6 {
		t.Fatalf("expected flattened end 6, got %v (%t)", end, ok)
	}
}

func TestEventGroupListFromLocationsWrapsGroups(t *testing.T) {
	groups, err := EventGroupListFromLocations([][]timespec.Literal{{0, 1}, {"0:02", 3}})
	if err != nil {
		t.Fatalf("expected raw groups to wrap, got %v", err)
	}

	if groups.Len() != 2 {
		t.Fatalf("expected 2 groups, got %d", groups.Len())
	}
	assertLocations(t, groups.Groups()[1], []float64{2, 3})
}
