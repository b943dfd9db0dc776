package timeline

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// reprWidth is the wrap width of multi-line listings.
const reprWidth = 100

func (l *EventList) String() string {
	reprs := make([]string, len(l.events))
	for i, event := range l.events {
		reprs[i] = event.repr(i)
	}

	end := "none"
	if l.end != nil {
		end = fmt.Sprintf("%.3f", *l.end)
	}

	return fmt.Sprintf("<[%s], end: %s>", wordwrap.String(strings.Join(reprs, ", "), reprWidth), end)
}

// listRepr renders the group as one line of a group listing. start is the
// flattened index of the group's first event.
func (l *EventList) listRepr(start int, selected bool) string {
	return fmt.Sprintf(
		"<EventList %d-%d (%d), type: %s, selected: %t>",
		start, start+len(l.events), len(l.events), l.Type(), selected,
	)
}

func (gl *EventGroupList) String() string {
	reprs := make([]string, 0, len(gl.groups))
	count := 0
	for _, group := range gl.groups {
		reprs = append(reprs, group.listRepr(count, containsEqual(gl.selected, group)))
		count += group.Len()
	}

	return fmt.Sprintf("<[%s]>", wordwrap.String(strings.Join(reprs, ", "), reprWidth))
}
