// Package ranges completes explicit index spans into full ordered covers,
// used to partition an event timeline into contiguous groups.
package ranges

import (
	"fmt"
	"slices"
)

// Span is a half-open index range [Start, Stop).
type Span struct {
	Start int
	Stop  int
}

// Fill completes explicit non-overlapping spans into an ordered, gap-free
// cover of [0, total), inserting filler spans before, between and after the
// explicit ones. Stops beyond total are clamped. Overlapping or inverted
// spans are an error.
func Fill(spans []Span, total int) ([]Span, error) {
	ordered := slices.Clone(spans)
	slices.SortFunc(ordered, func(a, b Span) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return a.Stop - b.Stop
	})

	cover := make([]Span, 0, 2*len(ordered)+1)
	cursor := 0
	for _, span := range ordered {
		if span.Stop > total {
			span.Stop = total
		}
		if span.Start > total {
			span.Start = total
		}
		if span.Stop < span.Start {
			return nil, fmt.Errorf("span %d:%d is inverted", span.Start, span.Stop)
		}
		if span.Start < cursor {
			return nil, fmt.Errorf("span %d:%d overlaps the previous span", span.Start, span.Stop)
		}

		if span.Start > cursor {
			cover = append(cover, Span{Start: cursor, Stop: span.Start})
		}
		cover = append(cover, span)
		cursor = span.Stop
	}

	if cursor < total {
		cover = append(cover, Span{Start: cursor, Stop: total})
	}

	return cover, nil
}
