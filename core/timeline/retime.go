package timeline

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/avelhart/cutsync/core/timespec"
)

// SpeedMultiply retimes the list by the given factor. The factor must
// normalize to 0 (clear all events), 1 (no-op), a whole number p > 1
// (split each interval into p pieces), or a unit fraction 1/k (keep every
// k-th event). Any other ratio is rejected with InvalidSpeedError.
//
// offset phase-shifts the merge within [0, k-1] and is meaningful only for
// slowdowns.
func (l *EventList) SpeedMultiply(speed float64, offset int) error {
	num, den, err := timespec.Ratio(speed)
	if err != nil {
		return fmt.Errorf("failed to normalize speed: %w", err)
	}

	switch {
	case num == 0:
		l.Clear()
	case num == 1 && den == 1:
		// Identity retime, used by group retiming to pad missing speeds.
	case den == 1 && num > 1:
		l.split(int(num))
	case num == 1 && den > 1:
		l.merge(int(den), offset)
	default:
		return &InvalidSpeedError{Speed: speed, Num: num, Den: den}
	}

	logger.Debug("retimed event list", "speed", speed, "offset", offset, "events", len(l.events))
	return nil
}

// typeRuns partitions the events into maximal contiguous runs of identical
// kind, preserving the existing order.
func (l *EventList) typeRuns() [][]*Event {
	var runs [][]*Event
	start := 0
	for i := 1; i <= len(l.events); i++ {
		if i == len(l.events) || l.events[i].Kind != l.events[start].Kind {
			runs = append(runs, l.events[start:i])
			start = i
		}
	}
	return runs
}

// split subdivides each interval inside a type-run into the given number of
// pieces, synthesizing evenly spaced copies of the interval's left event.
// Isolated events and the last event of every run are kept unsplit.
func (l *EventList) split(pieces int) {
	var splintered []*Event

	for _, run := range l.typeRuns() {
		if len(run) == 1 {
			splintered = append(splintered, run[0])
			continue
		}

		for i, event := range run {
			splintered = append(splintered, event)
			if i == len(run)-1 {
				continue
			}

			step := (run[i+1].Location - event.Location) / float64(pieces)
			location := event.Location
			for piece := 1; piece < pieces; piece++ {
				location += step
				splinter := &Event{}
				copier.Copy(splinter, event)
				splinter.Location = location
				splintered = append(splintered, splinter)
			}
		}
	}

	l.events = splintered
}

// merge keeps every pieces-th event of a type-run, phase-shifted by offset.
// Isolated events are always kept, and merging never crosses a run boundary.
func (l *EventList) merge(pieces, offset int) {
	phase := ((offset % pieces) + pieces) % pieces
	var combined []*Event

	for _, run := range l.typeRuns() {
		if len(run) == 1 {
			combined = append(combined, run[0])
			continue
		}

		for i, event := range run {
			if (i-phase)%pieces == 0 {
				combined = append(combined, event)
			}
		}
	}

	l.events = combined
}
