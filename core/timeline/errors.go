package timeline

import (
	"errors"
	"fmt"

	"github.com/avelhart/cutsync/core/ranges"
)

// ErrMissingEnd reports an operation that needs the list end when none is
// set.
var ErrMissingEnd = errors.New("event list end is not set")

// InvalidSpeedError reports a speed factor that is neither 0, a whole-number
// speedup, nor a unit-fraction slowdown.
type InvalidSpeedError struct {
	Speed float64
	Num   int64
	Den   int64
}

func (e *InvalidSpeedError) Error() string {
	return fmt.Sprintf(
		"speed %v normalizes to %d/%d; must be 0, a whole number > 1, or a unit fraction 1/k",
		e.Speed, e.Num, e.Den,
	)
}

// InvalidSliceError reports a grouping span with negative indices.
type InvalidSliceError struct {
	Span ranges.Span
}

func (e *InvalidSliceError) Error() string {
	return fmt.Sprintf("span %d:%d uses negative indices", e.Span.Start, e.Span.Stop)
}
