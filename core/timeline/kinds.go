package timeline

import "github.com/avelhart/cutsync/core/timespec"

const (
	// KindMarker identifies a bare timestamp with no semantic source.
	KindMarker Kind = "timeline.marker"
	// KindBeat identifies a detected musical beat.
	KindBeat Kind = "audio.beat"
	// KindWeakBeat identifies a low-confidence beat.
	KindWeakBeat Kind = "audio.weak_beat"
	// KindOnset identifies a detected note onset.
	KindOnset Kind = "audio.onset"
	// KindSilence identifies the start of a silent stretch.
	KindSilence Kind = "audio.silence"
	// KindCut identifies an externally forced visual cut point.
	KindCut Kind = "video.cut"
)

// KindMixed reports a heterogeneous list type. It is never stored on an
// event.
const KindMixed Kind = "mixed"

// NewBeat creates a beat event at the given location.
func NewBeat(location timespec.Literal, opts ...EventOption) (*Event, error) {
	return NewEvent(location, append([]EventOption{WithKind(KindBeat)}, opts...)...)
}

// NewWeakBeat creates a low-confidence beat event at the given location.
func NewWeakBeat(location timespec.Literal, opts ...EventOption) (*Event, error) {
	return NewEvent(location, append([]EventOption{WithKind(KindWeakBeat)}, opts...)...)
}

// NewOnset creates a note onset event at the given location.
func NewOnset(location timespec.Literal, opts ...EventOption) (*Event, error) {
	return NewEvent(location, append([]EventOption{WithKind(KindOnset)}, opts...)...)
}

// NewSilence creates a silence event at the given location.
func NewSilence(location timespec.Literal, opts ...EventOption) (*Event, error) {
	return NewEvent(location, append([]EventOption{WithKind(KindSilence)}, opts...)...)
}

// NewCut creates a forced cut event at the given location.
func NewCut(location timespec.Literal, opts ...EventOption) (*Event, error) {
	return NewEvent(location, append([]EventOption{WithKind(KindCut)}, opts...)...)
}
