// Package timeline models an ordered sequence of timestamped cut-point
// events and the operations used to synchronize cut points with a driving
// rhythm such as detected beats.
//
// The model has three layers:
//
//   - Event: a single timestamped occurrence with a location and duration,
//     tagged with one of a closed set of kinds.
//   - EventList: an owned, ordered collection of events with an optional
//     sequence bound ("end"); supports interval/segment queries, ordered
//     insertion, offsetting and variable-speed retiming.
//   - EventGroupList: an ordered collection of EventList groups with a
//     tracked selected subset, produced by partitioning an EventList by
//     type-run or by explicit index spans; flattens back into an EventList.
//
// Retiming semantics used across the package:
//
//   - Split (speed p > 1): each interval inside a run of same-kind events is
//     subdivided into p evenly spaced pieces; run boundaries stay fixed.
//   - Merge (speed 1/k): every k-th event of a run is kept, phase-shifted by
//     an offset; isolated events and run boundaries are preserved.
//   - Speed 0 clears the list; any other ratio is rejected.
//
// Groups share event and group references with the views derived from them.
// Mutating a group through the main sequence is observable through the
// selected view and vice versa.
package timeline
