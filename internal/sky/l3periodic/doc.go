// Package l3periodic owns Layer 3 (Periodicity) of the sky data model.
//
// Responsibilities: discovering, within each shape, the arithmetic
// timestamp progressions ("runs") consistent with an object that first
// appears no later than one interval into the recording, repeats at a
// fixed interval, and is seen at least MinOccurrences times by the end
// of the observation window.
// Key types: Detector, Pass, Run.
//
// Dependency rule: L3 may depend on L1-L2, but never on pipeline code.
package l3periodic
