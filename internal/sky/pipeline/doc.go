// Package pipeline wires the sky layers into the three analysis passes:
// object detection, shape clustering and periodicity discovery.
//
// This package is the composition root: it imports from the layer
// packages (l1frames, l2shapes, l3periodic) and config, but none of
// those packages import pipeline. It owns the text output formats and
// the JSON report; it does not own domain logic.
package pipeline
