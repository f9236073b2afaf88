// Package l1frames owns Layer 1 (Frames) of the sky data model.
//
// Responsibilities: tokenising the whitespace-separated input stream,
// parsing recordings into timestamped frames, and the immutable Grid
// type with padding-aware lookups, tight bounding-box crops and
// mapper-based equality.
// Key types: Grid, Point, Frame, Recording, Reader, ParseError.
//
// Dependency rule: L1 depends on no other sky layer.
// No file or network I/O is performed here; callers supply an io.Reader.
package l1frames
