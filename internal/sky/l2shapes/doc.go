// Package l2shapes owns Layer 2 (Shapes) of the sky data model.
//
// Responsibilities: grouping cropped, timestamped object samples into
// shapes that depict the same recurring object.
// Key types: Sample, Shape, Registry, RotationComparator.
//
// Clustering is greedy and order dependent: a sample joins the first
// shape (in creation order) holding any member it matches. Matching is
// not transitive, so two shapes may describe the same object when an
// intermediate sample arrives late.
//
// Dependency rule: L2 may depend on L1, but never on L3+.
package l2shapes
