package l2shapes

import "github.com/banshee-data/asteroid.report/internal/sky/l1frames"

// RotationComparator estimates the rotation angle between two images of
// the same shape.
type RotationComparator interface {
	Angle(a, b *l1frames.Grid) float64
}

// NoRotation reports every pair of images as unrotated.
type NoRotation struct{}

// Angle always returns 0.
func (NoRotation) Angle(a, b *l1frames.Grid) float64 { return 0 }
