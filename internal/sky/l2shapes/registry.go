package l2shapes

import "github.com/banshee-data/asteroid.report/internal/sky/l1frames"

// Registry accumulates samples into shapes in creation order.
type Registry struct {
	shapes []*Shape
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Collect attaches sample to the first shape holding a member equal to it
// under mapper, or starts a new shape when none matches.
func (r *Registry) Collect(sample Sample, mapper l1frames.ValueMapper) (*Shape, bool) {
	return r.CollectWith(sample, EqualMatcher(mapper))
}

// CollectWith is Collect with an arbitrary match predicate. It returns the
// shape that received the sample and whether that shape is new.
func (r *Registry) CollectWith(sample Sample, match MatchFunc) (*Shape, bool) {
	for _, s := range r.shapes {
		if s.SaveMatching(sample, match) {
			return s, false
		}
	}
	s := NewShape(sample)
	r.shapes = append(r.shapes, s)
	return s, true
}

// CollectFrames crops every frame to its bounding box and collects the
// result. Frames without an object are skipped.
func (r *Registry) CollectFrames(frames []l1frames.Frame, match MatchFunc) {
	for _, f := range frames {
		img, ok := f.Image.BoundingBox()
		if !ok {
			continue
		}
		r.CollectWith(Sample{Timestamp: f.Timestamp, Image: img}, match)
	}
}

// Shapes returns the shapes in creation order.
func (r *Registry) Shapes() []*Shape { return r.shapes }

// Len returns the number of shapes.
func (r *Registry) Len() int { return len(r.shapes) }
