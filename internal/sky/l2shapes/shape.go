package l2shapes

import "github.com/banshee-data/asteroid.report/internal/sky/l1frames"

// Sample is a cropped object image observed at a timestamp.
type Sample struct {
	Timestamp int64
	Image     *l1frames.Grid
}

// Shape is one cluster of samples judged to depict the same object.
// Samples keep insertion order and a shape is never empty.
type Shape struct {
	samples   []Sample
	rotations []*l1frames.Grid
}

// NewShape starts a shape from its first sample.
func NewShape(first Sample) *Shape {
	return &Shape{
		samples:   []Sample{first},
		rotations: []*l1frames.Grid{first.Image},
	}
}

// Matches reports whether img matches any existing member.
func (s *Shape) Matches(img *l1frames.Grid, match MatchFunc) bool {
	for _, member := range s.samples {
		if match(member.Image, img) {
			return true
		}
	}
	return false
}

// SaveMatching appends sample when it matches any member and reports
// whether it did.
func (s *Shape) SaveMatching(sample Sample, match MatchFunc) bool {
	if !s.Matches(sample.Image, match) {
		return false
	}
	s.samples = append(s.samples, sample)
	return true
}

// Samples returns the member samples in insertion order. The slice is
// shared; callers must not modify it.
func (s *Shape) Samples() []Sample { return s.samples }

// Rotations returns the reference orientations of the shape. Only the
// founding image is tracked.
func (s *Shape) Rotations() []*l1frames.Grid { return s.rotations }

// Len returns the number of samples.
func (s *Shape) Len() int { return len(s.samples) }

// Start is the timestamp of the first sample.
func (s *Shape) Start() int64 { return s.samples[0].Timestamp }

// End is the timestamp of the last sample.
func (s *Shape) End() int64 { return s.samples[len(s.samples)-1].Timestamp }

// Span is End minus Start.
func (s *Shape) Span() int64 { return s.End() - s.Start() }
