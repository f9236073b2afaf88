package l3periodic

import (
	"sort"

	"github.com/banshee-data/asteroid.report/internal/sky/l2shapes"
)

// DefaultMinOccurrences is the number of sightings a run needs before the
// end of the observation window.
const DefaultMinOccurrences = 4

// Detector finds periodic runs within shapes.
type Detector struct {
	// Rotation compares consecutive sightings when CheckRotations is set.
	Rotation       l2shapes.RotationComparator
	CheckRotations bool
	// MinOccurrences values below 2 fall back to DefaultMinOccurrences.
	MinOccurrences int
}

// NewDetector returns a detector with production defaults: no rotation
// checking and four required occurrences.
func NewDetector() *Detector {
	return &Detector{
		Rotation:       l2shapes.NoRotation{},
		MinOccurrences: DefaultMinOccurrences,
	}
}

func (d *Detector) minOccurrences() int64 {
	if d.MinOccurrences < 2 {
		return DefaultMinOccurrences
	}
	return int64(d.MinOccurrences)
}

func (d *Detector) rotation() l2shapes.RotationComparator {
	if d.Rotation == nil {
		return l2shapes.NoRotation{}
	}
	return d.Rotation
}

// admissible applies the cheap guards on a candidate interval: the object
// must not have appeared before the recording started (first <= interval)
// and there must be room for MinOccurrences sightings up to end.
func (d *Detector) admissible(first, interval, end int64) bool {
	if interval <= 0 {
		return false
	}
	if first > interval {
		return false
	}
	return first+(d.minOccurrences()-1)*interval <= end
}

// FindRuns runs an independent pass over every shape and returns all runs
// ordered by first timestamp. Ties keep shape order.
func (d *Detector) FindRuns(shapes []*l2shapes.Shape, end int64) []Run {
	var runs []Run
	for idx, s := range shapes {
		found := d.NewPass(s).Find(end)
		for i := range found {
			found[i].ShapeIndex = idx
		}
		runs = append(runs, found...)
	}
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].First() < runs[j].First()
	})
	return runs
}

// FindShapeRuns returns the runs of a single shape in discovery order.
func (d *Detector) FindShapeRuns(s *l2shapes.Shape, end int64) []Run {
	return d.NewPass(s).Find(end)
}

// Pass tracks which timestamps of one shape are still unclaimed. A
// timestamp claimed by a run can neither start nor extend another run.
type Pass struct {
	d         *Detector
	samples   []l2shapes.Sample
	available map[int64]l2shapes.Sample
}

// NewPass prepares a pass over s with every timestamp available. Samples
// are expected in non-decreasing timestamp order; they are not re-sorted.
func (d *Detector) NewPass(s *l2shapes.Shape) *Pass {
	samples := s.Samples()
	available := make(map[int64]l2shapes.Sample, len(samples))
	for _, smp := range samples {
		available[smp.Timestamp] = smp
	}
	return &Pass{d: d, samples: samples, available: available}
}

// Available returns the unclaimed timestamps in ascending order.
func (p *Pass) Available() []int64 {
	out := make([]int64, 0, len(p.available))
	for ts := range p.available {
		out = append(out, ts)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Find claims every run still discoverable from the available timestamps
// and returns them in discovery order. Runs carry ShapeIndex -1.
func (p *Pass) Find(end int64) []Run {
	var runs []Run
	for i, first := range p.samples {
		if _, ok := p.available[first.Timestamp]; !ok {
			continue
		}
		// j == i would probe a zero interval, which admissible always rejects.
		for j := i + 1; j < len(p.samples); j++ {
			second := p.samples[j]
			interval := second.Timestamp - first.Timestamp
			if !p.d.admissible(first.Timestamp, interval, end) {
				continue
			}
			if !p.walk(first, second, interval, end) {
				continue
			}
			runs = append(runs, p.claim(first.Timestamp, interval, end))
			break
		}
	}
	return runs
}

// walk checks that a sighting exists at every step from first+interval up
// to end and, when enabled, that each step rotates by the same angle as
// the first pair.
func (p *Pass) walk(first, second l2shapes.Sample, interval, end int64) bool {
	rc := p.d.rotation()
	var want float64
	if p.d.CheckRotations {
		want = rc.Angle(first.Image, second.Image)
	}

	last := first
	for ts := first.Timestamp + interval; ts <= end; ts += interval {
		next, ok := p.available[ts]
		if !ok {
			return false
		}
		if p.d.CheckRotations && rc.Angle(last.Image, next.Image) != want {
			return false
		}
		last = next
	}
	return true
}

// claim regenerates the full progression from start to end and removes it
// from the available set.
func (p *Pass) claim(start, interval, end int64) Run {
	run := Run{ShapeIndex: -1, Interval: interval}
	for ts := start; ts <= end; ts += interval {
		run.Timestamps = append(run.Timestamps, ts)
		delete(p.available, ts)
	}
	return run
}
