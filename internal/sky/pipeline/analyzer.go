package pipeline

import (
	"fmt"

	"github.com/banshee-data/asteroid.report/internal/config"
	"github.com/banshee-data/asteroid.report/internal/monitoring"
	"github.com/banshee-data/asteroid.report/internal/sky/l1frames"
	"github.com/banshee-data/asteroid.report/internal/sky/l2shapes"
	"github.com/banshee-data/asteroid.report/internal/sky/l3periodic"
	"github.com/banshee-data/asteroid.report/internal/timeutil"
)

// Analyzer runs the analysis passes over parsed recordings. It holds only
// configuration; every pass builds its own state, so one Analyzer can be
// reused across recordings.
type Analyzer struct {
	cfg      *config.AnalysisConfig
	rotation l2shapes.RotationComparator
	clock    timeutil.Clock
}

// NewAnalyzer validates cfg and returns an Analyzer. A nil cfg uses the
// defaults.
func NewAnalyzer(cfg *config.AnalysisConfig) (*Analyzer, error) {
	if cfg == nil {
		cfg = config.DefaultAnalysisConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis config: %w", err)
	}
	return &Analyzer{
		cfg:      cfg,
		rotation: l2shapes.NoRotation{},
		clock:    timeutil.RealClock{},
	}, nil
}

// WithRotation swaps the rotation comparator used when rotation checks
// are enabled.
func (a *Analyzer) WithRotation(rc l2shapes.RotationComparator) *Analyzer {
	a.rotation = rc
	return a
}

// WithClock sets the clock used to stamp reports.
func (a *Analyzer) WithClock(c timeutil.Clock) *Analyzer {
	a.clock = c
	return a
}

// Config returns the analyzer's configuration.
func (a *Analyzer) Config() *config.AnalysisConfig { return a.cfg }

// Mapper resolves the configured value mapper.
func (a *Analyzer) Mapper() l1frames.ValueMapper {
	if a.cfg.GetValueMapper() == config.MapperIdentity {
		return l1frames.Identity
	}
	return l1frames.Binarize
}

// Matcher returns the shape match predicate for the configured mapper and
// tolerance.
func (a *Analyzer) Matcher() l2shapes.MatchFunc {
	if tol := a.cfg.GetMatchTolerance(); tol > 0 {
		return l2shapes.ToleranceMatcher(a.Mapper(), tol)
	}
	return l2shapes.EqualMatcher(a.Mapper())
}

// Detector builds a periodicity detector from the configuration.
func (a *Analyzer) Detector() *l3periodic.Detector {
	return &l3periodic.Detector{
		Rotation:       a.rotation,
		CheckRotations: a.cfg.GetCheckRotations(),
		MinOccurrences: a.cfg.GetMinOccurrences(),
	}
}

// DetectObjects returns, in input order, the timestamps of frames that
// contain at least one nonzero cell.
func DetectObjects(rec *l1frames.Recording) []int64 {
	var out []int64
	for _, f := range rec.Frames {
		if f.Image.HasNonzero() {
			out = append(out, f.Timestamp)
		}
	}
	return out
}

// Detect runs the detection pass.
func (a *Analyzer) Detect(rec *l1frames.Recording) []int64 {
	out := DetectObjects(rec)
	monitoring.Debugf("detect: %d of %d frames hold an object", len(out), len(rec.Frames))
	return out
}

// Cluster crops every frame holding an object and groups the crops into
// shapes.
func (a *Analyzer) Cluster(rec *l1frames.Recording) *l2shapes.Registry {
	reg := l2shapes.NewRegistry()
	reg.CollectFrames(rec.Frames, a.Matcher())
	monitoring.Debugf("cluster: %d frames grouped into %d shapes (mapper=%s)",
		len(rec.Frames), reg.Len(), a.cfg.GetValueMapper())
	return reg
}

// Periodic clusters rec and returns every periodic run ending by rec.End,
// ordered by first timestamp.
func (a *Analyzer) Periodic(rec *l1frames.Recording) []l3periodic.Run {
	return a.PeriodicShapes(a.Cluster(rec), rec.End)
}

// PeriodicShapes runs periodicity discovery over an existing registry.
func (a *Analyzer) PeriodicShapes(reg *l2shapes.Registry, end int64) []l3periodic.Run {
	runs := a.Detector().FindRuns(reg.Shapes(), end)
	monitoring.Debugf("periodic: %d runs across %d shapes (end=%d)", len(runs), reg.Len(), end)
	return runs
}
