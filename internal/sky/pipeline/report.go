package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/asteroid.report/internal/sky/l1frames"
	"github.com/banshee-data/asteroid.report/internal/sky/l3periodic"
	"github.com/banshee-data/asteroid.report/internal/version"
)

// Report is the JSON form of one analysis pass.
type Report struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Version     string         `json:"version"`
	Level       string         `json:"level"`
	Start       int64          `json:"start"`
	End         int64          `json:"end"`
	Frames      int            `json:"frames"`
	Detections  []int64        `json:"detections,omitempty"`
	Shapes      []ShapeSummary `json:"shapes,omitempty"`
	Runs        []RunSummary   `json:"runs,omitempty"`
	Intervals   *IntervalStats `json:"intervals,omitempty"`
}

// ShapeSummary describes one clustered shape.
type ShapeSummary struct {
	Index   int   `json:"index"`
	Start   int64 `json:"start"`
	End     int64 `json:"end"`
	Samples int   `json:"samples"`
	Rows    int   `json:"rows"`
	Cols    int   `json:"cols"`
}

// RunSummary describes one periodic run.
type RunSummary struct {
	Shape      int     `json:"shape"`
	First      int64   `json:"first"`
	Last       int64   `json:"last"`
	Length     int     `json:"length"`
	Interval   int64   `json:"interval"`
	Timestamps []int64 `json:"timestamps"`
}

// IntervalStats summarises the intervals of the runs in a report.
type IntervalStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    int64   `json:"min"`
	Max    int64   `json:"max"`
}

// Report runs the pass for level over rec and collects the result.
func (a *Analyzer) Report(level Level, rec *l1frames.Recording) (*Report, error) {
	rep := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: a.clock.Now().UTC(),
		Version:     version.Version,
		Level:       level.String(),
		Start:       rec.Start,
		End:         rec.End,
		Frames:      len(rec.Frames),
	}

	switch level {
	case LevelDetect:
		rep.Detections = a.Detect(rec)
	case LevelCluster:
		for i, s := range a.Cluster(rec).Shapes() {
			rows, cols := s.Samples()[0].Image.Dims()
			rep.Shapes = append(rep.Shapes, ShapeSummary{
				Index:   i,
				Start:   s.Start(),
				End:     s.End(),
				Samples: s.Len(),
				Rows:    rows,
				Cols:    cols,
			})
		}
	case LevelPeriodic:
		runs := a.Periodic(rec)
		for _, r := range runs {
			rep.Runs = append(rep.Runs, RunSummary{
				Shape:      r.ShapeIndex,
				First:      r.First(),
				Last:       r.Last(),
				Length:     r.Len(),
				Interval:   r.Interval,
				Timestamps: r.Timestamps,
			})
		}
		rep.Intervals = intervalStats(runs)
	default:
		return nil, fmt.Errorf("unsupported level %d", int(level))
	}
	return rep, nil
}

// intervalStats returns nil when there are no runs. StdDev is the sample
// standard deviation and is 0 for a single run.
func intervalStats(runs []l3periodic.Run) *IntervalStats {
	if len(runs) == 0 {
		return nil
	}
	xs := make([]float64, len(runs))
	st := &IntervalStats{Count: len(runs), Min: runs[0].Interval, Max: runs[0].Interval}
	for i, r := range runs {
		xs[i] = float64(r.Interval)
		st.Min = min(st.Min, r.Interval)
		st.Max = max(st.Max, r.Interval)
	}
	st.Mean = stat.Mean(xs, nil)
	if len(xs) > 1 {
		st.StdDev = stat.StdDev(xs, nil)
	}
	return st
}
