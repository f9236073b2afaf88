package pipeline

import (
	"fmt"
	"io"

	"github.com/banshee-data/asteroid.report/internal/sky/l1frames"
)

// Level selects which analysis pass produces the output.
type Level int

const (
	LevelDetect   Level = 1
	LevelCluster  Level = 2
	LevelPeriodic Level = 3
)

// String returns the pass name used on the command line and in reports.
func (l Level) String() string {
	switch l {
	case LevelDetect:
		return "detect"
	case LevelCluster:
		return "cluster"
	case LevelPeriodic:
		return "periodic"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Valid reports whether l names a known pass.
func (l Level) Valid() bool {
	return l >= LevelDetect && l <= LevelPeriodic
}

// ParseLevel accepts either a level number ("1".."3") or a pass name.
func ParseLevel(s string) (Level, error) {
	for l := LevelDetect; l <= LevelPeriodic; l++ {
		if s == l.String() || s == fmt.Sprint(int(l)) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q (want 1-3 or detect|cluster|periodic)", s)
}

// Format runs the pass for level over rec and renders its text output.
func (a *Analyzer) Format(level Level, rec *l1frames.Recording) (string, error) {
	switch level {
	case LevelDetect:
		return FormatDetections(a.Detect(rec)), nil
	case LevelCluster:
		return FormatShapes(a.Cluster(rec).Shapes()), nil
	case LevelPeriodic:
		return FormatRuns(a.Periodic(rec)), nil
	default:
		return "", fmt.Errorf("unsupported level %d", int(level))
	}
}

// RunLevel parses a recording from in and returns the text output of the
// requested pass.
func (a *Analyzer) RunLevel(level Level, in io.Reader) (string, error) {
	if !level.Valid() {
		return "", fmt.Errorf("unsupported level %d", int(level))
	}
	rec, err := l1frames.ParseRecording(in)
	if err != nil {
		return "", err
	}
	return a.Format(level, rec)
}
