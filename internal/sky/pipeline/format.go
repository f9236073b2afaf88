package pipeline

import (
	"fmt"
	"strings"

	"github.com/banshee-data/asteroid.report/internal/sky/l2shapes"
	"github.com/banshee-data/asteroid.report/internal/sky/l3periodic"
)

// FormatDetections writes one timestamp per line.
func FormatDetections(ts []int64) string {
	var b strings.Builder
	for _, t := range ts {
		fmt.Fprintf(&b, "%d\n", t)
	}
	return b.String()
}

// FormatShapes writes "start end count" per shape, in creation order.
func FormatShapes(shapes []*l2shapes.Shape) string {
	var b strings.Builder
	for _, s := range shapes {
		fmt.Fprintf(&b, "%d %d %d\n", s.Start(), s.End(), s.Len())
	}
	return b.String()
}

// FormatRuns writes "first last length" per run.
func FormatRuns(runs []l3periodic.Run) string {
	var b strings.Builder
	for _, r := range runs {
		fmt.Fprintf(&b, "%d %d %d\n", r.First(), r.Last(), r.Len())
	}
	return b.String()
}
