// Package testutil provides shared test utilities and fixtures.
//
// The Level*Input fixtures are small synthetic recordings whose detection,
// clustering and periodicity outputs are known; the matching Level*Output
// constants hold the expected text.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/banshee-data/asteroid.report/internal/sky/l1frames"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// MustGrid builds a grid from rows, failing the test on ragged input.
func MustGrid(t *testing.T, rows ...[]float64) *l1frames.Grid {
	t.Helper()
	g, err := l1frames.GridFromRows(rows)
	if err != nil {
		t.Fatalf("invalid grid: %v", err)
	}
	return g
}

// FrameSpec describes one frame of a synthetic recording.
type FrameSpec struct {
	Timestamp int64
	Rows      [][]float64
}

// Stream encodes a recording in the whitespace-separated input format.
func Stream(start, end int64, frames ...FrameSpec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d %d\n", start, end, len(frames))
	for _, f := range frames {
		cols := 0
		if len(f.Rows) > 0 {
			cols = len(f.Rows[0])
		}
		fmt.Fprintf(&b, "%d\n%d %d\n", f.Timestamp, len(f.Rows), cols)
		for _, row := range f.Rows {
			for i, v := range row {
				if i > 0 {
					b.WriteByte(' ')
				}
				fmt.Fprintf(&b, "%g", v)
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// blank returns an all-zero rows×cols frame body.
func blank(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}
	return out
}

// stamp returns a rows×cols body with pattern placed at (row, col).
func stamp(rows, cols, row, col int, pattern [][]float64) [][]float64 {
	out := blank(rows, cols)
	for r, line := range pattern {
		for c, v := range line {
			out[row+r][col+c] = v
		}
	}
	return out
}

var (
	ell = [][]float64{
		{1, 0},
		{1, 1},
	}
	ellBright = [][]float64{
		{9, 0},
		{4, 7},
	}
	bar  = [][]float64{{2, 2, 2}}
	dot  = [][]float64{{5}}
	plus = [][]float64{
		{0, 3, 0},
		{3, 3, 3},
		{0, 3, 0},
	}
)

// Level1Input has objects in two of four frames.
func Level1Input() string {
	return Stream(0, 5000,
		FrameSpec{Timestamp: 1200, Rows: blank(3, 3)},
		FrameSpec{Timestamp: 3505, Rows: stamp(3, 3, 1, 1, ell)},
		FrameSpec{Timestamp: 4000, Rows: blank(3, 3)},
		FrameSpec{Timestamp: 4352, Rows: stamp(3, 3, 0, 0, bar)},
	)
}

// Level1Output is the detection output for Level1Input.
const Level1Output = "3505\n4352\n"

// Level2Input repeats one shape at two positions and intensities, with a
// different shape and an empty frame in between.
func Level2Input() string {
	return Stream(4000, 8000,
		FrameSpec{Timestamp: 4260, Rows: stamp(4, 4, 0, 0, ell)},
		FrameSpec{Timestamp: 5120, Rows: blank(4, 4)},
		FrameSpec{Timestamp: 6547, Rows: stamp(4, 4, 3, 1, bar)},
		FrameSpec{Timestamp: 7263, Rows: stamp(4, 4, 2, 2, ellBright)},
	)
}

// Level2Output is the clustering output for Level2Input.
const Level2Output = "4260 7263 2\n6547 6547 1\n"

// Level3Input interleaves two periodic shapes and a one-off shape over a
// window ending at 19.
func Level3Input() string {
	return Stream(0, 19,
		FrameSpec{Timestamp: 1, Rows: stamp(5, 5, 0, 0, plus)},
		FrameSpec{Timestamp: 4, Rows: stamp(5, 5, 4, 4, dot)},
		FrameSpec{Timestamp: 7, Rows: stamp(5, 5, 1, 1, plus)},
		FrameSpec{Timestamp: 8, Rows: stamp(5, 5, 2, 0, dot)},
		FrameSpec{Timestamp: 10, Rows: stamp(5, 5, 0, 2, bar)},
		FrameSpec{Timestamp: 12, Rows: stamp(5, 5, 0, 3, dot)},
		FrameSpec{Timestamp: 13, Rows: stamp(5, 5, 2, 2, plus)},
		FrameSpec{Timestamp: 15, Rows: blank(5, 5)},
		FrameSpec{Timestamp: 16, Rows: stamp(5, 5, 1, 4, dot)},
		FrameSpec{Timestamp: 19, Rows: stamp(5, 5, 2, 1, plus)},
	)
}

// Level3Shapes is the clustering output for Level3Input.
const Level3Shapes = "1 19 4\n4 16 4\n10 10 1\n"

// Level3Output is the periodicity output for Level3Input.
const Level3Output = "1 19 4\n4 16 4\n"
