package testutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/banshee-data/asteroid.report/internal/sky/l1frames"
)

func TestAssertNoError(t *testing.T) {
	t.Parallel()
	AssertNoError(t, nil)
}

func TestAssertError(t *testing.T) {
	t.Parallel()
	AssertError(t, errors.New("boom"))
}

func TestMustGrid(t *testing.T) {
	g := MustGrid(t, []float64{1, 2}, []float64{3, 4})
	rows, cols := g.Dims()
	if rows != 2 || cols != 2 {
		t.Errorf("Dims() = %dx%d, want 2x2", rows, cols)
	}
}

func TestStream_ParsesBack(t *testing.T) {
	in := Stream(3, 9,
		FrameSpec{Timestamp: 4, Rows: [][]float64{{0, 1.5}}},
		FrameSpec{Timestamp: 6, Rows: [][]float64{{0}, {2}}},
	)

	rec, err := l1frames.ParseRecording(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseRecording failed: %v", err)
	}
	if rec.Start != 3 || rec.End != 9 || len(rec.Frames) != 2 {
		t.Fatalf("unexpected recording header: %+v", rec)
	}
	if got := rec.Frames[0].Image.AtRC(0, 1); got != 1.5 {
		t.Errorf("frame 0 cell = %v, want 1.5", got)
	}
	if rows, cols := rec.Frames[1].Image.Dims(); rows != 2 || cols != 1 {
		t.Errorf("frame 1 dims = %dx%d, want 2x1", rows, cols)
	}
}

func TestLevelFixtures_Parse(t *testing.T) {
	for name, in := range map[string]string{
		"level1": Level1Input(),
		"level2": Level2Input(),
		"level3": Level3Input(),
	} {
		if _, err := l1frames.ParseRecording(strings.NewReader(in)); err != nil {
			t.Errorf("%s fixture does not parse: %v", name, err)
		}
	}
}
