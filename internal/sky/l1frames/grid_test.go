package l1frames

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRows(t *testing.T, rows [][]float64) *Grid {
	t.Helper()
	g, err := GridFromRows(rows)
	require.NoError(t, err)
	return g
}

func TestNewGrid_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols int
		cells      []float64
		wantErr    bool
	}{
		{"valid", 2, 2, []float64{1, 2, 3, 4}, false},
		{"zero rows", 0, 2, nil, true},
		{"negative cols", 2, -1, nil, true},
		{"short buffer", 2, 2, []float64{1, 2, 3}, true},
		{"long buffer", 1, 2, []float64{1, 2, 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.rows, tt.cols, tt.cells)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewGrid_CopiesInput(t *testing.T) {
	cells := []float64{1, 2, 3, 4}
	g := MustGrid(2, 2, cells)
	cells[0] = 99
	assert.Equal(t, 1.0, g.AtRC(0, 0))
}

func TestGridFromRows_Ragged(t *testing.T) {
	_, err := GridFromRows([][]float64{{1, 2}, {3}})
	assert.Error(t, err)

	_, err = GridFromRows(nil)
	assert.Error(t, err)
}

func TestGrid_IndexConversion(t *testing.T) {
	g := MustGrid(3, 4, make([]float64, 12))
	for idx := 0; idx < 12; idx++ {
		p := g.IndexToPoint(idx)
		assert.Equal(t, idx, g.PointToIndex(p), "round trip for %d", idx)
	}
	assert.Equal(t, Point{Row: 2, Col: 1}, g.IndexToPoint(9))
	assert.Equal(t, 7, g.PointToIndex(Point{Row: 1, Col: 3}))
}

func TestGrid_AtOutOfRangeIsZero(t *testing.T) {
	g := mustRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})

	outside := []Point{
		{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {-5, -5}, {100, 100}, {1, 3}, {2, 2},
	}
	for _, p := range outside {
		assert.Zero(t, g.At(p), "point %v", p)
	}
	assert.Equal(t, 6.0, g.At(Point{Row: 1, Col: 2}))
	assert.Equal(t, 1.0, g.AtRC(0, 0))
}

func TestGrid_HasNonzero(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want bool
	}{
		{"all zero", [][]float64{{0, 0}, {0, 0}}, false},
		{"positive", [][]float64{{0, 0}, {0, 3}}, true},
		{"negative counts", [][]float64{{0, -2}, {0, 0}}, true},
		{"fractional", [][]float64{{0.5}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustRows(t, tt.rows).HasNonzero())
		})
	}
}

func TestGrid_BoundingBox_Empty(t *testing.T) {
	g := mustRows(t, [][]float64{{0, 0, 0}, {0, 0, 0}})
	box, ok := g.BoundingBox()
	assert.False(t, ok)
	assert.Nil(t, box)
}

func TestGrid_BoundingBox_Tight(t *testing.T) {
	g := mustRows(t, [][]float64{
		{0, 0, 0, 0, 0},
		{0, 0, 7, 0, 0},
		{0, 3, 0, 0, 0},
		{0, 0, 0, 2, 0},
		{0, 0, 0, 0, 0},
	})

	box, ok := g.BoundingBox()
	require.True(t, ok)

	rows, cols := box.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)

	want := []float64{
		0, 7, 0,
		3, 0, 0,
		0, 0, 2,
	}
	if diff := cmp.Diff(want, box.Cells()); diff != "" {
		t.Errorf("bounding box cells mismatch (-want +got):\n%s", diff)
	}
}

func TestGrid_BoundingBox_NoZeroBorder(t *testing.T) {
	grids := [][][]float64{
		{{1}},
		{{0, 0}, {0, 4}},
		{{0, 5, 0}, {0, 0, 0}, {0, 0, 6}},
		{{-1, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 0}, {9, 9, 9}, {0, 0, 0}},
	}
	for i, rows := range grids {
		g := mustRows(t, rows)
		box, ok := g.BoundingBox()
		require.True(t, ok, "grid %d", i)

		r, c := box.Dims()
		rowHas := func(row int) bool {
			for col := 0; col < c; col++ {
				if box.AtRC(row, col) != 0 {
					return true
				}
			}
			return false
		}
		colHas := func(col int) bool {
			for row := 0; row < r; row++ {
				if box.AtRC(row, col) != 0 {
					return true
				}
			}
			return false
		}
		assert.True(t, rowHas(0), "grid %d top row", i)
		assert.True(t, rowHas(r-1), "grid %d bottom row", i)
		assert.True(t, colHas(0), "grid %d left col", i)
		assert.True(t, colHas(c-1), "grid %d right col", i)
	}
}

func TestGrid_BoundingBox_DoesNotMutateSource(t *testing.T) {
	g := mustRows(t, [][]float64{{0, 1}, {0, 0}})
	before := g.Cells()
	_, _ = g.BoundingBox()
	assert.Equal(t, before, g.Cells())
}

func TestGrid_Crop(t *testing.T) {
	g := mustRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	t.Run("inside", func(t *testing.T) {
		c := g.Crop(Point{1, 1}, Point{2, 2})
		assert.Equal(t, []float64{5, 6, 8, 9}, c.Cells())
	})

	t.Run("single cell", func(t *testing.T) {
		c := g.Crop(Point{0, 2}, Point{0, 2})
		assert.Equal(t, []float64{3}, c.Cells())
	})

	t.Run("padded", func(t *testing.T) {
		c := g.Crop(Point{-1, 2}, Point{0, 3})
		rows, cols := c.Dims()
		assert.Equal(t, 2, rows)
		assert.Equal(t, 2, cols)
		assert.Equal(t, []float64{0, 0, 3, 0}, c.Cells())
	})

	t.Run("independent of source", func(t *testing.T) {
		c := g.Crop(Point{0, 0}, Point{1, 1})
		c.data.Set(0, 0, 42)
		assert.Equal(t, 1.0, g.AtRC(0, 0))
	})

	t.Run("inverted panics", func(t *testing.T) {
		assert.Panics(t, func() { g.Crop(Point{2, 2}, Point{1, 1}) })
	})
}

func TestGrid_Equals(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 0}, {2, 3}})
	b := mustRows(t, [][]float64{{5, 0}, {1, 1}})
	c := mustRows(t, [][]float64{{1, 0}, {0, 3}})
	wide := mustRows(t, [][]float64{{1, 0, 0}, {2, 3, 0}})

	assert.True(t, a.Equals(b, Binarize, true), "same occupancy")
	assert.False(t, a.Equals(b, Identity, true), "different raw values")
	assert.False(t, a.Equals(c, Binarize, true), "different occupancy")

	assert.False(t, a.Equals(wide, Identity, true), "dimension mismatch short-circuits")
	assert.True(t, a.Equals(wide, Identity, false), "zero overhang matches padding")

	wideSet := mustRows(t, [][]float64{{1, 0, 4}, {2, 3, 0}})
	assert.False(t, a.Equals(wideSet, Identity, false), "nonzero overhang differs from padding")

	assert.True(t, a.Equals(a, nil, true), "nil mapper compares raw values")
}

func TestGrid_EqualsReflexive(t *testing.T) {
	mappers := map[string]ValueMapper{
		"binary":   Binarize,
		"identity": Identity,
		"halve":    func(v float64) float64 { return v / 2 },
	}
	grids := []*Grid{
		mustRows(t, [][]float64{{0}}),
		mustRows(t, [][]float64{{1, -2, 3}}),
		mustRows(t, [][]float64{{0, 1}, {1, 0}, {7, 7}}),
	}
	for name, m := range mappers {
		for i, g := range grids {
			assert.True(t, g.Equals(g, m, true), "%s grid %d", name, i)
		}
	}
}

func TestGrid_String(t *testing.T) {
	g := mustRows(t, [][]float64{{1, 0}, {0, 2.5}})
	assert.Equal(t, "2x2\n1 0\n0 2.5", g.String())
}

func TestBinarize(t *testing.T) {
	assert.Equal(t, 0.0, Binarize(0))
	assert.Equal(t, 1.0, Binarize(17))
	assert.Equal(t, 1.0, Binarize(-3))
}
