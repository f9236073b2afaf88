package l1frames

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Point addresses a single cell as (row, column).
type Point struct {
	Row, Col int
}

// Grid is an immutable, row-major 2D buffer of cell values.
// Lookups outside the grid read as background (0). Cropping always
// returns a new Grid; the receiver is never mutated.
type Grid struct {
	data *mat.Dense
}

// NewGrid builds a rows×cols grid from row-major cells. The cell slice is
// copied so later changes by the caller do not leak into the grid.
func NewGrid(rows, cols int, cells []float64) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", rows, cols)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("grid %dx%d needs %d cells, got %d", rows, cols, rows*cols, len(cells))
	}
	buf := make([]float64, len(cells))
	copy(buf, cells)
	return &Grid{data: mat.NewDense(rows, cols, buf)}, nil
}

// MustGrid is like NewGrid but panics on invalid input.
// Intended for fixtures and tests.
func MustGrid(rows, cols int, cells []float64) *Grid {
	g, err := NewGrid(rows, cols, cells)
	if err != nil {
		panic(err)
	}
	return g
}

// GridFromRows builds a grid from a slice of equal-length rows.
func GridFromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid needs at least one row")
	}
	cols := len(rows[0])
	cells := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), cols)
		}
		cells = append(cells, row...)
	}
	return NewGrid(len(rows), cols, cells)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	r, _ := g.data.Dims()
	return r
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	_, c := g.data.Dims()
	return c
}

// Dims returns (rows, cols).
func (g *Grid) Dims() (int, int) {
	return g.data.Dims()
}

// PointToIndex converts a point to its row-major buffer index.
// The point is not bounds-checked.
func (g *Grid) PointToIndex(p Point) int {
	return p.Row*g.Cols() + p.Col
}

// IndexToPoint converts a row-major buffer index to a point.
func (g *Grid) IndexToPoint(idx int) Point {
	cols := g.Cols()
	return Point{Row: idx / cols, Col: idx % cols}
}

func (g *Grid) inBounds(p Point) bool {
	rows, cols := g.data.Dims()
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
}

// At returns the value at p, or 0 for any point outside the grid.
func (g *Grid) At(p Point) float64 {
	if !g.inBounds(p) {
		return 0
	}
	return g.data.At(p.Row, p.Col)
}

// AtRC is At with separate row and column arguments.
func (g *Grid) AtRC(row, col int) float64 {
	return g.At(Point{Row: row, Col: col})
}

// cells returns the row-major backing slice. Grids are always built
// from a contiguous buffer so the stride equals the column count.
func (g *Grid) cells() []float64 {
	return g.data.RawMatrix().Data
}

// Cells returns a copy of the row-major cell values.
func (g *Grid) Cells() []float64 {
	src := g.cells()
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// HasNonzero reports whether any cell holds a nonzero value.
// Negative values count as present.
func (g *Grid) HasNonzero() bool {
	for _, v := range g.cells() {
		if v != 0 {
			return true
		}
	}
	return false
}

// BoundingBox returns the tight crop covering every nonzero cell.
// The second return is false when the grid holds no object.
func (g *Grid) BoundingBox() (*Grid, bool) {
	minRow, minCol := -1, -1
	maxRow, maxCol := -1, -1

	for i, v := range g.cells() {
		if v == 0 {
			continue
		}
		p := g.IndexToPoint(i)
		if minRow < 0 {
			// Row-major scan: the first hit fixes the minimum row.
			minRow, maxRow = p.Row, p.Row
			minCol, maxCol = p.Col, p.Col
			continue
		}
		maxRow = p.Row
		minCol = min(minCol, p.Col)
		maxCol = max(maxCol, p.Col)
	}

	if minRow < 0 {
		return nil, false
	}
	return g.Crop(Point{Row: minRow, Col: minCol}, Point{Row: maxRow, Col: maxCol}), true
}

// Crop extracts the inclusive rectangle [topLeft, bottomRight]. Corners may
// lie outside the grid; missing cells are padded with 0.
func (g *Grid) Crop(topLeft, bottomRight Point) *Grid {
	rows := 1 + bottomRight.Row - topLeft.Row
	cols := 1 + bottomRight.Col - topLeft.Col
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("l1frames: inverted crop %v..%v", topLeft, bottomRight))
	}

	if g.inBounds(topLeft) && g.inBounds(bottomRight) {
		view := g.data.Slice(topLeft.Row, bottomRight.Row+1, topLeft.Col, bottomRight.Col+1)
		return &Grid{data: mat.DenseCopyOf(view)}
	}

	buf := make([]float64, 0, rows*cols)
	for r := topLeft.Row; r <= bottomRight.Row; r++ {
		for c := topLeft.Col; c <= bottomRight.Col; c++ {
			buf = append(buf, g.AtRC(r, c))
		}
	}
	return &Grid{data: mat.NewDense(rows, cols, buf)}
}

// Equals compares two grids cell by cell after passing every value through
// mapper. The scan covers the union of both extents, so when
// requireSameDims is false the larger grid's overhang is compared against
// padding. A nil mapper compares raw values.
func (g *Grid) Equals(other *Grid, mapper ValueMapper, requireSameDims bool) bool {
	if mapper == nil {
		mapper = Identity
	}
	trows, tcols := g.Dims()
	orows, ocols := other.Dims()
	if requireSameDims && (trows != orows || tcols != ocols) {
		return false
	}

	rows := max(trows, orows)
	cols := max(tcols, ocols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if mapper(g.AtRC(r, c)) != mapper(other.AtRC(r, c)) {
				return false
			}
		}
	}
	return true
}

// String renders the grid one row per line, for logs and test failures.
func (g *Grid) String() string {
	rows, cols := g.Dims()
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d", rows, cols)
	for r := 0; r < rows; r++ {
		b.WriteByte('\n')
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g", g.AtRC(r, c))
		}
	}
	return b.String()
}
