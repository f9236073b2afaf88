package l1frames

import (
	"fmt"
	"io"
)

// MaxGridCells bounds rows*cols for a single parsed grid.
const MaxGridCells = 1 << 24

// Frame is one timestamped grid snapshot.
type Frame struct {
	Timestamp int64
	Image     *Grid
}

// Recording is a parsed input stream: an observation window and the
// frames captured within it, in input order.
type Recording struct {
	Start  int64
	End    int64
	Frames []Frame
}

// ReadGrid reads "rows cols" followed by rows*cols row-major cell values.
// field prefixes the names used in any ParseError.
func ReadGrid(r *Reader, field string) (*Grid, error) {
	rows, err := r.Int(field + ".rows")
	if err != nil {
		return nil, err
	}
	cols, err := r.Int(field + ".cols")
	if err != nil {
		return nil, err
	}
	if rows <= 0 || cols <= 0 {
		return nil, &ParseError{
			Offset: r.Offset() - 1,
			Field:  field + ".dims",
			Token:  fmt.Sprintf("%dx%d", rows, cols),
			Err:    fmt.Errorf("dimensions must be positive"),
		}
	}

	if rows > MaxGridCells || cols > MaxGridCells || rows*cols > MaxGridCells {
		return nil, &ParseError{
			Offset: r.Offset() - 1,
			Field:  field + ".dims",
			Token:  fmt.Sprintf("%dx%d", rows, cols),
			Err:    fmt.Errorf("grid exceeds %d cells", MaxGridCells),
		}
	}

	n := int(rows * cols)
	cells := make([]float64, n)
	for i := range cells {
		v, err := r.Float(fmt.Sprintf("%s.cell[%d]", field, i))
		if err != nil {
			return nil, err
		}
		cells[i] = v
	}
	return NewGrid(int(rows), int(cols), cells)
}

// ReadRecording parses "start end count" followed by count frames, each
// encoded as "timestamp rows cols cells...". Trailing tokens are ignored.
func ReadRecording(r *Reader) (*Recording, error) {
	start, err := r.Int("start")
	if err != nil {
		return nil, err
	}
	end, err := r.Int("end")
	if err != nil {
		return nil, err
	}
	count, err := r.Int("count")
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, &ParseError{Offset: r.Offset() - 1, Field: "count", Token: fmt.Sprint(count), Err: fmt.Errorf("frame count must be non-negative")}
	}

	rec := &Recording{Start: start, End: end, Frames: make([]Frame, 0, min(count, 1024))}
	for i := int64(0); i < count; i++ {
		field := fmt.Sprintf("frame[%d]", i)
		ts, err := r.Int(field + ".timestamp")
		if err != nil {
			return nil, err
		}
		img, err := ReadGrid(r, field)
		if err != nil {
			return nil, err
		}
		rec.Frames = append(rec.Frames, Frame{Timestamp: ts, Image: img})
	}
	return rec, nil
}

// ParseRecording is a convenience wrapper around ReadRecording.
func ParseRecording(in io.Reader) (*Recording, error) {
	rec, err := ReadRecording(NewReader(in))
	if err != nil {
		return nil, fmt.Errorf("failed to parse recording: %w", err)
	}
	return rec, nil
}
