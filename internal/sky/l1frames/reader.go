package l1frames

import (
	"bufio"
	"io"
	"math"
	"strconv"
)

// Reader yields whitespace-separated numeric tokens from an input stream.
type Reader struct {
	scan   *bufio.Scanner
	offset int
}

// NewReader wraps r in a token reader.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Reader{scan: s}
}

// Offset returns the index of the next token to be read.
func (r *Reader) Offset() int { return r.offset }

// Token returns the next raw token. The boolean is false once the stream
// is exhausted or the underlying reader failed; Err reports the latter.
func (r *Reader) Token() (string, bool) {
	if !r.scan.Scan() {
		return "", false
	}
	r.offset++
	return r.scan.Text(), true
}

// Err returns the first non-EOF error from the underlying reader.
func (r *Reader) Err() error { return r.scan.Err() }

// Float reads the next token as a float64. field names the value in any
// returned ParseError.
func (r *Reader) Float(field string) (float64, error) {
	at := r.offset
	tok, ok := r.Token()
	if !ok {
		err := r.Err()
		if err == nil {
			err = ErrUnexpectedEOF
		}
		return 0, &ParseError{Offset: at, Field: field, Err: err}
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &ParseError{Offset: at, Field: field, Token: tok, Err: err}
	}
	return v, nil
}

// Int reads the next token as an integer. Integral floats such as "12.0"
// or "1e3" are accepted.
func (r *Reader) Int(field string) (int64, error) {
	at := r.offset
	v, err := r.Float(field)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &ParseError{Offset: at, Field: field, Token: strconv.FormatFloat(v, 'g', -1, 64), Err: ErrNotInteger}
	}
	return int64(v), nil
}
