package l1frames

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF is returned when the token stream ends before a
	// required field has been read.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrNotInteger is returned when an integer field holds a fractional value.
	ErrNotInteger = errors.New("value is not an integer")
)

// ParseError describes a malformed or truncated input stream.
type ParseError struct {
	Offset int    // zero-based token index
	Field  string // what was being read, e.g. "frame[3].rows"
	Token  string // offending token; empty on EOF
	Err    error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parse %s at token %d: %v", e.Field, e.Offset, e.Err)
	}
	return fmt.Sprintf("parse %s at token %d (%q): %v", e.Field, e.Offset, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
