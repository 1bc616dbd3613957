package combinator

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrNoMatch is reported when a parser fails at the start of the input.
	ErrNoMatch = errors.New("no match")
	// ErrTrailingInput is reported when a parser matches a prefix only.
	ErrTrailingInput = errors.New("unexpected input")
)

// excerptLen limits the input quoted in a ParseError.
const excerptLen = 20

// ParseError describes why Parse did not consume its whole input.
type ParseError struct {
	Offset int    // character position where matching stopped
	Line   int    // 1-based
	Column int    // 1-based, in characters
	Near   string // input following Offset, truncated
	Err    error  // ErrNoMatch or ErrTrailingInput
}

func newParseError(in *Input, pos int, err error) *ParseError {
	line, col := in.LineCol(pos)
	near := in.Rest(pos)
	if utf8.RuneCountInString(near) > excerptLen {
		near = in.Slice(pos, pos+excerptLen) + "..."
	}
	return &ParseError{Offset: pos, Line: line, Column: col, Near: near, Err: err}
}

func (e *ParseError) Error() string {
	if e.Near == "" {
		return fmt.Sprintf("%d:%d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%d:%d: %v near %q", e.Line, e.Column, e.Err, e.Near)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse runs p on text and requires it to consume all of it.
// The ignore pattern is not applied before the first step; grammars that
// allow leading whitespace must say so.
func Parse[A any](p Parser[A], text string, attr A) (Result[A], error) {
	in := NewInput(text)
	r, ok := p(in, 0, attr)
	if !ok {
		return Result[A]{}, newParseError(in, 0, ErrNoMatch)
	}
	if r.Next < in.Len() {
		return r, newParseError(in, r.Next, ErrTrailingInput)
	}
	return r, nil
}
