package combinator

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	e := New[int](WithIgnore(Pattern[int](`[ \n]`)))
	p := e.OneOrMore(e.Regex(`[a-z]+`), nil)

	tests := []struct {
		name   string
		input  string
		err    error
		line   int
		column int
	}{
		{name: "whole input", input: "ab cd"},
		{name: "no match", input: "12", err: ErrNoMatch, line: 1, column: 1},
		{name: "trailing", input: "ab\ncd 12", err: ErrTrailingInput, line: 2, column: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(p, tt.input, 0)
			if tt.err == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("got error %v, want %v", err, tt.err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("got %T, want *ParseError", err)
			}
			if perr.Line != tt.line || perr.Column != tt.column {
				t.Errorf("got %d:%d, want %d:%d", perr.Line, perr.Column, tt.line, tt.column)
			}
		})
	}
}

func TestParseErrorTruncatesExcerpt(t *testing.T) {
	e := New[int]()
	_, err := Parse(e.Lit("a"), "a"+strings.Repeat("b", 50), 0)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, `near "bbbbbbbbbbbbbbbbbbbb..."`) {
		t.Errorf("unexpected message %q", msg)
	}
	if !strings.HasPrefix(msg, "1:2: unexpected input") {
		t.Errorf("unexpected message %q", msg)
	}
}
