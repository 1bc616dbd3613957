package combinator

import (
	"strings"
	"unicode/utf8"
)

// Input is an immutable text addressed by character position.
//
// Positions count runes, not bytes. The byte offset of every rune is
// computed once so that terminals backed by byte-oriented collaborators
// (strings.HasPrefix, regexp) can translate positions in constant time.
type Input struct {
	text    string
	offsets []int // offsets[i] is the byte offset of rune i; offsets[Len()] == len(text)
}

// NewInput prepares text for matching.
func NewInput(text string) *Input {
	offsets := make([]int, 0, utf8.RuneCountInString(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))
	return &Input{text: text, offsets: offsets}
}

// Text returns the full input text.
func (in *Input) Text() string {
	return in.text
}

// Len returns the number of characters in the input.
func (in *Input) Len() int {
	return len(in.offsets) - 1
}

// ByteOffset translates a character position into a byte offset.
// Positions past the end map to len(Text()).
func (in *Input) ByteOffset(pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos >= len(in.offsets) {
		return len(in.text)
	}
	return in.offsets[pos]
}

// Slice returns the text between two character positions.
func (in *Input) Slice(from, to int) string {
	if to <= from {
		return ""
	}
	return in.text[in.ByteOffset(from):in.ByteOffset(to)]
}

// Rest returns the text from pos to the end of the input.
func (in *Input) Rest(pos int) string {
	return in.text[in.ByteOffset(pos):]
}

// HasPrefixAt reports whether the input at pos begins with s.
func (in *Input) HasPrefixAt(pos int, s string) bool {
	if pos > in.Len() {
		return false
	}
	return strings.HasPrefix(in.Rest(pos), s)
}

// LineCol returns the 1-based line and column of pos.
// "\r\n", "\r" and "\n" each end a line.
func (in *Input) LineCol(pos int) (line, col int) {
	line, col = 1, 1
	prefix := in.text[:in.ByteOffset(pos)]
	for i, r := range prefix {
		switch r {
		case '\r':
			if i+1 < len(prefix) && prefix[i+1] == '\n' {
				continue
			}
			line++
			col = 1
		case '\n':
			line++
			col = 1
		default:
			col++
		}
	}
	return line, col
}
