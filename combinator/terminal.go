package combinator

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"
)

const realPattern = `[+-]?(?:[0-9]+(?:\.[0-9]+)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`

// Regex returns a parser matching the regular expression pattern anchored at
// the current position. It never searches ahead. Flags apply as in package
// regexp, e.g. "(?i)[a-z]". A malformed pattern panics.
//
// The pattern sees only the text from the current position on: ^ and \A
// always match there, and \b and \B treat it as the start of the text. Use
// Lookahead on a preceding step, or EqualsID, for boundary checks.
func (e *Engine[A]) Regex(pattern string) Parser[A] {
	return Pattern[A](pattern)
}

// Pattern is Regex without an engine, for building ignore patterns before
// the engine exists:
//
//	e := combinator.New[int](combinator.WithIgnore(combinator.Pattern[int](`\s+`)))
func Pattern[A any](pattern string) Parser[A] {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		panic(fmt.Sprintf("combinator: compile pattern %q: %v", pattern, err))
	}
	return func(in *Input, pos int, attr A) (Result[A], bool) {
		if pos > in.Len() {
			return Result[A]{}, false
		}
		rest := in.Rest(pos)
		loc := re.FindStringIndex(rest)
		if loc == nil {
			return Result[A]{}, false
		}
		m := rest[:loc[1]]
		return Result[A]{Match: m, Next: pos + utf8.RuneCountInString(m), Attr: attr}, true
	}
}

// ParseReal converts text accepted by Real to a float64. Values too large
// for a float64 become signed infinity and values too small become zero.
func ParseReal(text string) float64 {
	// ParseFloat already saturates on range errors.
	v, _ := strconv.ParseFloat(text, 64)
	return v
}

// Real matches a decimal number with optional sign, fraction and exponent.
// When a float64 can be stored in A (A is float64 or an interface type) the
// value becomes the synthesized attribute; otherwise the attribute passes
// through unchanged. Use RealWith to fold the value into other types.
func (e *Engine[A]) Real() Parser[A] {
	return e.RealWith(func(v float64, inh A) A {
		if a, ok := any(v).(A); ok {
			return a
		}
		return inh
	})
}

// RealWith matches like Real and sets the attribute to set(value, inherited).
func (e *Engine[A]) RealWith(set func(v float64, inh A) A) Parser[A] {
	return e.Action(e.Regex(realPattern), func(match string, _, inh A) A {
		return set(ParseReal(match), inh)
	})
}

// Br matches one line break: "\r\n", "\r" or "\n".
func (e *Engine[A]) Br() Parser[A] {
	return e.Regex(`\r\n|\r|\n`)
}

// End succeeds without consuming anything when pos is at the end of input.
func (e *Engine[A]) End() Parser[A] {
	return func(in *Input, pos int, attr A) (Result[A], bool) {
		if pos < in.Len() {
			return Result[A]{}, false
		}
		return empty(pos, attr)
	}
}
