package combinator

import (
	"fmt"
	"unicode/utf8"
)

// Result is a successful match.
type Result[A any] struct {
	Match string // text consumed, including ignored text between steps
	Next  int    // character position after the match
	Attr  A      // synthesized attribute
}

// Parser matches in at pos with the inherited attribute attr.
//
// A parser reports failure by returning ok == false; the Result is then the
// zero value and must not be used. Success never depends on the attribute:
// zero, empty and nil attributes are ordinary values.
type Parser[A any] func(in *Input, pos int, attr A) (r Result[A], ok bool)

// Match runs p on text from the first character.
func (p Parser[A]) Match(text string, attr A) (Result[A], bool) {
	return p(NewInput(text), 0, attr)
}

// MatchAt runs p on text from the character position pos.
func (p Parser[A]) MatchAt(text string, pos int, attr A) (Result[A], bool) {
	return p(NewInput(text), pos, attr)
}

// Action is a semantic action or repetition accumulator. It receives the
// matched text, the attribute synthesized by the sub-match and the attribute
// inherited by (or accumulated so far in) the enclosing combinator.
type Action[A any] func(match string, syn, inh A) A

// Lit returns a parser that matches s exactly and passes the attribute through.
func Lit[A any](s string) Parser[A] {
	n := utf8.RuneCountInString(s)
	return func(in *Input, pos int, attr A) (Result[A], bool) {
		if pos+n > in.Len() || !in.HasPrefixAt(pos, s) {
			return Result[A]{}, false
		}
		return Result[A]{Match: s, Next: pos + n, Attr: attr}, true
	}
}

// lift converts anything accepted in place of a parser into a Parser.
// Strings become literal terminals. Other values are grammar bugs.
func lift[A any](exp any) Parser[A] {
	switch e := exp.(type) {
	case Parser[A]:
		if e == nil {
			panic("combinator: nil parser")
		}
		return e
	case func(*Input, int, A) (Result[A], bool):
		if e == nil {
			panic("combinator: nil parser")
		}
		return e
	case string:
		return Lit[A](e)
	default:
		panic(fmt.Sprintf("combinator: cannot use %T as a parser", exp))
	}
}

func liftAll[A any](exps []any) []Parser[A] {
	ps := make([]Parser[A], len(exps))
	for i, exp := range exps {
		ps[i] = lift[A](exp)
	}
	return ps
}

func empty[A any](pos int, attr A) (Result[A], bool) {
	return Result[A]{Next: pos, Attr: attr}, true
}
