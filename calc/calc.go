// Package calc evaluates arithmetic expressions with a combinator grammar.
//
//	expr   = term { ("+" | "-") term }
//	term   = factor { ("*" | "/") factor }
//	factor = number | "(" expr ")" | "-" factor | "+" factor
//
// Operators are left-associative and whitespace may appear between tokens.
package calc

import (
	"fmt"

	"github.com/dhamidi/parsec/combinator"
)

// Keywords are the operator tokens of the grammar.
var Keywords = []string{"+", "-", "*", "/", "(", ")"}

// Grammar matches the longest expression at the start of its input, with
// its value as attribute. It is safe for concurrent use.
var Grammar = newGrammar()

func newGrammar() combinator.Parser[float64] {
	e := combinator.New[float64](
		combinator.WithIgnore(combinator.Pattern[float64](`\s+`)),
		combinator.WithKeywords(Keywords...),
	)

	// binary applies op to the attribute inherited from the left operand and
	// the value of the right one.
	binary := func(key string, operand combinator.Parser[float64], op func(l, r float64) float64) combinator.Parser[float64] {
		return e.Action(e.Concat(e.Key(key), operand), func(_ string, r, l float64) float64 {
			return op(l, r)
		})
	}
	replace := func(_ string, syn, _ float64) float64 { return syn }

	expr := e.Letrec(
		func(refs ...combinator.Parser[float64]) combinator.Parser[float64] {
			term := refs[1]
			return e.Concat(term, e.ZeroOrMore(e.Choice(
				binary("+", term, func(l, r float64) float64 { return l + r }),
				binary("-", term, func(l, r float64) float64 { return l - r }),
			), replace))
		},
		func(refs ...combinator.Parser[float64]) combinator.Parser[float64] {
			factor := refs[2]
			return e.Concat(factor, e.ZeroOrMore(e.Choice(
				binary("*", factor, func(l, r float64) float64 { return l * r }),
				binary("/", factor, func(l, r float64) float64 { return l / r }),
			), replace))
		},
		func(refs ...combinator.Parser[float64]) combinator.Parser[float64] {
			expr, factor := refs[0], refs[2]
			return e.Choice(
				e.Real(),
				e.Concat(e.Key("("), expr, e.Key(")")),
				e.Action(e.Concat(e.Key("-"), factor), func(_ string, syn, _ float64) float64 { return -syn }),
				e.Concat(e.Key("+"), factor),
			)
		},
	)

	return e.Concat(e.Regex(`\s*`), expr)
}

// Eval evaluates an expression such as "1 + 2 * (3 - 4)".
func Eval(text string) (float64, error) {
	r, err := combinator.Parse(Grammar, text, 0)
	if err != nil {
		return 0, fmt.Errorf("eval %q: %w", text, err)
	}
	return r.Attr, nil
}
