// Package combinator builds recursive-descent parsers out of composable
// values.
//
// # Parsers
//
// A Parser is a function of an Input, a character position and an inherited
// attribute. It either fails or returns a Result holding the consumed text,
// the position after it and a synthesized attribute:
//
//	type Parser[A any] func(in *Input, pos int, attr A) (Result[A], bool)
//
// Positions count characters (runes), never bytes. Parsers do not retain
// state between calls and may be shared freely.
//
// # Engines
//
// Combinators are methods of an Engine, which carries the configuration
// shared by a grammar: the ignore pattern skipped between the steps of
// Concat, Times and Delimit, and the keywords recognised by Key, NotKey and
// EqualsID.
//
//	e := combinator.New[float64](
//	    combinator.WithIgnore(" "),
//	    combinator.WithKeywords("+", "-", "(", ")"),
//	)
//
// Wherever a combinator accepts an expression (type any), it takes a
// Parser[A] or a string, which matches itself literally. Passing anything
// else panics when the combinator is built.
//
// # Attributes
//
// The attribute inherited by a parser flows through every step of a Concat
// left to right; Action and the accumulators of Times and Delimit compute new
// attributes from the matched text, the synthesized attribute and the
// inherited one. Failure is reported separately from the attribute, so a
// zero attribute is an ordinary value.
//
// # Recursion
//
// Letrec ties mutually recursive rules together without forward
// declarations:
//
//	parens := e.Letrec(func(refs ...combinator.Parser[int]) combinator.Parser[int] {
//	    return e.Concat("(", e.Opt(refs[0]), ")")
//	})
//
// Left-recursive rules never terminate; use Times and its variants instead.
// A repetition of a parser that succeeds without consuming input loops
// forever as well.
package combinator
