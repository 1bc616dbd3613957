package ebnf

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/parsec/combinator"
	"github.com/tliron/commonlog"
	xebnf "golang.org/x/exp/ebnf"
)

var log = commonlog.GetLogger("ebnf")

var (
	// ErrUnknownProduction is returned when a grammar refers to a production
	// it does not define.
	ErrUnknownProduction = errors.New("unknown production")
	// ErrNonLexicalReference is returned when a lexical production refers to
	// a non-lexical one.
	ErrNonLexicalReference = errors.New("reference to non-lexical production")
)

// Option configures Compile.
type Option func(*options)

type options struct {
	ignore   string
	keywords []string
}

// WithIgnore sets a regular expression for text skipped between the steps of
// non-lexical productions, typically whitespace and comments.
func WithIgnore(pattern string) Option {
	return func(o *options) {
		o.ignore = pattern
	}
}

// WithKeywords registers operator and reserved tokens. A grammar token that
// is a keyword matches only when it is the longest keyword at the current
// position, and word-like tokens such as "if" must then be followed by
// ignored text or a keyword.
func WithKeywords(keys ...string) Option {
	return func(o *options) {
		o.keywords = append(o.keywords, keys...)
	}
}

// Compile builds a parser for the production start of g.
func Compile[A any](g Grammar, start string, opts ...Option) (combinator.Parser[A], error) {
	parsers, err := CompileAll[A](g, start, opts...)
	if err != nil {
		return nil, err
	}
	return parsers[start], nil
}

// CompileAll builds parsers for every production of g. start must name a
// production; it is only used to order the grammar and check that it exists.
func CompileAll[A any](g Grammar, start string, opts ...Option) (map[string]combinator.Parser[A], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if _, ok := g[start]; !ok {
		return nil, fmt.Errorf("compile grammar: start production %q: %w", start, ErrUnknownProduction)
	}

	c := &compiler[A]{
		index:    make(map[string]int, len(g)),
		keywords: make(map[string]bool, len(o.keywords)),
	}
	for _, k := range o.keywords {
		c.keywords[k] = true
	}

	syntaxOpts := []combinator.Option{combinator.WithKeywords(o.keywords...)}
	if o.ignore != "" {
		if _, err := regexp.Compile(o.ignore); err != nil {
			return nil, fmt.Errorf("compile grammar: ignore pattern: %w", err)
		}
		syntaxOpts = append(syntaxOpts, combinator.WithIgnore(combinator.Pattern[A](o.ignore)))
	}
	c.syntax = combinator.New[A](syntaxOpts...)
	c.lexical = combinator.New[A](combinator.WithKeywords(o.keywords...))

	// The start production takes slot 0; the rest follow in name order so
	// that compilation is deterministic.
	c.names = append(c.names, start)
	rest := make([]string, 0, len(g))
	for name := range g {
		if name != start {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	c.names = append(c.names, rest...)
	for i, name := range c.names {
		c.index[name] = i
	}

	for _, name := range c.names {
		if err := c.check(g[name].Expr, isLexical(name)); err != nil {
			return nil, fmt.Errorf("compile grammar: production %s: %w", name, err)
		}
	}

	rules := make([]combinator.Rule[A], len(c.names))
	for i, name := range c.names {
		name := name
		prod := g[name]
		rules[i] = func(refs ...combinator.Parser[A]) combinator.Parser[A] {
			eng := c.syntax
			if isLexical(name) {
				eng = c.lexical
			}
			return c.syntax.Trace(name, c.expr(eng, prod.Expr, refs))
		}
	}
	refs := c.syntax.LetrecAll(rules...)

	parsers := make(map[string]combinator.Parser[A], len(c.names))
	for i, name := range c.names {
		parsers[name] = refs[i]
	}
	log.Debugf("compiled %d productions, start %s", len(parsers), start)
	return parsers, nil
}

type compiler[A any] struct {
	syntax   *combinator.Engine[A]
	lexical  *combinator.Engine[A]
	keywords map[string]bool
	names    []string
	index    map[string]int
}

// check reports what expr cannot compile to. It runs before any rule is
// built because letrec builds rules lazily, during matching.
func (c *compiler[A]) check(expr xebnf.Expression, lexical bool) error {
	switch e := expr.(type) {
	case nil, *xebnf.Token:
		return nil

	case *xebnf.Range:
		if _, _, err := rangeBounds(e); err != nil {
			return err
		}
		return nil

	case xebnf.Sequence:
		for _, item := range e {
			if err := c.check(item, lexical); err != nil {
				return err
			}
		}
		return nil

	case xebnf.Alternative:
		for _, alt := range e {
			if err := c.check(alt, lexical); err != nil {
				return err
			}
		}
		return nil

	case *xebnf.Repetition:
		return c.check(e.Body, lexical)

	case *xebnf.Option:
		return c.check(e.Body, lexical)

	case *xebnf.Group:
		return c.check(e.Body, lexical)

	case *xebnf.Name:
		if _, ok := c.index[e.String]; !ok {
			return fmt.Errorf("%s: %q: %w", e.Pos(), e.String, ErrUnknownProduction)
		}
		if lexical && !isLexical(e.String) {
			return fmt.Errorf("%s: %q: %w", e.Pos(), e.String, ErrNonLexicalReference)
		}
		return nil

	default:
		return fmt.Errorf("%s: unsupported expression %T", expr.Pos(), expr)
	}
}

func (c *compiler[A]) expr(eng *combinator.Engine[A], expr xebnf.Expression, refs []combinator.Parser[A]) combinator.Parser[A] {
	switch e := expr.(type) {
	case nil:
		return eng.Lit("")

	case *xebnf.Token:
		return c.token(eng, e.String)

	case *xebnf.Range:
		lo, hi, _ := rangeBounds(e)
		return eng.Regex(fmt.Sprintf(`[\x{%x}-\x{%x}]`, lo, hi))

	case xebnf.Sequence:
		return eng.Concat(c.exprs(eng, e, refs)...)

	case xebnf.Alternative:
		return eng.Choice(c.exprs(eng, e, refs)...)

	case *xebnf.Repetition:
		return eng.ZeroOrMore(c.expr(eng, e.Body, refs), nil)

	case *xebnf.Option:
		return eng.Opt(c.expr(eng, e.Body, refs))

	case *xebnf.Group:
		return c.expr(eng, e.Body, refs)

	case *xebnf.Name:
		return refs[c.index[e.String]]

	default:
		// Rejected by check.
		panic(fmt.Sprintf("ebnf: unexpected expression %T", expr))
	}
}

func (c *compiler[A]) exprs(eng *combinator.Engine[A], list []xebnf.Expression, refs []combinator.Parser[A]) []any {
	ps := make([]any, len(list))
	for i, item := range list {
		ps[i] = c.expr(eng, item, refs)
	}
	return ps
}

// token matches a literal. Outside lexical productions keywords go through
// the keyword trie and word-like literals require a token boundary.
func (c *compiler[A]) token(eng *combinator.Engine[A], s string) combinator.Parser[A] {
	if eng == c.lexical || len(c.keywords) == 0 {
		return eng.Lit(s)
	}
	if c.keywords[s] {
		return eng.Key(s)
	}
	if isWord(s) {
		return eng.EqualsID(s)
	}
	return eng.Lit(s)
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func rangeBounds(r *xebnf.Range) (lo, hi rune, err error) {
	lo, n := utf8.DecodeRuneInString(r.Begin.String)
	if n == 0 || n != len(r.Begin.String) {
		return 0, 0, fmt.Errorf("%s: range bound %q is not a single character", r.Pos(), r.Begin.String)
	}
	hi, n = utf8.DecodeRuneInString(r.End.String)
	if n == 0 || n != len(r.End.String) {
		return 0, 0, fmt.Errorf("%s: range bound %q is not a single character", r.End.Pos(), r.End.String)
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("%s: empty range %q … %q", r.Pos(), r.Begin.String, r.End.String)
	}
	return lo, hi, nil
}
