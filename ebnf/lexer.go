package ebnf

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dhamidi/parsec/combinator"
	xebnf "golang.org/x/exp/ebnf"
)

// ErrNoTokens is returned by NewLexer for a grammar without lexical
// productions.
var ErrNoTokens = errors.New("no token productions")

// Position is a location in lexed input. Offset and Column count characters.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token kinds that are not production names.
const (
	KindKeyword = "KEYWORD"
	KindError   = "ERROR"
	KindEOF     = "EOF"
)

// Token is a lexeme with its kind and position.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

// Lexer splits input into tokens using the lexical productions of a grammar.
//
// The token productions are the lexical productions no other lexical
// production refers to: with number = digit { digit }, numbers are tokens and
// digits are not. At each position the longest match wins. A keyword wins a
// tie with a production; between productions the first name in sorted order
// wins. A character nothing matches becomes an ERROR token.
type Lexer struct {
	ignore  combinator.Parser[any]
	keyword combinator.Parser[any]
	kinds   []string
	parsers []combinator.Parser[any]
}

// NewLexer compiles the token productions of g. WithIgnore sets the text
// skipped between tokens; WithKeywords adds KEYWORD tokens.
func NewLexer(g Grammar, opts ...Option) (*Lexer, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	kinds := tokenProductions(g)
	if len(kinds) == 0 {
		return nil, fmt.Errorf("lexer: %w", ErrNoTokens)
	}

	parsers, err := CompileAll[any](g, kinds[0], opts...)
	if err != nil {
		return nil, fmt.Errorf("lexer: %w", err)
	}

	l := &Lexer{kinds: kinds}
	for _, kind := range kinds {
		l.parsers = append(l.parsers, parsers[kind])
	}
	if o.ignore != "" {
		l.ignore = combinator.Pattern[any](o.ignore)
	}
	if len(o.keywords) > 0 {
		e := combinator.New[any](combinator.WithKeywords(o.keywords...))
		keys := make([]any, len(o.keywords))
		for i, k := range o.keywords {
			keys[i] = e.Key(k)
		}
		l.keyword = e.Choice(keys...)
	}
	return l, nil
}

// Kinds returns the names of the token productions in tie-breaking order.
func (l *Lexer) Kinds() []string {
	return slices.Clone(l.kinds)
}

// Tokenize splits text into tokens. The last token has kind EOF.
func (l *Lexer) Tokenize(filename, text string) []Token {
	in := combinator.NewInput(text)
	position := func(pos int) Position {
		line, col := in.LineCol(pos)
		return Position{Filename: filename, Offset: pos, Line: line, Column: col}
	}

	var tokens []Token
	pos := 0
	for {
		pos = l.skip(in, pos)
		if pos >= in.Len() {
			return append(tokens, Token{Kind: KindEOF, Position: position(pos)})
		}

		kind, next := l.longest(in, pos)
		if next == pos {
			kind, next = KindError, pos+1
		}
		tokens = append(tokens, Token{Kind: kind, Literal: in.Slice(pos, next), Position: position(pos)})
		pos = next
	}
}

func (l *Lexer) skip(in *combinator.Input, pos int) int {
	if l.ignore == nil {
		return pos
	}
	if r, ok := l.ignore(in, pos, nil); ok {
		return r.Next
	}
	return pos
}

// longest returns the kind and end of the longest non-empty token at pos,
// or pos itself when nothing matches.
func (l *Lexer) longest(in *combinator.Input, pos int) (string, int) {
	kind, next := "", pos
	if l.keyword != nil {
		if r, ok := l.keyword(in, pos, nil); ok {
			kind, next = KindKeyword, r.Next
		}
	}
	for i, p := range l.parsers {
		if r, ok := p(in, pos, nil); ok && r.Next > next {
			kind, next = l.kinds[i], r.Next
		}
	}
	return kind, next
}

// tokenProductions returns the sorted names of lexical productions that are
// not referenced from another lexical production.
func tokenProductions(g Grammar) []string {
	used := make(map[string]bool)
	for name, prod := range g {
		if isLexical(name) {
			refs(prod.Expr, used)
		}
	}

	var kinds []string
	for name, prod := range g {
		if isLexical(name) && prod.Expr != nil && !used[name] {
			kinds = append(kinds, name)
		}
	}
	slices.Sort(kinds)
	return kinds
}

func refs(expr xebnf.Expression, names map[string]bool) {
	switch e := expr.(type) {
	case xebnf.Sequence:
		for _, item := range e {
			refs(item, names)
		}
	case xebnf.Alternative:
		for _, alt := range e {
			refs(alt, names)
		}
	case *xebnf.Repetition:
		refs(e.Body, names)
	case *xebnf.Option:
		refs(e.Body, names)
	case *xebnf.Group:
		refs(e.Body, names)
	case *xebnf.Name:
		names[e.String] = true
	}
}
