package combinator

// Option configures an Engine.
type Option func(*config)

type config struct {
	ignore   any
	keywords []string
}

// WithIgnore sets the pattern skipped after every step of Concat, Times and
// Delimit. exp is a Parser of the engine's attribute type or a string.
func WithIgnore(exp any) Option {
	return func(c *config) {
		c.ignore = exp
	}
}

// WithKeywords registers the reserved tokens recognised by Key, NotKey and
// the boundary test of EqualsID. May be given more than once.
func WithKeywords(keys ...string) Option {
	return func(c *config) {
		c.keywords = append(c.keywords, keys...)
	}
}

// Engine holds the configuration shared by every parser built from it: the
// ignore pattern and the keyword trie. Both are read-only after New returns,
// so an Engine and its parsers may be used from several goroutines.
type Engine[A any] struct {
	ignore Parser[A]
	trie   *trie
}

// New creates an Engine for grammars whose attributes have type A.
func New[A any](opts ...Option) *Engine[A] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	e := &Engine[A]{}
	if c.ignore != nil {
		e.ignore = lift[A](c.ignore)
	}
	if len(c.keywords) > 0 {
		e.trie = newTrie(c.keywords)
	}
	return e
}

// skip applies the ignore pattern at pos and returns the position after it.
// A failing ignore pattern leaves pos unchanged.
func (e *Engine[A]) skip(in *Input, pos int) int {
	if e.ignore == nil {
		return pos
	}
	var zero A
	if r, ok := e.ignore(in, pos, zero); ok {
		return r.Next
	}
	return pos
}

// Lit returns a parser matching s exactly.
func (e *Engine[A]) Lit(s string) Parser[A] {
	return Lit[A](s)
}
