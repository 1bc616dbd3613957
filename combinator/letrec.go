package combinator

import (
	"fmt"
	"sync"
)

// Rule builds one parser of a recursive grammar. refs holds a placeholder
// for every rule passed to the same Letrec call, in the same order. A Rule
// may capture the placeholders but must not invoke them.
type Rule[A any] func(refs ...Parser[A]) Parser[A]

// Letrec defines mutually recursive rules and returns the parser of the
// first one. It panics if no rules are given.
//
// Each rule is built the first time its placeholder is invoked and cached
// from then on, so no rule is built more than once per Letrec call however
// often the grammar is used.
func (e *Engine[A]) Letrec(rules ...Rule[A]) Parser[A] {
	return e.LetrecAll(rules...)[0]
}

// LetrecAll is Letrec returning the placeholders of all rules.
func (e *Engine[A]) LetrecAll(rules ...Rule[A]) []Parser[A] {
	if len(rules) == 0 {
		panic("combinator: letrec needs at least one rule")
	}

	slots := make([]slot[A], len(rules))
	refs := make([]Parser[A], len(rules))
	for i := range rules {
		i := i
		s := &slots[i]
		build := rules[i]
		refs[i] = func(in *Input, pos int, attr A) (Result[A], bool) {
			s.once.Do(func() {
				s.parser = build(refs...)
			})
			if s.parser == nil {
				panic(fmt.Sprintf("combinator: letrec rule %d returned nil parser", i))
			}
			return s.parser(in, pos, attr)
		}
	}
	return refs
}

type slot[A any] struct {
	once   sync.Once
	parser Parser[A]
}
