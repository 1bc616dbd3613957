package combinator

// Lookahead matches exp without consuming input. It succeeds when exp
// succeeds and positive is true, or when exp fails and positive is false.
// The attribute passes through unchanged.
func (e *Engine[A]) Lookahead(exp any, positive bool) Parser[A] {
	p := lift[A](exp)
	return func(in *Input, pos int, attr A) (Result[A], bool) {
		if _, ok := p(in, pos, attr); ok != positive {
			return Result[A]{}, false
		}
		return empty(pos, attr)
	}
}

// LookaheadNot succeeds without consuming input when exp does not match.
func (e *Engine[A]) LookaheadNot(exp any) Parser[A] {
	return e.Lookahead(exp, false)
}

// Attr always succeeds without consuming input and replaces the attribute
// with value.
func (e *Engine[A]) Attr(value A) Parser[A] {
	return func(in *Input, pos int, _ A) (Result[A], bool) {
		return empty(pos, value)
	}
}

// Cond succeeds without consuming input when pred holds for the current
// attribute.
func (e *Engine[A]) Cond(pred func(attr A) bool) Parser[A] {
	return func(in *Input, pos int, attr A) (Result[A], bool) {
		if !pred(attr) {
			return Result[A]{}, false
		}
		return empty(pos, attr)
	}
}

// Action runs exp and replaces the attribute of its match with
// fn(match, synthesized, inherited).
func (e *Engine[A]) Action(exp any, fn Action[A]) Parser[A] {
	p := lift[A](exp)
	return func(in *Input, pos int, attr A) (Result[A], bool) {
		r, ok := p(in, pos, attr)
		if !ok {
			return Result[A]{}, false
		}
		r.Attr = fn(r.Match, r.Attr, attr)
		return r, true
	}
}
