package combinator

// Concat matches each of exps in turn. Every step starts where the previous
// one ended, after skipping the ignore pattern, and inherits the previous
// step's attribute. The result spans all steps including ignored text and
// carries the last step's attribute.
func (e *Engine[A]) Concat(exps ...any) Parser[A] {
	ps := liftAll[A](exps)
	return func(in *Input, pos int, attr A) (Result[A], bool) {
		next := pos
		for _, p := range ps {
			r, ok := p(in, next, attr)
			if !ok {
				return Result[A]{}, false
			}
			next = e.skip(in, r.Next)
			attr = r.Attr
		}
		return Result[A]{Match: in.Slice(pos, next), Next: next, Attr: attr}, true
	}
}

// Choice tries each of exps at the same position and returns the first
// success. Later alternatives are not tried even if they would match more.
func (e *Engine[A]) Choice(exps ...any) Parser[A] {
	ps := liftAll[A](exps)
	return func(in *Input, pos int, attr A) (Result[A], bool) {
		for _, p := range ps {
			if r, ok := p(in, pos, attr); ok {
				return r, true
			}
		}
		return Result[A]{}, false
	}
}

// Times matches exp at least minCount and at most maxCount times; a negative
// maxCount means no upper bound. After each match the ignore pattern is
// skipped and acc folds the sub-match into the accumulated attribute, which is
// also the attribute inherited by the next attempt. A nil acc keeps the accumulated
// attribute and drops the sub-match's.
//
// An exp that succeeds without consuming input makes an unbounded Times loop
// forever.
func (e *Engine[A]) Times(minCount, maxCount int, exp any, acc Action[A]) Parser[A] {
	p := lift[A](exp)
	if acc == nil {
		acc = keep[A]
	}
	return func(in *Input, pos int, attr A) (Result[A], bool) {
		next := pos
		count := 0
		for ; maxCount < 0 || count < maxCount; count++ {
			r, ok := p(in, next, attr)
			if !ok {
				break
			}
			next = e.skip(in, r.Next)
			attr = acc(r.Match, r.Attr, attr)
		}
		if count < minCount {
			return Result[A]{}, false
		}
		return Result[A]{Match: in.Slice(pos, next), Next: next, Attr: attr}, true
	}
}

// AtLeast matches exp n or more times.
func (e *Engine[A]) AtLeast(n int, exp any, acc Action[A]) Parser[A] {
	return e.Times(n, -1, exp, acc)
}

// AtMost matches exp up to n times.
func (e *Engine[A]) AtMost(n int, exp any, acc Action[A]) Parser[A] {
	return e.Times(0, n, exp, acc)
}

// OneOrMore matches exp one or more times.
func (e *Engine[A]) OneOrMore(exp any, acc Action[A]) Parser[A] {
	return e.Times(1, -1, exp, acc)
}

// ZeroOrMore matches exp any number of times, including none.
func (e *Engine[A]) ZeroOrMore(exp any, acc Action[A]) Parser[A] {
	return e.Times(0, -1, exp, acc)
}

// Opt matches exp once or not at all.
func (e *Engine[A]) Opt(exp any) Parser[A] {
	return e.Times(0, 1, exp, nil)
}

// Delimit matches one or more exp separated by delim, skipping the ignore
// pattern after each. A delimiter that is not followed by exp is left
// unconsumed. acc folds each exp match as in Times; the delimiters'
// attributes are discarded.
func (e *Engine[A]) Delimit(exp, delim any, acc Action[A]) Parser[A] {
	p := lift[A](exp)
	d := lift[A](delim)
	if acc == nil {
		acc = keep[A]
	}
	return func(in *Input, pos int, attr A) (Result[A], bool) {
		next := pos
		end := -1
		for {
			r, ok := p(in, next, attr)
			if !ok {
				break
			}
			end = e.skip(in, r.Next)
			attr = acc(r.Match, r.Attr, attr)

			dr, ok := d(in, end, attr)
			if !ok {
				break
			}
			next = e.skip(in, dr.Next)
		}
		if end < 0 {
			return Result[A]{}, false
		}
		return Result[A]{Match: in.Slice(pos, end), Next: end, Attr: attr}, true
	}
}

func keep[A any](_ string, _, inh A) A {
	return inh
}
