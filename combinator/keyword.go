package combinator

import "unicode/utf8"

// matchKey returns the longest configured keyword starting at pos, or "".
func (e *Engine[A]) matchKey(in *Input, pos int) string {
	if e.trie == nil || pos >= in.Len() {
		return ""
	}
	return e.trie.longest(in.Rest(pos))
}

// Key matches key when it is the longest keyword starting at the current
// position. With "+" and "+++" configured, Key("+") fails on "+++".
func (e *Engine[A]) Key(key string) Parser[A] {
	n := utf8.RuneCountInString(key)
	return func(in *Input, pos int, attr A) (Result[A], bool) {
		if e.matchKey(in, pos) != key {
			return Result[A]{}, false
		}
		return Result[A]{Match: key, Next: pos + n, Attr: attr}, true
	}
}

// NotKey succeeds without consuming input when no keyword starts at the
// current position.
func (e *Engine[A]) NotKey() Parser[A] {
	return func(in *Input, pos int, attr A) (Result[A], bool) {
		if e.matchKey(in, pos) != "" {
			return Result[A]{}, false
		}
		return empty(pos, attr)
	}
}

// EqualsID matches an identifier-like exp only at a token boundary.
//
// The match is accepted at end of input, or unconditionally when the engine
// has neither an ignore pattern nor keywords. Otherwise something must follow
// it: ignored text, in which case the result also consumes that text, or a
// configured keyword. "key" then does not match the start of "keys".
func (e *Engine[A]) EqualsID(exp any) Parser[A] {
	p := lift[A](exp)
	return func(in *Input, pos int, attr A) (Result[A], bool) {
		r, ok := p(in, pos, attr)
		switch {
		case !ok:
			return Result[A]{}, false
		case r.Next >= in.Len():
			return r, true
		case e.ignore == nil && e.trie == nil:
			return r, true
		}
		if next := e.skip(in, r.Next); next > r.Next {
			r.Next = next
			return r, true
		}
		if e.matchKey(in, r.Next) != "" {
			return r, true
		}
		return Result[A]{}, false
	}
}
