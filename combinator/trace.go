package combinator

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("combinator")

// Trace behaves exactly like exp and logs each attempt under name when
// debug logging is enabled for the "combinator" logger.
func (e *Engine[A]) Trace(name string, exp any) Parser[A] {
	p := lift[A](exp)
	return func(in *Input, pos int, attr A) (Result[A], bool) {
		r, ok := p(in, pos, attr)
		if log.AllowLevel(commonlog.Debug) {
			line, col := in.LineCol(pos)
			if ok {
				log.Debugf("%s: matched %q at %d:%d", name, r.Match, line, col)
			} else {
				log.Debugf("%s: no match at %d:%d", name, line, col)
			}
		}
		return r, ok
	}
}
