// Package ebnf compiles grammars written in Go's EBNF notation into
// combinator parsers.
//
// Names follow the convention of golang.org/x/exp/ebnf and the Go
// specification: productions whose names do not start with an upper-case
// letter, such as int_lit, are lexical. No ignore pattern is skipped inside
// them and they may only refer to other lexical productions. Productions such
// as Expression skip the ignore pattern after every step. Alternatives are
// ordered: the first one that matches wins, as in a PEG.
package ebnf

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"unicode"
	"unicode/utf8"

	xebnf "golang.org/x/exp/ebnf"
)

// Grammar is a set of EBNF productions keyed by name.
type Grammar = xebnf.Grammar

// Load reads an EBNF grammar from a file.
func Load(filename string) (Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return Parse(filename, f)
}

// Parse reads an EBNF grammar from r. filename is used in error positions.
func Parse(filename string, r io.Reader) (Grammar, error) {
	g, err := xebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// Verify checks that every production is defined and reachable from start.
func Verify(g Grammar, start string) error {
	if err := xebnf.Verify(g, start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}

// Errors flattens the error lists reported by Parse and Verify into
// individual errors, one per problem.
func Errors(err error) []error {
	for e := err; e != nil; {
		v := reflect.ValueOf(e)
		if v.Kind() == reflect.Slice {
			errs := make([]error, 0, v.Len())
			for i := 0; i < v.Len(); i++ {
				if item, ok := v.Index(i).Interface().(error); ok {
					errs = append(errs, item)
				}
			}
			return errs
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	if err == nil {
		return nil
	}
	return []error{err}
}

func isLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(r)
}
