package config

import (
	"fmt"

	"github.com/dhamidi/parsec/combinator"
)

// Result is the outcome of one test case.
type Result struct {
	Case   Case
	Passed bool
	Got    string // text matched, empty when nothing matched
	Reason string // why the case failed
}

// Run checks every test case against p.
func (c *Config) Run(p combinator.Parser[any]) []Result {
	results := make([]Result, 0, len(c.Tests))
	for _, tc := range c.Tests {
		results = append(results, runCase(p, tc))
	}
	return results
}

func runCase(p combinator.Parser[any], tc Case) Result {
	res := Result{Case: tc}
	r, ok := p.Match(tc.Input, nil)
	if ok {
		res.Got = r.Match
	}

	switch {
	case tc.Fail:
		_, err := combinator.Parse(p, tc.Input, nil)
		res.Passed = err != nil
		if !res.Passed {
			res.Reason = "input was accepted"
		}
	case tc.Match != "":
		res.Passed = ok && r.Match == tc.Match
		if !res.Passed {
			res.Reason = fmt.Sprintf("matched %q, want %q", res.Got, tc.Match)
		}
	default:
		_, err := combinator.Parse(p, tc.Input, nil)
		res.Passed = err == nil
		if err != nil {
			res.Reason = err.Error()
		}
	}
	return res
}
