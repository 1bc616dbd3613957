// Package config loads grammar configuration files.
//
// A configuration names an EBNF grammar, its start production, the pattern
// of insignificant text, the keyword list and, optionally, test cases:
//
//	grammar: expr.ebnf
//	start: Expr
//	ignore: '\s+'
//	keywords: ["+", "-", "(", ")"]
//	tests:
//	  - name: sum
//	    input: "1 + 2"
//	  - name: dangling operator
//	    input: "1 +"
//	    fail: true
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/parsec/combinator"
	"github.com/dhamidi/parsec/ebnf"
)

// Config describes a grammar and how to match with it.
type Config struct {
	Grammar  string   `yaml:"grammar"`
	Start    string   `yaml:"start"`
	Ignore   string   `yaml:"ignore,omitempty"`
	Keywords []string `yaml:"keywords,omitempty"`
	Tests    []Case   `yaml:"tests,omitempty"`

	// Dir is the directory relative paths are resolved against: the
	// directory of the configuration file when loaded with Load.
	Dir string `yaml:"-"`
}

// Case is a single input to check against the grammar.
type Case struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	// Match is the text the start production must match. When empty the
	// whole input must be consumed.
	Match string `yaml:"match,omitempty"`
	// Fail expects the input to be rejected.
	Fail bool `yaml:"fail,omitempty"`
}

// Load reads, validates and returns the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes and validates a configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every problem with the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.Grammar == "" {
		errs = append(errs, errors.New("grammar is required"))
	}
	if c.Start == "" {
		errs = append(errs, errors.New("start is required"))
	}
	if c.Ignore != "" {
		if _, err := regexp.Compile(c.Ignore); err != nil {
			errs = append(errs, fmt.Errorf("ignore: %w", err))
		}
	}
	for i, k := range c.Keywords {
		if k == "" {
			errs = append(errs, fmt.Errorf("keywords[%d]: empty keyword", i))
		}
	}
	for i, tc := range c.Tests {
		if tc.Fail && tc.Match != "" {
			errs = append(errs, fmt.Errorf("tests[%d] %s: match and fail are exclusive", i, tc.Name))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// GrammarPath returns the grammar file resolved against Dir.
func (c *Config) GrammarPath() string {
	if filepath.IsAbs(c.Grammar) || c.Dir == "" {
		return c.Grammar
	}
	return filepath.Join(c.Dir, c.Grammar)
}

// Options returns the compile options described by the configuration.
func (c *Config) Options() []ebnf.Option {
	var opts []ebnf.Option
	if c.Ignore != "" {
		opts = append(opts, ebnf.WithIgnore(c.Ignore))
	}
	if len(c.Keywords) > 0 {
		opts = append(opts, ebnf.WithKeywords(c.Keywords...))
	}
	return opts
}

// Compile loads the grammar file and compiles its start production.
func (c *Config) Compile() (combinator.Parser[any], error) {
	g, err := ebnf.Load(c.GrammarPath())
	if err != nil {
		return nil, err
	}
	return ebnf.Compile[any](g, c.Start, c.Options()...)
}
