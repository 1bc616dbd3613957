package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/parsec/combinator"
	"github.com/dhamidi/parsec/config"
	"github.com/spf13/cobra"
)

type matchOutput struct {
	Matched bool   `json:"matched"`
	Match   string `json:"match"`
	Next    int    `json:"next"`
	Length  int    `json:"length"`
	Error   string `json:"error,omitempty"`
}

func newMatchCmd() *cobra.Command {
	var cfg config.Config
	var configFile string
	var inputFile string
	var whole bool
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "match [<grammar.ebnf>] [<input>]",
		Short: "Match input against an EBNF grammar",
		Long: `Compile an EBNF grammar into a combinator parser and match input with it.

The grammar and its options come either from flags or from a configuration
file (--config). Input is the last argument, or the contents of --file, or
standard input when neither is given.

Examples:
  parsec match expr.ebnf "1 + 2" --start expr --ignore '\s+'
  parsec match --config parsec.yaml --file input.txt --whole`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				loaded, err := config.Load(configFile)
				if err != nil {
					return err
				}
				cfg = *loaded
			} else {
				if len(args) == 0 {
					return fmt.Errorf("grammar file or --config is required")
				}
				cfg.Grammar, args = args[0], args[1:]
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			input, err := readInput(cmd, args, inputFile)
			if err != nil {
				return err
			}

			p, err := cfg.Compile()
			if err != nil {
				return err
			}

			out := match(p, input, whole)
			if err := writeMatch(cmd.OutOrStdout(), out, outputFormat); err != nil {
				return err
			}
			if !out.Matched {
				return fmt.Errorf("no match")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "grammar configuration file (YAML)")
	cmd.Flags().StringVar(&cfg.Start, "start", "", "start production")
	cmd.Flags().StringVar(&cfg.Ignore, "ignore", "", "regular expression for text skipped between tokens")
	cmd.Flags().StringSliceVar(&cfg.Keywords, "keywords", nil, "keyword and operator tokens")
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "read input from file")
	cmd.Flags().BoolVar(&whole, "whole", false, "require the whole input to match")
	cmd.Flags().StringVarP(&outputFormat, "format", "o", "text", "output format (text, json)")

	return cmd
}

func readInput(cmd *cobra.Command, args []string, inputFile string) (string, error) {
	switch {
	case len(args) > 1:
		return "", fmt.Errorf("too many arguments")
	case len(args) == 1 && inputFile != "":
		return "", fmt.Errorf("input given both as argument and --file")
	case len(args) == 1:
		return args[0], nil
	case inputFile != "":
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
}

func match(p combinator.Parser[any], input string, whole bool) matchOutput {
	var r combinator.Result[any]
	var err error
	if whole {
		r, err = combinator.Parse(p, input, nil)
	} else {
		var ok bool
		if r, ok = p.Match(input, nil); !ok {
			err = combinator.ErrNoMatch
		}
	}

	out := matchOutput{Matched: err == nil, Match: r.Match, Next: r.Next, Length: r.Next}
	if err != nil {
		out.Error = err.Error()
	}
	return out
}

func writeMatch(w io.Writer, out matchOutput, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case "text":
		if out.Matched {
			fmt.Fprintf(w, "matched %d characters: %q\n", out.Next, out.Match)
		} else {
			fmt.Fprintf(w, "no match: %s\n", out.Error)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}
