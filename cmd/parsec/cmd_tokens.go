package main

import (
	"encoding/json"
	"fmt"

	"github.com/dhamidi/parsec/ebnf"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var ignore string
	var keywords []string
	var inputFile string
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "tokens <grammar.ebnf> [<input>]",
		Short: "Split input into tokens using the lexical productions of a grammar",
		Long: `Split input into tokens using the lexical productions of a grammar.

Lexical productions are those whose names do not start with an upper-case
letter. Productions referenced by other lexical productions are helpers and
do not produce tokens of their own.

Examples:
  parsec tokens expr.ebnf "x1 + 42" --ignore '\s+' --keywords +,-
  parsec tokens expr.ebnf --file input.txt -o json`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := ebnf.Load(args[0])
			if err != nil {
				return err
			}

			var opts []ebnf.Option
			if ignore != "" {
				opts = append(opts, ebnf.WithIgnore(ignore))
			}
			if len(keywords) > 0 {
				opts = append(opts, ebnf.WithKeywords(keywords...))
			}
			lexer, err := ebnf.NewLexer(grammar, opts...)
			if err != nil {
				return err
			}

			input, err := readInput(cmd, args[1:], inputFile)
			if err != nil {
				return err
			}
			filename := inputFile
			if filename == "" {
				filename = "<input>"
			}

			tokens := lexer.Tokenize(filename, input)
			switch outputFormat {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(tokens); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "text":
				for _, tok := range tokens {
					fmt.Fprintln(cmd.OutOrStdout(), tok)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ignore, "ignore", "", "regular expression for text skipped between tokens")
	cmd.Flags().StringSliceVar(&keywords, "keywords", nil, "keyword and operator tokens")
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "read input from file")
	cmd.Flags().StringVarP(&outputFormat, "format", "o", "text", "output format (text, json)")

	return cmd
}
