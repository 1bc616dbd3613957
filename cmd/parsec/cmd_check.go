package main

import (
	"fmt"

	"github.com/dhamidi/parsec/ebnf"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse, verify and compile an EBNF grammar file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := ebnf.Load(args[0])
			if err != nil {
				return reportErrors(cmd, args[0], err)
			}

			if startProduction == "" {
				return nil
			}
			if err := ebnf.Verify(grammar, startProduction); err != nil {
				return reportErrors(cmd, args[0], err)
			}
			// Compiling catches what match and tokens would reject.
			if _, err := ebnf.Compile[any](grammar, startProduction); err != nil {
				return reportErrors(cmd, args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production to verify and compile from (if empty, only checks syntax)")

	return cmd
}

// reportErrors prints every grammar error on its own line and returns a
// summary for the exit status.
func reportErrors(cmd *cobra.Command, filename string, err error) error {
	errs := ebnf.Errors(err)
	for _, e := range errs {
		fmt.Fprintln(cmd.ErrOrStderr(), e)
	}
	return fmt.Errorf("%s: %d error(s)", filename, len(errs))
}
