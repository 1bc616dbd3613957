package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/parsec/calc"
	"github.com/spf13/cobra"
)

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc <expr>...",
		Short: "Evaluate an arithmetic expression",
		Long: `Evaluate an arithmetic expression with + - * / and parentheses.

Arguments are joined with spaces, so quoting is optional. Flags are not
parsed, so expressions may start with a minus sign.

Examples:
  parsec calc 1 + 2
  parsec calc "-(1.5e1 - 3) / 4"`,
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := calc.Eval(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
			return nil
		},
	}

	return cmd
}
