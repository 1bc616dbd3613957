package main

import (
	"fmt"
	"io"

	"github.com/dhamidi/parsec/config"
	"github.com/spf13/cobra"
)

func newTestCmd() *cobra.Command {
	var failFast bool

	cmd := &cobra.Command{
		Use:   "test <config.yaml>",
		Short: "Run the test cases of a grammar configuration",
		Long: `Run the test cases listed in a grammar configuration file.

This command:
  - Loads and validates the configuration
  - Compiles the grammar from its start production
  - Matches every test input and reports PASS or FAIL

A case without "match" must consume its whole input. A case with "match"
must match exactly that prefix. A case with "fail: true" must be rejected.

Examples:
  parsec test parsec.yaml              # Run all cases
  parsec test parsec.yaml --fail-fast  # Stop at the first failure`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(cmd.OutOrStdout(), args[0], failFast)
		},
	}

	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop after the first failing case")

	return cmd
}

func runTest(w io.Writer, path string, failFast bool) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	p, err := cfg.Compile()
	if err != nil {
		return fmt.Errorf("compile %s: %w", cfg.GrammarPath(), err)
	}

	failed := 0
	results := cfg.Run(p)
	for _, res := range results {
		if res.Passed {
			fmt.Fprintf(w, "PASS %s\n", res.Case.Name)
			continue
		}
		failed++
		fmt.Fprintf(w, "FAIL %s: %s\n", res.Case.Name, res.Reason)
		if failFast {
			break
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(results))
	}
	fmt.Fprintf(w, "ok %d cases\n", len(results))
	return nil
}
