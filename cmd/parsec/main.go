package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "parsec",
		Short: "Grammar tools built on parser combinators",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeat for debug output)")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newTestCmd())
	rootCmd.AddCommand(newCalcCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "parsec:", err)
		os.Exit(1)
	}
}
