// Package commands implements the invoicegen command line.
package commands

import (
	"github.com/spf13/cobra"

	"rishabgems/invoicegen/logging"
)

var logLevel string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "invoicegen",
		Short:         "Invoice amounts, totals and documents from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupWithLevel(logging.LevelFromString(logLevel))
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "debug, info, warn or error")

	root.AddCommand(wordsCmd(), summaryCmd(), renderCmd(), hashPinCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
