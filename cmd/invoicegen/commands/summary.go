package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"rishabgems/invoicegen/utils"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <amount>...",
		Short: "Subtotal, rounding and net payable for line amounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			amounts := make([]decimal.Decimal, len(args))
			for i, a := range args {
				d, err := utils.ParseNumber(a)
				if err != nil {
					return fmt.Errorf("amount %d: %w", i+1, err)
				}
				amounts[i] = d
			}

			s, err := utils.Summarize(amounts)
			if err != nil {
				return err
			}
			words, err := utils.RupeesInWords(s.NetPayable)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Subtotal:    %s\n", utils.FormatAmount(s.Subtotal))
			fmt.Fprintf(out, "Rounding:    %s\n", utils.FormatAmount(s.Rounding))
			fmt.Fprintf(out, "Net Payable: ₹ %s\n", utils.FormatAmount(s.NetPayable))
			fmt.Fprintln(out, words)
			return nil
		},
	}
}
