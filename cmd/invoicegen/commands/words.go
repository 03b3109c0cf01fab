package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rishabgems/invoicegen/utils"
)

func wordsCmd() *cobra.Command {
	var rupees bool
	cmd := &cobra.Command{
		Use:   "words <amount>",
		Short: "Spell an amount using lakh/crore grouping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := utils.ParseNumber(args[0])
			if err != nil {
				return err
			}
			words, err := utils.AmountToWords(amount)
			if err != nil {
				return err
			}
			if rupees {
				words = "Rupees " + words + " Only."
			}
			fmt.Fprintln(cmd.OutOrStdout(), words)
			return nil
		},
	}
	cmd.Flags().BoolVar(&rupees, "rupees", false, `wrap as "Rupees ... Only."`)
	return cmd
}
