package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"rishabgems/invoicegen/models"
	"rishabgems/invoicegen/services"
	"rishabgems/invoicegen/utils"
)

func renderCmd() *cobra.Command {
	var (
		in, out, format string
		opts            services.Options
		timeout         time.Duration
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fill the invoice template from a JSON request file",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(in)
			if err != nil {
				return err
			}
			var req models.InvoiceRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return fmt.Errorf("decode %s: %w", in, err)
			}

			svc := services.NewInvoiceService(opts, nil,
				&utils.PDFRenderer{Timeout: timeout}, &utils.XLSXRenderer{})
			doc, err := svc.Generate(cmd.Context(), req, format)
			if err != nil {
				return err
			}

			if out == "" {
				out = doc.Filename
			} else if info, err := os.Stat(out); err == nil && info.IsDir() {
				out = filepath.Join(out, doc.Filename)
			}
			if err := os.WriteFile(out, doc.Data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (net payable ₹ %s)\n",
				out, utils.FormatAmount(doc.Invoice.Summary.NetPayable))
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "invoice request JSON")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file or directory (default: generated name)")
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "pdf or xlsx")
	cmd.Flags().StringVar(&opts.CompanyName, "company", "Rishab Gems", "company name printed on the invoice")
	cmd.Flags().StringVar(&opts.BillPrefix, "bill-prefix", "RG", "prefix for generated bill numbers")
	cmd.Flags().StringVar(&opts.BillerName, "biller", "Mr. Manish Dugar", "default biller name")
	cmd.Flags().IntVar(&opts.DueDays, "due-days", 7, "days from bill date to due date")
	cmd.Flags().DurationVar(&timeout, "chrome-timeout", 30*time.Second, "PDF print timeout")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
