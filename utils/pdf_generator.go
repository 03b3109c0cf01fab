package utils

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"

	"rishabgems/invoicegen/models"
	"rishabgems/invoicegen/templates"
)

// PDFRenderer prints the HTML invoice template with headless Chrome.
type PDFRenderer struct {
	Timeout time.Duration
}

func (r *PDFRenderer) ContentType() string { return "application/pdf" }
func (r *PDFRenderer) Extension() string   { return "pdf" }

// BuildInvoiceHTML executes the invoice template.
func BuildInvoiceHTML(data models.InvoiceDocData) ([]byte, error) {
	tmpl, err := templates.Invoice()
	if err != nil {
		return nil, fmt.Errorf("parse invoice template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("fill invoice template: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) Render(ctx context.Context, data models.InvoiceDocData) ([]byte, error) {
	html, err := BuildInvoiceHTML(data)
	if err != nil {
		return nil, err
	}

	tmpHTML := filepath.Join(os.TempDir(), "invoice_"+uuid.NewString()+".html")
	if err := os.WriteFile(tmpHTML, html, 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ctx, cancel = chromedp.NewContext(ctx)
	defer cancel()

	var pdfBuf []byte
	err = chromedp.Run(ctx,
		chromedp.Navigate("file://"+tmpHTML),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print invoice pdf: %w", err)
	}
	return pdfBuf, nil
}
