// Package templates holds the invoice presentation template. Regions of
// the template are tagged with data-name attributes matching the region
// names used by every renderer ("LineItems", "BillingSummary", ...).
package templates

import (
	_ "embed"
	"html/template"
)

//go:embed invoice_template.html
var invoiceHTML string

// Invoice parses the embedded invoice template.
func Invoice() (*template.Template, error) {
	return template.New("invoice").Parse(invoiceHTML)
}
