package models

// Field is a "Title: value" text region of the invoice template.
type Field struct {
	Name  string
	Title string
	Value string
}

// PaymentBox is one payment method check box.
type PaymentBox struct {
	Name    string
	Label   string
	Checked bool
}

// ItemRow is a line item already formatted for printing. Empty rows pad
// the table up to the template's capacity.
type ItemRow struct {
	No          string
	Description string
	Weight      string
	Rate        string
	Amount      string
}

// InvoiceDocData is the data every renderer writes into the template.
type InvoiceDocData struct {
	CompanyName   string
	Fields        []Field
	Payments      []PaymentBox
	Items         []ItemRow
	Subtotal      string
	Rounding      string
	NetPayable    string
	AmountInWords string
}
