package models

import "time"

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentNEFT   PaymentMethod = "NEFT / IMPS"
	PaymentUPI    PaymentMethod = "UPI"
	PaymentCheque PaymentMethod = "Cheque"
)

// PaymentMethods lists the methods in the order the template prints them.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentNEFT, PaymentUPI, PaymentCheque}

func (p PaymentMethod) Valid() bool {
	for _, m := range PaymentMethods {
		if p == m {
			return true
		}
	}
	return false
}

type BillInfo struct {
	BillNo        string    `json:"bill_no"`
	BillDate      time.Time `json:"bill_date"`
	DueDate       time.Time `json:"due_date"`
	BillerName    string    `json:"biller_name"`
	ClientBillTo  string    `json:"client_bill_to"`
	ClientEmail   string    `json:"client_email"`
	ClientPhone   string    `json:"client_phone"`
	ClientAddress string    `json:"client_address"`
}

// InvoiceRequest is what the form layer submits.
type InvoiceRequest struct {
	Bill          BillInfo        `json:"bill"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Rows          []LineItemInput `json:"rows"`
	AmountInWords string          `json:"amount_in_words,omitempty"` // user override
}

// Invoice is a fully validated invoice ready to be written into a template.
type Invoice struct {
	Bill          BillInfo       `json:"bill"`
	PaymentMethod PaymentMethod  `json:"payment_method"`
	Items         []LineItem     `json:"items"`
	Summary       BillingSummary `json:"summary"`
	AmountInWords string         `json:"amount_in_words"`
}
