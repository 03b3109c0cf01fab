package utils

import (
	"context"
	"strconv"
	"time"

	"rishabgems/invoicegen/models"
)

const (
	// MaxLineItems is the number of data rows in the template's LineItems table.
	MaxLineItems = 10
	// MaxAddressLen is the room the template leaves for the client address.
	MaxAddressLen = 65

	dateLayout = "02-01-2006"
)

// DocumentRenderer writes invoice data into a document template.
type DocumentRenderer interface {
	Render(ctx context.Context, data models.InvoiceDocData) ([]byte, error)
	ContentType() string
	Extension() string
}

var paymentBoxNames = map[models.PaymentMethod]string{
	models.PaymentCash:   "Cash Check",
	models.PaymentNEFT:   "NEFT Check",
	models.PaymentUPI:    "UPI Check",
	models.PaymentCheque: "Cheque Check",
}

// BuildInvoiceDocData formats an invoice for the template. Only the first
// MaxLineItems rows fit in the table; the second return value is the
// number of rows left out. The summary still covers every row.
func BuildInvoiceDocData(inv models.Invoice, companyName string) (models.InvoiceDocData, int) {
	b := inv.Bill
	data := models.InvoiceDocData{
		CompanyName: companyName,
		Fields: []models.Field{
			{Name: "Bill No", Title: "Bill No: ", Value: b.BillNo},
			{Name: "Bill Date", Title: "Bill Date: ", Value: formatDate(b.BillDate)},
			{Name: "Due Date", Title: "Due Date: ", Value: formatDate(b.DueDate)},
			{Name: "Biller Name", Title: "Biller Name: ", Value: b.BillerName},
			{Name: "Client Bill To", Title: "Bill To: ", Value: b.ClientBillTo},
			{Name: "Client Address", Title: "Address: ", Value: Truncate(b.ClientAddress, MaxAddressLen)},
			{Name: "Client Phone Number", Title: "Phone: ", Value: b.ClientPhone},
			{Name: "Client Email", Title: "Email ID: ", Value: b.ClientEmail},
		},
		Subtotal:      FormatAmount(inv.Summary.Subtotal),
		Rounding:      FormatAmount(inv.Summary.Rounding),
		NetPayable:    "₹ " + FormatAmount(inv.Summary.NetPayable),
		AmountInWords: inv.AmountInWords,
	}

	for _, m := range models.PaymentMethods {
		data.Payments = append(data.Payments, models.PaymentBox{
			Name:    paymentBoxNames[m],
			Label:   string(m),
			Checked: m == inv.PaymentMethod,
		})
	}

	data.Items = make([]models.ItemRow, MaxLineItems)
	for i, it := range inv.Items {
		if i == MaxLineItems {
			break
		}
		data.Items[i] = models.ItemRow{
			No:          strconv.Itoa(it.No),
			Description: it.Description,
			Weight:      it.Weight.StringFixed(2) + " " + it.WeightUnit,
			Rate:        it.Rate.StringFixed(2),
			Amount:      FormatAmount(it.Amount),
		}
	}

	return data, max(0, len(inv.Items)-MaxLineItems)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
