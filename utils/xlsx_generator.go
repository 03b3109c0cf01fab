package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"rishabgems/invoicegen/models"
)

const invoiceSheet = "Invoice"

var lineItemHeaders = []string{"No.", "Item Description", "Weight", "Rate (₹)", "Amount (₹)"}

// XLSXRenderer lays the invoice out on a single worksheet. Every template
// region gets a workbook defined name ("Bill_No", "LineItems",
// "BillingSummary", "Amount_In_Words", ...) so it can be found by name.
type XLSXRenderer struct{}

func (r *XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (r *XLSXRenderer) Extension() string { return "xlsx" }

// DefinedName turns a region name into a valid workbook name.
func DefinedName(region string) string {
	return strings.ReplaceAll(region, " ", "_")
}

type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) set(col, row int, value interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellValue(invoiceSheet, cell, value)
}

func (w *sheetWriter) name(region string, fromCol, fromRow, toCol, toRow int) {
	if w.err != nil {
		return
	}
	from, err := excelize.CoordinatesToCellName(fromCol, fromRow, true)
	if err != nil {
		w.err = err
		return
	}
	ref := invoiceSheet + "!" + from
	if fromCol != toCol || fromRow != toRow {
		to, err := excelize.CoordinatesToCellName(toCol, toRow, true)
		if err != nil {
			w.err = err
			return
		}
		ref += ":" + to
	}
	w.err = w.f.SetDefinedName(&excelize.DefinedName{Name: DefinedName(region), RefersTo: ref})
}

func (w *sheetWriter) style(style *excelize.Style, fromCol, fromRow, toCol, toRow int) {
	if w.err != nil {
		return
	}
	id, err := w.f.NewStyle(style)
	if err != nil {
		w.err = err
		return
	}
	from, err := excelize.CoordinatesToCellName(fromCol, fromRow)
	if err != nil {
		w.err = err
		return
	}
	to, err := excelize.CoordinatesToCellName(toCol, toRow)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(invoiceSheet, from, to, id)
}

func (r *XLSXRenderer) Render(_ context.Context, data models.InvoiceDocData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", invoiceSheet); err != nil {
		return nil, err
	}
	w := &sheetWriter{f: f}
	bold := &excelize.Style{Font: &excelize.Font{Bold: true, Family: "Poppins", Size: 12}}
	centered := &excelize.Style{
		Font:      &excelize.Font{Family: "Poppins", Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}

	w.set(1, 1, data.CompanyName)
	w.style(&excelize.Style{Font: &excelize.Font{Bold: true, Family: "Poppins", Size: 16}}, 1, 1, 1, 1)

	row := 3
	for _, fld := range data.Fields {
		w.set(1, row, strings.TrimSuffix(fld.Title, " "))
		w.set(2, row, fld.Value)
		w.name(fld.Name, 2, row, 2, row)
		row++
	}
	w.style(bold, 1, 3, 1, row-1)

	row++
	w.set(1, row, "Payment Method")
	w.style(bold, 1, row, 1, row)
	row++
	for _, p := range data.Payments {
		mark := ""
		if p.Checked {
			mark = "✔"
		}
		w.set(1, row, p.Label)
		w.set(2, row, mark)
		w.name(p.Name, 2, row, 2, row)
		row++
	}

	row++
	itemsTop := row
	for c, h := range lineItemHeaders {
		w.set(c+1, row, h)
	}
	w.style(bold, 1, row, len(lineItemHeaders), row)
	for _, it := range data.Items {
		row++
		for c, v := range []string{it.No, it.Description, it.Weight, it.Rate, it.Amount} {
			w.set(c+1, row, v)
		}
	}
	w.style(centered, 1, itemsTop+1, len(lineItemHeaders), row)
	w.name("LineItems", 1, itemsTop, len(lineItemHeaders), row)

	row += 2
	summaryTop := row
	w.set(4, row, "Billing Summary")
	w.set(4, row+1, "Subtotal")
	w.set(5, row+1, data.Subtotal)
	w.set(4, row+2, "Rounding")
	w.set(5, row+2, data.Rounding)
	w.set(4, row+3, "NET PAYABLE")
	w.set(5, row+3, data.NetPayable)
	w.style(bold, 4, summaryTop, 4, summaryTop+3)
	w.name("BillingSummary", 4, summaryTop, 5, summaryTop+3)

	row = summaryTop + 5
	w.set(1, row, data.AmountInWords)
	w.style(&excelize.Style{Font: &excelize.Font{Italic: true, Family: "Poppins", Size: 11}}, 1, row, 1, row)
	w.name("Amount In Words", 1, row, 1, row)

	if w.err == nil {
		w.err = f.SetColWidth(invoiceSheet, "B", "B", 36)
	}
	if w.err != nil {
		return nil, fmt.Errorf("build invoice sheet: %w", w.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write invoice workbook: %w", err)
	}
	return buf.Bytes(), nil
}
