package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXRendererNamedRegions(t *testing.T) {
	data, _ := BuildInvoiceDocData(sampleInvoice(3), "Rishab Gems")

	out, err := (&XLSXRenderer{}).Render(context.Background(), data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	refs := map[string]string{}
	for _, dn := range f.GetDefinedName() {
		refs[dn.Name] = dn.RefersTo
	}
	for _, name := range []string{"Bill_No", "Client_Address", "Cash_Check", "UPI_Check", "LineItems", "BillingSummary", "Amount_In_Words"} {
		assert.Contains(t, refs, name)
	}

	cell := func(name string) string {
		ref := strings.ReplaceAll(strings.TrimPrefix(refs[name], invoiceSheet+"!"), "$", "")
		v, err := f.GetCellValue(invoiceSheet, ref)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "RG-20250601-101500", cell("Bill_No"))
	assert.Equal(t, "✔", cell("UPI_Check"))
	assert.Equal(t, "", cell("Cash_Check"))
	assert.Equal(t, "Rupees One Hundred Seventy Six Only.", cell("Amount_In_Words"))

	rows, err := f.GetRows(invoiceSheet)
	require.NoError(t, err)
	var found bool
	for _, row := range rows {
		if len(row) == 5 && row[0] == "1" {
			found = true
			assert.Equal(t, []string{"1", "Diamond Ring", "1.25 carats", "45000.00", "56,250.00"}, row)
		}
	}
	assert.True(t, found, "first line item row not written")
	assert.Equal(t, "Rishab Gems", rows[0][0])
}

func TestDefinedName(t *testing.T) {
	assert.Equal(t, "Amount_In_Words", DefinedName("Amount In Words"))
	assert.Equal(t, "LineItems", DefinedName("LineItems"))
}

func TestSheetWriterKeepsFirstCoordinateError(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", invoiceSheet))

	w := &sheetWriter{f: f}
	w.style(&excelize.Style{Font: &excelize.Font{Bold: true}}, 0, 0, 1, 1)
	require.Error(t, w.err)

	first := w.err
	w.set(1, 1, "ignored")
	assert.Equal(t, first, w.err)

	w = &sheetWriter{f: f}
	w.style(&excelize.Style{Font: &excelize.Font{Bold: true}}, 1, 1, 0, 1)
	assert.Error(t, w.err)
}
