package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"seikyu/internal/domain"
)

// BOM is the UTF-8 byte-order mark, written first so Excel decodes the
// Japanese headers correctly.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row. Column order is fixed and part of the
// export contract.
var columns = []string{
	"登録番号",
	"請求日",
	"10%対象額",
	"10%消費税",
	"8%対象額",
	"8%消費税",
	"合計金額",
	"登録日時",
}

// Writer wraps csv.Writer for exporting invoice headers as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w. Callers wanting Excel
// compatibility should write BOM to w before the header row.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the fixed header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoices converts invoice headers to CSV rows and writes them.
func (w *Writer) WriteInvoices(invoices []domain.Invoice) error {
	for i := range invoices {
		if err := w.csv.Write(invoiceToRow(&invoices[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func invoiceToRow(inv *domain.Invoice) []string {
	return []string{
		inv.RegistrationNumber,
		inv.InvoiceDate,
		formatMoney(inv.Subtotal10),
		formatMoney(inv.Tax10),
		formatMoney(inv.Subtotal8),
		formatMoney(inv.Tax8),
		formatMoney(inv.TotalAmount),
		inv.CreatedAt.Format(time.RFC3339),
	}
}

// formatMoney renders integral yen without a decimal part and anything
// fractional with full precision.
func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildFilename returns the filename for the Content-Disposition header.
// Format: invoices_{YYYY-MM-DD}.csv
func BuildFilename() string {
	return fmt.Sprintf("invoices_%s.csv", time.Now().Format("2006-01-02"))
}
