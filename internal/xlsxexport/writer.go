// Package xlsxexport renders saved invoices as a two-sheet workbook: one
// sheet of header rows, one of line items keyed by invoice id.
package xlsxexport

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"seikyu/internal/domain"
)

const (
	invoiceSheet = "Invoices"
	itemSheet    = "LineItems"
)

var invoiceColumns = []interface{}{
	"登録番号", "請求日", "10%対象額", "10%消費税", "8%対象額", "8%消費税", "合計金額", "登録日時",
}

var itemColumns = []interface{}{
	"請求書ID", "行番号", "内容", "税率(%)", "金額(円)",
}

// Write renders the workbook to w.
func Write(w io.Writer, invoices []domain.Invoice, items []domain.InvoiceItem) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName(f.GetSheetName(0), invoiceSheet)
	if _, err := f.NewSheet(itemSheet); err != nil {
		return fmt.Errorf("creating item sheet: %w", err)
	}

	if err := f.SetSheetRow(invoiceSheet, "A1", &invoiceColumns); err != nil {
		return fmt.Errorf("writing invoice header: %w", err)
	}
	for i := range invoices {
		inv := &invoices[i]
		row := []interface{}{
			inv.RegistrationNumber,
			inv.InvoiceDate,
			inv.Subtotal10,
			inv.Tax10,
			inv.Subtotal8,
			inv.Tax8,
			inv.TotalAmount,
			inv.CreatedAt.Format(time.RFC3339),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(invoiceSheet, cell, &row); err != nil {
			return fmt.Errorf("writing invoice row %d: %w", i, err)
		}
	}

	if err := f.SetSheetRow(itemSheet, "A1", &itemColumns); err != nil {
		return fmt.Errorf("writing item header: %w", err)
	}
	for i := range items {
		item := &items[i]
		row := []interface{}{
			item.InvoiceID.String(),
			item.Position + 1,
			item.Description,
			item.TaxRate,
			item.Amount,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(itemSheet, cell, &row); err != nil {
			return fmt.Errorf("writing item row %d: %w", i, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// BuildFilename returns the filename for the Content-Disposition header.
func BuildFilename() string {
	return fmt.Sprintf("invoices_%s.xlsx", time.Now().Format("2006-01-02"))
}
