package service

import (
	"github.com/google/uuid"

	"seikyu/internal/domain"
)

// HeaderFromRecord maps a confirmed record onto the header row shape. ID and
// CreatedAt stay zero; the store assigns them on insert.
func HeaderFromRecord(rec domain.InvoiceRecord, sourceKey string) *domain.Invoice {
	return &domain.Invoice{
		RegistrationNumber: rec.RegistrationNumber,
		InvoiceDate:        rec.Date,
		Subtotal10:         rec.Summary.Subtotal10,
		Tax10:              rec.Summary.Tax10,
		Subtotal8:          rec.Summary.Subtotal8,
		Tax8:               rec.Summary.Tax8,
		TotalAmount:        rec.TotalAmount,
		SourceKey:          sourceKey,
	}
}

// ItemsFromRecord builds the item rows for a header whose identity the store
// has already assigned. Only callable after the header insert returned.
func ItemsFromRecord(invoiceID uuid.UUID, items []domain.LineItem) []domain.InvoiceItem {
	rows := make([]domain.InvoiceItem, 0, len(items))
	for i, item := range items {
		rows = append(rows, domain.InvoiceItem{
			ID:          uuid.New(),
			InvoiceID:   invoiceID,
			Position:    i,
			Description: item.Description,
			TaxRate:     item.TaxRate,
			Amount:      item.Amount,
		})
	}
	return rows
}

// RecordFromRows is the reverse projection for display and export. The rows
// are already-trusted data, so no sanitization runs here.
func RecordFromRows(inv *domain.Invoice, items []domain.InvoiceItem) domain.InvoiceRecord {
	rec := domain.InvoiceRecord{
		RegistrationNumber: inv.RegistrationNumber,
		Date:               inv.InvoiceDate,
		Items:              make([]domain.LineItem, 0, len(items)),
		Summary: domain.Summary{
			Subtotal10: inv.Subtotal10,
			Tax10:      inv.Tax10,
			Subtotal8:  inv.Subtotal8,
			Tax8:       inv.Tax8,
		},
		TotalAmount: inv.TotalAmount,
	}
	for _, row := range items {
		rec.Items = append(rec.Items, domain.LineItem{
			Description: row.Description,
			TaxRate:     row.TaxRate,
			Amount:      row.Amount,
		})
	}
	return rec
}
