package domain

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceRecord is the canonical normalized shape of one analyzed invoice image.
// Every numeric field is a finite float64: the normalizer routes all numerics
// through the sanitizer, so nothing downstream ever sees a string amount, NaN,
// or null. The record is mutated field-by-field by the review surface before
// saving; it is never itself a store of record.
type InvoiceRecord struct {
	RegistrationNumber string     `json:"registration_number"`
	Date               string     `json:"date"`
	Items              []LineItem `json:"items"`
	Summary            Summary    `json:"summary"`
	TotalAmount        float64    `json:"total_amount"`
}

// LineItem is a single invoice line. It has no identity of its own; position
// within the owning record is the only ordering.
type LineItem struct {
	Description string  `json:"description"`
	TaxRate     float64 `json:"tax_rate"`
	Amount      float64 `json:"amount"`
}

// Summary holds the taxable-base/tax pairs for the two consumption-tax rate
// buckets (10% standard, 8% reduced).
type Summary struct {
	Subtotal10 float64 `json:"subtotal_10"`
	Tax10      float64 `json:"tax_10"`
	Subtotal8  float64 `json:"subtotal_8"`
	Tax8       float64 `json:"tax_8"`
}

// Invoice is the persisted header row. ID and CreatedAt are assigned by the
// store on insert.
type Invoice struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	RegistrationNumber string    `db:"registration_number" json:"registration_number"`
	InvoiceDate        string    `db:"invoice_date" json:"invoice_date"`
	Subtotal10         float64   `db:"subtotal_10" json:"subtotal_10"`
	Tax10              float64   `db:"tax_10" json:"tax_10"`
	Subtotal8          float64   `db:"subtotal_8" json:"subtotal_8"`
	Tax8               float64   `db:"tax_8" json:"tax_8"`
	TotalAmount        float64   `db:"total_amount" json:"total_amount"`
	SourceKey          string    `db:"source_key" json:"source_key"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// InvoiceItem is the persisted line-item row, foreign-keyed to its header.
type InvoiceItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	InvoiceID   uuid.UUID `db:"invoice_id" json:"invoice_id"`
	Position    int       `db:"position" json:"position"`
	Description string    `db:"description" json:"description"`
	TaxRate     float64   `db:"tax_rate" json:"tax_rate"`
	Amount      float64   `db:"amount" json:"amount"`
}

// AllowedContentTypes maps sniffed content types accepted for analysis.
var AllowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}
