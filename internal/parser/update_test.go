package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seikyu/internal/domain"
	"seikyu/internal/parser"
)

func editableRecord() domain.InvoiceRecord {
	return domain.InvoiceRecord{
		RegistrationNumber: "T1234567890123",
		Date:               "2026-08-15",
		Items: []domain.LineItem{
			{Description: "コーヒー豆", TaxRate: 8, Amount: 1000},
			{Description: "カップ", TaxRate: 10, Amount: 500},
		},
		Summary:     domain.Summary{Subtotal10: 500, Tax10: 50, Subtotal8: 1000, Tax8: 80},
		TotalAmount: 1630,
	}
}

func TestUpdateField_TextLeaves(t *testing.T) {
	rec := editableRecord()

	out, err := parser.UpdateField(rec, "registration_number", "T9876543210987")
	require.NoError(t, err)
	assert.Equal(t, "T9876543210987", out.RegistrationNumber)

	out, err = parser.UpdateField(rec, "date", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", out.Date)
}

func TestUpdateField_TextLeafRejectsNonString(t *testing.T) {
	rec := editableRecord()

	_, err := parser.UpdateField(rec, "date", 20260901)
	assert.True(t, errors.Is(err, domain.ErrInvalidField))

	_, err = parser.UpdateField(rec, "registration_number", nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidField))
}

func TestUpdateField_NumericLeavesSanitize(t *testing.T) {
	rec := editableRecord()

	out, err := parser.UpdateField(rec, "total_amount", "2,000")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, out.TotalAmount)

	out, err = parser.UpdateField(rec, "summary.tax_10", "not a number")
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.Summary.Tax10)
}

func TestUpdateField_SummaryPaths(t *testing.T) {
	rec := editableRecord()

	paths := map[string]func(domain.InvoiceRecord) float64{
		"summary.subtotal_10": func(r domain.InvoiceRecord) float64 { return r.Summary.Subtotal10 },
		"summary.tax_10":      func(r domain.InvoiceRecord) float64 { return r.Summary.Tax10 },
		"summary.subtotal_8":  func(r domain.InvoiceRecord) float64 { return r.Summary.Subtotal8 },
		"summary.tax_8":       func(r domain.InvoiceRecord) float64 { return r.Summary.Tax8 },
	}
	for path, read := range paths {
		t.Run(path, func(t *testing.T) {
			out, err := parser.UpdateField(rec, path, 777.0)
			require.NoError(t, err)
			assert.Equal(t, 777.0, read(out))
		})
	}
}

func TestUpdateField_ItemPaths(t *testing.T) {
	rec := editableRecord()

	out, err := parser.UpdateField(rec, "items[1].amount", "1,500")
	require.NoError(t, err)
	assert.Equal(t, 1500.0, out.Items[1].Amount)

	out, err = parser.UpdateField(rec, "items[0].description", "豆")
	require.NoError(t, err)
	assert.Equal(t, "豆", out.Items[0].Description)

	out, err = parser.UpdateField(rec, "items[0].tax_rate", 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, out.Items[0].TaxRate)
}

func TestUpdateField_DoesNotAliasInput(t *testing.T) {
	rec := editableRecord()

	out, err := parser.UpdateField(rec, "items[0].amount", 9999)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, rec.Items[0].Amount)
	assert.Equal(t, 9999.0, out.Items[0].Amount)
}

func TestUpdateField_InvalidPaths(t *testing.T) {
	rec := editableRecord()

	for _, path := range []string{
		"summary",
		"summary.unknown",
		"items[0].unknown",
		"items[2].amount",
		"items[-1].amount",
		"items[x].amount",
		"items[0]amount",
		"nonsense",
	} {
		t.Run(path, func(t *testing.T) {
			_, err := parser.UpdateField(rec, path, 1)
			assert.True(t, errors.Is(err, domain.ErrInvalidField), "path %q should be rejected", path)
		})
	}
}
