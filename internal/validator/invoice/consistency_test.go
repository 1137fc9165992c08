package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seikyu/internal/domain"
	"seikyu/internal/validator/invoice"
)

func TestCheck_ConsistentRecordPasses(t *testing.T) {
	rec := domain.InvoiceRecord{
		Summary:     domain.Summary{Subtotal10: 1000, Tax10: 100, Subtotal8: 0, Tax8: 0},
		TotalAmount: 1100,
	}

	result := invoice.Check(rec)

	assert.True(t, result.Tax10)
	assert.True(t, result.Tax8)
	assert.True(t, result.Total)
}

func TestCheckTax10_FloorsBeforeComparing(t *testing.T) {
	// floor(999 * 0.10) = 99, so a stated tax of 100 fails and 99 passes.
	assert.False(t, invoice.CheckTax10(domain.Summary{Subtotal10: 999, Tax10: 100}))
	assert.True(t, invoice.CheckTax10(domain.Summary{Subtotal10: 999, Tax10: 99}))
}

func TestCheckTax8_FloorsBeforeComparing(t *testing.T) {
	// floor(1010 * 0.08) = floor(80.8) = 80.
	assert.True(t, invoice.CheckTax8(domain.Summary{Subtotal8: 1010, Tax8: 80}))
	assert.False(t, invoice.CheckTax8(domain.Summary{Subtotal8: 1010, Tax8: 81}))
}

func TestCheckTotal_ExactEquality(t *testing.T) {
	s := domain.Summary{Subtotal10: 500, Tax10: 50, Subtotal8: 1000, Tax8: 80}

	assert.True(t, invoice.CheckTotal(s, 1630))
	assert.False(t, invoice.CheckTotal(s, 1631))
	assert.False(t, invoice.CheckTotal(s, 1629.99))
}

func TestCheck_ZeroRecordPasses(t *testing.T) {
	// An all-zero summary is arithmetically consistent: 0 tax on a 0 base.
	result := invoice.Check(domain.InvoiceRecord{})

	assert.True(t, result.Tax10)
	assert.True(t, result.Tax8)
	assert.True(t, result.Total)
}

func TestCheck_FailuresAreIndependent(t *testing.T) {
	rec := domain.InvoiceRecord{
		Summary:     domain.Summary{Subtotal10: 1000, Tax10: 99, Subtotal8: 500, Tax8: 40},
		TotalAmount: 1639,
	}

	result := invoice.Check(rec)

	assert.False(t, result.Tax10)
	assert.True(t, result.Tax8)
	assert.True(t, result.Total)
}

func TestCheck_Deterministic(t *testing.T) {
	rec := domain.InvoiceRecord{
		Summary:     domain.Summary{Subtotal10: 999, Tax10: 99, Subtotal8: 1010, Tax8: 80},
		TotalAmount: 2188,
	}

	first := invoice.Check(rec)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, invoice.Check(rec))
	}
}
