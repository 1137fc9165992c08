// Package invoice holds the arithmetic consistency checks run over a
// normalized invoice record before it is shown to a reviewer.
package invoice

import (
	"math"

	"seikyu/internal/domain"
)

// ConsistencyResult reports each check independently. Callers decide how to
// surface partial failure; a false value is a data-quality signal for the
// reviewer, never an error.
type ConsistencyResult struct {
	Tax10 bool `json:"tax10"`
	Tax8  bool `json:"tax8"`
	Total bool `json:"total"`
}

// Check runs the three consistency checks over a normalized record.
// Tax amounts follow the standard rounding convention for Japanese consumption
// tax: the expected tax is the taxable base times the rate, truncated toward
// zero. The total check is exact equality; amounts are integral yen, so no
// epsilon is applied and fractional drift simply fails the check.
func Check(rec domain.InvoiceRecord) ConsistencyResult {
	return ConsistencyResult{
		Tax10: CheckTax10(rec.Summary),
		Tax8:  CheckTax8(rec.Summary),
		Total: CheckTotal(rec.Summary, rec.TotalAmount),
	}
}

// CheckTax10 verifies floor(subtotal_10 * 0.10) == tax_10.
func CheckTax10(s domain.Summary) bool {
	return math.Floor(s.Subtotal10*0.10) == s.Tax10
}

// CheckTax8 verifies floor(subtotal_8 * 0.08) == tax_8.
func CheckTax8(s domain.Summary) bool {
	return math.Floor(s.Subtotal8*0.08) == s.Tax8
}

// CheckTotal verifies the four summary fields sum exactly to the total.
func CheckTotal(s domain.Summary, total float64) bool {
	return s.Subtotal10+s.Tax10+s.Subtotal8+s.Tax8 == total
}
