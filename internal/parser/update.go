package parser

import (
	"fmt"
	"strconv"
	"strings"

	"seikyu/internal/domain"
)

// UpdateField returns a copy of rec with the field at a dotted path replaced.
// Supported paths: registration_number, date, total_amount, summary.<field>,
// items[i].<field>. Numeric leaves route the new value through SanitizeNumber
// so edits keep the record invariant; text leaves require a string value.
// The input record is never aliased: the items slice is copied before any
// item-level write.
func UpdateField(rec domain.InvoiceRecord, path string, value any) (domain.InvoiceRecord, error) {
	out := rec
	out.Items = append([]domain.LineItem(nil), rec.Items...)

	switch path {
	case "registration_number":
		s, ok := value.(string)
		if !ok {
			return rec, fmt.Errorf("%w: %s requires a string", domain.ErrInvalidField, path)
		}
		out.RegistrationNumber = s
		return out, nil
	case "date":
		s, ok := value.(string)
		if !ok {
			return rec, fmt.Errorf("%w: %s requires a string", domain.ErrInvalidField, path)
		}
		out.Date = s
		return out, nil
	case "total_amount":
		out.TotalAmount = SanitizeNumber(value)
		return out, nil
	case "summary.subtotal_10":
		out.Summary.Subtotal10 = SanitizeNumber(value)
		return out, nil
	case "summary.tax_10":
		out.Summary.Tax10 = SanitizeNumber(value)
		return out, nil
	case "summary.subtotal_8":
		out.Summary.Subtotal8 = SanitizeNumber(value)
		return out, nil
	case "summary.tax_8":
		out.Summary.Tax8 = SanitizeNumber(value)
		return out, nil
	}

	idx, field, err := parseItemPath(path)
	if err != nil {
		return rec, err
	}
	if idx < 0 || idx >= len(out.Items) {
		return rec, fmt.Errorf("%w: item index %d out of range", domain.ErrInvalidField, idx)
	}
	switch field {
	case "description":
		s, ok := value.(string)
		if !ok {
			return rec, fmt.Errorf("%w: %s requires a string", domain.ErrInvalidField, path)
		}
		out.Items[idx].Description = s
	case "tax_rate":
		out.Items[idx].TaxRate = SanitizeNumber(value)
	case "amount":
		out.Items[idx].Amount = SanitizeNumber(value)
	default:
		return rec, fmt.Errorf("%w: unknown item field %q", domain.ErrInvalidField, field)
	}
	return out, nil
}

// parseItemPath splits "items[3].amount" into (3, "amount").
func parseItemPath(path string) (int, string, error) {
	rest, ok := strings.CutPrefix(path, "items[")
	if !ok {
		return 0, "", fmt.Errorf("%w: unknown path %q", domain.ErrInvalidField, path)
	}
	idxStr, field, ok := strings.Cut(rest, "].")
	if !ok {
		return 0, "", fmt.Errorf("%w: malformed item path %q", domain.ErrInvalidField, path)
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return 0, "", fmt.Errorf("%w: malformed item index %q", domain.ErrInvalidField, idxStr)
	}
	return idx, field, nil
}
