package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"seikyu/internal/domain"
)

// StripCodeFences removes Markdown code-fence markers from raw model output.
// Models wrap JSON in ```json ... ``` often enough that this runs on every
// response before parsing.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ParseModelOutput turns raw model text into a normalized InvoiceRecord.
// A response that does not parse as JSON after fence stripping is fatal to the
// request (domain.ErrMalformedModelOutput); everything that does parse is
// normalized without error regardless of how malformed the value types are.
func ParseModelOutput(text string) (domain.InvoiceRecord, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(StripCodeFences(text)), &raw); err != nil {
		return domain.InvoiceRecord{}, fmt.Errorf("%w: %v", domain.ErrMalformedModelOutput, err)
	}
	return Normalize(raw), nil
}

// Normalize maps an untrusted decoded JSON object onto the canonical record
// shape. All numeric fields go through SanitizeNumber, a missing or non-object
// summary sanitizes to all zeros, and a missing or non-array items becomes an
// empty slice. The returned record always satisfies the InvoiceRecord
// invariant.
func Normalize(raw map[string]any) domain.InvoiceRecord {
	rec := domain.InvoiceRecord{
		RegistrationNumber: asString(raw["registration_number"]),
		Date:               asString(raw["date"]),
		Items:              []domain.LineItem{},
		TotalAmount:        SanitizeNumber(raw["total_amount"]),
	}

	if summary, ok := raw["summary"].(map[string]any); ok {
		rec.Summary = domain.Summary{
			Subtotal10: SanitizeNumber(summary["subtotal_10"]),
			Tax10:      SanitizeNumber(summary["tax_10"]),
			Subtotal8:  SanitizeNumber(summary["subtotal_8"]),
			Tax8:       SanitizeNumber(summary["tax_8"]),
		}
	}

	items, ok := raw["items"].([]any)
	if !ok {
		return rec
	}
	for _, el := range items {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}
		rec.Items = append(rec.Items, domain.LineItem{
			Description: asString(obj["description"]),
			TaxRate:     SanitizeNumber(obj["tax_rate"]),
			Amount:      SanitizeNumber(obj["amount"]),
		})
	}
	return rec
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
