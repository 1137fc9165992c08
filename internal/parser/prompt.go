package parser

// BuildInvoicePrompt returns the extraction prompt for Japanese qualified
// invoices (適格請求書).
func BuildInvoicePrompt() string {
	return `You are a document data extraction assistant. Analyze the provided invoice image and extract its data into the following JSON structure.

IMPORTANT INSTRUCTIONS:
- Extract EVERY line item on the invoice. Do not skip, summarize, or merge items.
- "registration_number" is the qualified invoice issuer number: the letter "T" followed by 13 digits.
- "summary" holds the taxable base and consumption tax for each rate bucket: subtotal_10/tax_10 for the 10% rate, subtotal_8/tax_8 for the reduced 8% rate. Use 0 for a bucket that does not appear.
- All amounts must be plain numeric values with no comma separators and no currency symbols.

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation. Return just the raw JSON object.

The object must follow this schema:
{
  "registration_number": "",
  "date": "",
  "items": [
    { "description": "", "tax_rate": 0, "amount": 0 }
  ],
  "summary": {
    "subtotal_10": 0, "tax_10": 0,
    "subtotal_8": 0, "tax_8": 0
  },
  "total_amount": 0
}

If a field is not present on the invoice, use empty string for text and 0 for numbers.`
}
