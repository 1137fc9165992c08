package port

import "context"

// ParseInput carries the uploaded image for vision-model extraction.
type ParseInput struct {
	FileBytes   []byte
	ContentType string
}

// ParseOutput is the raw result of one model call. RawText is the model's
// text response, expected to be JSON optionally wrapped in Markdown fences;
// normalization happens downstream.
type ParseOutput struct {
	RawText    string
	ModelUsed  string
	PromptUsed string
}

// InvoiceParser abstracts the vision-model call: image bytes in, raw JSON-ish
// text out.
type InvoiceParser interface {
	Parse(ctx context.Context, input ParseInput) (*ParseOutput, error)
}
