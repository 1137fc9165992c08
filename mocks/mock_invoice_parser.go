package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"seikyu/internal/port"
)

// MockInvoiceParser is a mock implementation of port.InvoiceParser.
type MockInvoiceParser struct {
	mock.Mock
}

func (m *MockInvoiceParser) Parse(ctx context.Context, input port.ParseInput) (*port.ParseOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ParseOutput), args.Error(1)
}
