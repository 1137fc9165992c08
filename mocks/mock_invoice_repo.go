package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"seikyu/internal/domain"
)

// MockInvoiceRepo is a mock implementation of port.InvoiceRepository.
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) CreateHeader(ctx context.Context, inv *domain.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepo) CreateItems(ctx context.Context, items []domain.InvoiceItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, []domain.InvoiceItem, error) {
	args := m.Called(ctx, id)
	var inv *domain.Invoice
	if args.Get(0) != nil {
		inv = args.Get(0).(*domain.Invoice)
	}
	var items []domain.InvoiceItem
	if args.Get(1) != nil {
		items = args.Get(1).([]domain.InvoiceItem)
	}
	return inv, items, args.Error(2)
}

func (m *MockInvoiceRepo) List(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) ListItems(ctx context.Context) ([]domain.InvoiceItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceItem), args.Error(1)
}
