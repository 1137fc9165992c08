package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"seikyu/internal/domain"
	"seikyu/internal/service"
)

// MockAnalysisService is a mock implementation of service.AnalysisService.
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Analyze(ctx context.Context, input service.AnalyzeInput) (*service.AnalysisResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnalysisResult), args.Error(1)
}

func (m *MockAnalysisService) Revalidate(rec domain.InvoiceRecord, updates map[string]any) (*service.AnalysisResult, error) {
	args := m.Called(rec, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnalysisResult), args.Error(1)
}

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Save(ctx context.Context, rec domain.InvoiceRecord, sourceKey string) (*domain.Invoice, []domain.InvoiceItem, error) {
	args := m.Called(ctx, rec, sourceKey)
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

func (m *MockInvoiceService) Get(ctx context.Context, id uuid.UUID) (*domain.Invoice, []domain.InvoiceItem, error) {
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

func (m *MockInvoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) SourceURL(ctx context.Context, sourceKey string) string {
	args := m.Called(ctx, sourceKey)
	return args.String(0)
}

func (m *MockInvoiceService) ExportData(ctx context.Context) ([]domain.Invoice, []domain.InvoiceItem, error) {
	args := m.Called(ctx)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	var items []domain.InvoiceItem
	if args.Get(1) != nil {
		items = args.Get(1).([]domain.InvoiceItem)
	}
	return invoices, items, args.Error(2)
}
