package port

import (
	"context"

	"github.com/google/uuid"

	"seikyu/internal/domain"
)

// InvoiceRepository defines the two-table invoice persistence contract.
// CreateHeader fills in the store-assigned ID and CreatedAt on success;
// CreateItems must only be called with that assigned header ID. The two
// writes are not a transaction; callers own the ordering guard.
type InvoiceRepository interface {
	CreateHeader(ctx context.Context, inv *domain.Invoice) error
	CreateItems(ctx context.Context, items []domain.InvoiceItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, []domain.InvoiceItem, error)
	List(ctx context.Context) ([]domain.Invoice, error)
	ListItems(ctx context.Context) ([]domain.InvoiceItem, error)
}
