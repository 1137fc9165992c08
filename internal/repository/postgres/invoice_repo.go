package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"seikyu/internal/domain"
	"seikyu/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

// CreateHeader inserts the header row. The store assigns id and created_at;
// both are written back into inv before returning, so callers can stamp item
// rows only after this succeeds.
func (r *invoiceRepo) CreateHeader(ctx context.Context, inv *domain.Invoice) error {
	query := `INSERT INTO inv_invoices (
		registration_number, invoice_date,
		subtotal_10, tax_10, subtotal_8, tax_8,
		total_amount, source_key
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		inv.RegistrationNumber, inv.InvoiceDate,
		inv.Subtotal10, inv.Tax10, inv.Subtotal8, inv.Tax8,
		inv.TotalAmount, inv.SourceKey,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("invoiceRepo.CreateHeader: %w", err)
	}
	return nil
}

func (r *invoiceRepo) CreateItems(ctx context.Context, items []domain.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}
	query := `INSERT INTO inv_invoice_items (
		id, invoice_id, position, description, tax_rate, amount
	) VALUES (
		:id, :invoice_id, :position, :description, :tax_rate, :amount
	)`
	if _, err := r.db.NamedExecContext(ctx, query, items); err != nil {
		return fmt.Errorf("invoiceRepo.CreateItems: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, []domain.InvoiceItem, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv,
		"SELECT * FROM inv_invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}

	var items []domain.InvoiceItem
	err = r.db.SelectContext(ctx, &items,
		"SELECT * FROM inv_invoice_items WHERE invoice_id = $1 ORDER BY position", id)
	if err != nil {
		return nil, nil, fmt.Errorf("invoiceRepo.GetByID items: %w", err)
	}
	return &inv, items, nil
}

// ListItems returns every item row, grouped by invoice and ordered by
// position, for bulk export.
func (r *invoiceRepo) ListItems(ctx context.Context) ([]domain.InvoiceItem, error) {
	var items []domain.InvoiceItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM inv_invoice_items ORDER BY invoice_id, position")
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListItems: %w", err)
	}
	return items, nil
}

func (r *invoiceRepo) List(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM inv_invoices ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, nil
}
