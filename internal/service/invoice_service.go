package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"seikyu/internal/config"
	"seikyu/internal/domain"
	"seikyu/internal/port"
)

// InvoiceService defines the confirmed-invoice persistence contract.
type InvoiceService interface {
	Save(ctx context.Context, rec domain.InvoiceRecord, sourceKey string) (*domain.Invoice, []domain.InvoiceItem, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Invoice, []domain.InvoiceItem, error)
	List(ctx context.Context) ([]domain.Invoice, error)
	ExportData(ctx context.Context) ([]domain.Invoice, []domain.InvoiceItem, error)
	SourceURL(ctx context.Context, sourceKey string) string
}

type invoiceService struct {
	repo    port.InvoiceRepository
	storage port.ObjectStorage
	s3cfg   *config.S3Config
}

// NewInvoiceService creates a new InvoiceService implementation. storage may
// be nil when source-image archival is disabled; SourceURL then always
// returns empty.
func NewInvoiceService(repo port.InvoiceRepository, storage port.ObjectStorage, s3cfg *config.S3Config) InvoiceService {
	return &invoiceService{repo: repo, storage: storage, s3cfg: s3cfg}
}

// Save persists a reviewed record as one header row plus its item rows.
// The item batch is only attempted once the header insert has returned the
// store-assigned identity; the two writes are not a transaction, so a header
// failure must stop the save here rather than rely on any rollback. An item
// failure after the header committed leaves an orphaned header, surfaced as
// domain.ErrPartialPersist so the caller can remediate instead of re-submitting.
func (s *invoiceService) Save(ctx context.Context, rec domain.InvoiceRecord, sourceKey string) (*domain.Invoice, []domain.InvoiceItem, error) {
	header := HeaderFromRecord(rec, sourceKey)

	if err := s.repo.CreateHeader(ctx, header); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	items := ItemsFromRecord(header.ID, rec.Items)
	if err := s.repo.CreateItems(ctx, items); err != nil {
		log.Printf("invoiceService.Save: header %s committed but items failed: %v", header.ID, err)
		return header, nil, fmt.Errorf("%w: header %s: %v", domain.ErrPartialPersist, header.ID, err)
	}

	log.Printf("invoiceService.Save: saved invoice %s with %d items", header.ID, len(items))
	return header, items, nil
}

func (s *invoiceService) Get(ctx context.Context, id uuid.UUID) (*domain.Invoice, []domain.InvoiceItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.repo.List(ctx)
}

// SourceURL presigns a time-limited download link for the archived source
// image behind a saved header. Best effort like the archival itself: a missing
// key, disabled storage, or presign failure yields an empty URL, and the
// reviewer just sees the record without its image.
func (s *invoiceService) SourceURL(ctx context.Context, sourceKey string) string {
	if s.storage == nil || sourceKey == "" {
		return ""
	}

	url, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, sourceKey, s.s3cfg.PresignExpiry)
	if err != nil {
		log.Printf("invoiceService.SourceURL: presign failed for %s: %v", sourceKey, err)
		return ""
	}
	return url
}

// ExportData loads all headers and all item rows for spreadsheet export.
func (s *invoiceService) ExportData(ctx context.Context) ([]domain.Invoice, []domain.InvoiceItem, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, nil, err
	}
	return invoices, items, nil
}
