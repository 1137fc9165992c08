package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"path"
	"sort"

	"github.com/google/uuid"

	"seikyu/internal/config"
	"seikyu/internal/domain"
	"seikyu/internal/parser"
	"seikyu/internal/port"
	"seikyu/internal/validator/invoice"
)

// AnalyzeInput is the DTO for invoice analysis requests.
type AnalyzeInput struct {
	FileBytes []byte
	FileName  string
}

// AnalysisResult pairs the normalized record with its consistency checks.
// SourceKey points at the archived source image when archival succeeded.
type AnalysisResult struct {
	Data       domain.InvoiceRecord      `json:"data"`
	Validation invoice.ConsistencyResult `json:"validation"`
	SourceKey  string                    `json:"source_key,omitempty"`
}

// AnalysisService runs the extract-sanitize-validate pipeline for one
// uploaded image, and re-runs the checks after reviewer edits.
type AnalysisService interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*AnalysisResult, error)
	Revalidate(rec domain.InvoiceRecord, updates map[string]any) (*AnalysisResult, error)
}

type analysisService struct {
	parser  port.InvoiceParser
	storage port.ObjectStorage
	s3cfg   *config.S3Config
}

// NewAnalysisService creates a new AnalysisService. storage may be nil to
// disable source-image archival.
func NewAnalysisService(invParser port.InvoiceParser, storage port.ObjectStorage, s3cfg *config.S3Config) AnalysisService {
	return &analysisService{parser: invParser, storage: storage, s3cfg: s3cfg}
}

// Analyze runs the sequential pipeline: image bytes → model text → parsed
// JSON → normalized record → validation result. The model call is the only
// suspend point; everything after it is pure.
func (s *analysisService) Analyze(ctx context.Context, input AnalyzeInput) (*AnalysisResult, error) {
	if len(input.FileBytes) == 0 {
		return nil, domain.ErrNoFile
	}

	maxBytes := s.s3cfg.MaxFileSizeMB * 1024 * 1024
	if maxBytes > 0 && int64(len(input.FileBytes)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	sniff := input.FileBytes
	if len(sniff) > 512 {
		sniff = sniff[:512]
	}
	contentType := http.DetectContentType(sniff)
	if !domain.AllowedContentTypes[contentType] {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, contentType)
	}

	out, err := s.parser.Parse(ctx, port.ParseInput{
		FileBytes:   input.FileBytes,
		ContentType: contentType,
	})
	if err != nil {
		return nil, err
	}

	rec, err := parser.ParseModelOutput(out.RawText)
	if err != nil {
		return nil, err
	}

	result := &AnalysisResult{
		Data:       rec,
		Validation: invoice.Check(rec),
	}
	result.SourceKey = s.archiveSource(ctx, input, contentType)

	log.Printf("analysisService.Analyze: model=%s items=%d validation=%+v",
		out.ModelUsed, len(rec.Items), result.Validation)
	return result, nil
}

// Revalidate applies reviewer edits via update-at-path and re-runs the
// consistency checks. Paths are applied in sorted order so the outcome does
// not depend on map iteration.
func (s *analysisService) Revalidate(rec domain.InvoiceRecord, updates map[string]any) (*AnalysisResult, error) {
	paths := make([]string, 0, len(updates))
	for p := range updates {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var err error
	for _, p := range paths {
		rec, err = parser.UpdateField(rec, p, updates[p])
		if err != nil {
			return nil, err
		}
	}

	return &AnalysisResult{Data: rec, Validation: invoice.Check(rec)}, nil
}

// archiveSource uploads the original image to the archive bucket. Best
// effort: analysis already succeeded, so a storage failure is logged and an
// empty key returned.
func (s *analysisService) archiveSource(ctx context.Context, input AnalyzeInput, contentType string) string {
	if s.storage == nil {
		return ""
	}

	name := path.Base(input.FileName)
	if name == "." || name == "/" || name == "" {
		name = "upload"
	}
	key := fmt.Sprintf("invoices/source/%s/%s", uuid.New(), name)

	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(input.FileBytes),
		ContentType: contentType,
	})
	if err != nil {
		log.Printf("analysisService.archiveSource: upload failed for %s: %v", key, err)
		return ""
	}
	return key
}
