package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"seikyu/internal/config"
	"seikyu/internal/domain"
	"seikyu/internal/port"
	"seikyu/internal/service"
	"seikyu/mocks"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func testS3Config() *config.S3Config {
	return &config.S3Config{Bucket: "seikyu-test", MaxFileSizeMB: 20}
}

const fencedModelOutput = "```json\n" + `{
	"registration_number": "T1234567890123",
	"date": "2026-08-15",
	"items": [{"description": "コーヒー豆", "tax_rate": 8, "amount": "1,000"}],
	"summary": {"subtotal_10": 0, "tax_10": 0, "subtotal_8": 1000, "tax_8": 80},
	"total_amount": "1,080"
}` + "\n```"

func TestAnalyze_FullPipeline(t *testing.T) {
	invParser := new(mocks.MockInvoiceParser)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewAnalysisService(invParser, storage, testS3Config())

	invParser.On("Parse", mock.Anything, mock.MatchedBy(func(in port.ParseInput) bool {
		return in.ContentType == "image/png"
	})).Return(&port.ParseOutput{RawText: fencedModelOutput, ModelUsed: "gemini-2.5-flash"}, nil)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "seikyu-test" && in.ContentType == "image/png"
	})).Return(&port.UploadOutput{}, nil)

	result, err := svc.Analyze(context.Background(), service.AnalyzeInput{
		FileBytes: pngHeader,
		FileName:  "receipt.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "T1234567890123", result.Data.RegistrationNumber)
	assert.Equal(t, 1080.0, result.Data.TotalAmount)
	require.Len(t, result.Data.Items, 1)
	assert.Equal(t, 1000.0, result.Data.Items[0].Amount)
	assert.True(t, result.Validation.Tax10)
	assert.True(t, result.Validation.Tax8)
	assert.True(t, result.Validation.Total)
	assert.Contains(t, result.SourceKey, "invoices/source/")
	assert.Contains(t, result.SourceKey, "receipt.png")
	invParser.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestAnalyze_EmptyFile(t *testing.T) {
	invParser := new(mocks.MockInvoiceParser)
	svc := service.NewAnalysisService(invParser, nil, testS3Config())

	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{})

	assert.True(t, errors.Is(err, domain.ErrNoFile))
	invParser.AssertNotCalled(t, "Parse", mock.Anything, mock.Anything)
}

func TestAnalyze_FileTooLarge(t *testing.T) {
	invParser := new(mocks.MockInvoiceParser)
	cfg := testS3Config()
	cfg.MaxFileSizeMB = 1
	svc := service.NewAnalysisService(invParser, nil, cfg)

	big := make([]byte, 1024*1024+1)
	copy(big, pngHeader)

	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{FileBytes: big})

	assert.True(t, errors.Is(err, domain.ErrFileTooLarge))
	invParser.AssertNotCalled(t, "Parse", mock.Anything, mock.Anything)
}

func TestAnalyze_UnsupportedContentType(t *testing.T) {
	invParser := new(mocks.MockInvoiceParser)
	svc := service.NewAnalysisService(invParser, nil, testS3Config())

	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{
		FileBytes: []byte("just some plain text, not an image"),
	})

	assert.True(t, errors.Is(err, domain.ErrUnsupportedFileType))
	invParser.AssertNotCalled(t, "Parse", mock.Anything, mock.Anything)
}

func TestAnalyze_ModelErrorPassesThrough(t *testing.T) {
	invParser := new(mocks.MockInvoiceParser)
	svc := service.NewAnalysisService(invParser, nil, testS3Config())

	invParser.On("Parse", mock.Anything, mock.Anything).Return(nil, domain.ErrModelTimeout)

	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{FileBytes: pngHeader})

	assert.True(t, errors.Is(err, domain.ErrModelTimeout))
}

func TestAnalyze_MalformedModelOutput(t *testing.T) {
	invParser := new(mocks.MockInvoiceParser)
	svc := service.NewAnalysisService(invParser, nil, testS3Config())

	invParser.On("Parse", mock.Anything, mock.Anything).
		Return(&port.ParseOutput{RawText: "sorry, no invoice visible"}, nil)

	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{FileBytes: pngHeader})

	assert.True(t, errors.Is(err, domain.ErrMalformedModelOutput))
}

func TestAnalyze_ArchivalFailureIsBestEffort(t *testing.T) {
	invParser := new(mocks.MockInvoiceParser)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewAnalysisService(invParser, storage, testS3Config())

	invParser.On("Parse", mock.Anything, mock.Anything).
		Return(&port.ParseOutput{RawText: fencedModelOutput}, nil)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("bucket gone"))

	result, err := svc.Analyze(context.Background(), service.AnalyzeInput{FileBytes: pngHeader})

	require.NoError(t, err)
	assert.Equal(t, "", result.SourceKey)
}

func TestAnalyze_NilStorageSkipsArchival(t *testing.T) {
	invParser := new(mocks.MockInvoiceParser)
	svc := service.NewAnalysisService(invParser, nil, testS3Config())

	invParser.On("Parse", mock.Anything, mock.Anything).
		Return(&port.ParseOutput{RawText: fencedModelOutput}, nil)

	result, err := svc.Analyze(context.Background(), service.AnalyzeInput{FileBytes: pngHeader})

	require.NoError(t, err)
	assert.Equal(t, "", result.SourceKey)
}

func TestRevalidate_AppliesUpdatesAndRechecks(t *testing.T) {
	svc := service.NewAnalysisService(nil, nil, testS3Config())

	rec := domain.InvoiceRecord{
		Summary:     domain.Summary{Subtotal10: 1000, Tax10: 99},
		TotalAmount: 1099,
	}

	result, err := svc.Revalidate(rec, map[string]any{
		"summary.tax_10": "100",
		"total_amount":   1100,
	})

	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Data.Summary.Tax10)
	assert.Equal(t, 1100.0, result.Data.TotalAmount)
	assert.True(t, result.Validation.Tax10)
	assert.True(t, result.Validation.Total)
}

func TestRevalidate_InvalidPath(t *testing.T) {
	svc := service.NewAnalysisService(nil, nil, testS3Config())

	_, err := svc.Revalidate(domain.InvoiceRecord{}, map[string]any{"summary.vat": 10})

	assert.True(t, errors.Is(err, domain.ErrInvalidField))
}

func TestRevalidate_NoUpdates(t *testing.T) {
	svc := service.NewAnalysisService(nil, nil, testS3Config())

	rec := domain.InvoiceRecord{
		Summary:     domain.Summary{Subtotal10: 1000, Tax10: 100},
		TotalAmount: 1100,
	}

	result, err := svc.Revalidate(rec, nil)

	require.NoError(t, err)
	assert.Equal(t, rec.Summary, result.Data.Summary)
	assert.True(t, result.Validation.Total)
}
