package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"seikyu/internal/domain"
	"seikyu/internal/service"
)

// AnalyzeHandler handles invoice image analysis endpoints.
type AnalyzeHandler struct {
	analysisService service.AnalysisService
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analysisService service.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{analysisService: analysisService}
}

// Analyze handles POST /api/v1/invoices/analyze
// @Summary Analyze an invoice image
// @Description Extract structured data from an uploaded invoice image and run consistency checks
// @Tags invoices
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Invoice image (JPG, PNG, or PDF)"
// @Success 200 {object} APIResponse "Normalized record with validation result"
// @Failure 400 {object} APIResponse "Missing file or unsupported type"
// @Failure 422 {object} APIResponse "Model output not parseable"
// @Failure 504 {object} APIResponse "Model call timed out"
// @Router /invoices/analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		HandleError(c, domain.ErrNoFile)
		return
	}
	defer func() { _ = file.Close() }()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), service.AnalyzeInput{
		FileBytes: fileBytes,
		FileName:  header.Filename,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// RevalidateRequest is the body for POST /api/v1/invoices/revalidate.
type RevalidateRequest struct {
	Data    domain.InvoiceRecord `json:"data" binding:"required"`
	Updates map[string]any       `json:"updates"`
}

// Revalidate handles POST /api/v1/invoices/revalidate
// @Summary Re-run consistency checks after edits
// @Description Apply path-based field edits to a record and return the updated record with fresh checks
// @Tags invoices
// @Accept json
// @Produce json
// @Param body body RevalidateRequest true "Record plus field edits keyed by path (e.g. summary.tax_10)"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse "Invalid body or field path"
// @Router /invoices/revalidate [post]
func (h *AnalyzeHandler) Revalidate(c *gin.Context) {
	var req RevalidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must contain a data record")
		return
	}

	result, err := h.analysisService.Revalidate(req.Data, req.Updates)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
