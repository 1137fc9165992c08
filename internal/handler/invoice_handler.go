package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"seikyu/internal/domain"
	"seikyu/internal/service"
)

// InvoiceHandler handles confirmed-invoice persistence endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// SaveRequest is the body for POST /api/v1/invoices.
type SaveRequest struct {
	Data      domain.InvoiceRecord `json:"data" binding:"required"`
	SourceKey string               `json:"source_key"`
}

// InvoiceDetail is a header row together with its item rows. SourceURL is a
// time-limited link to the archived source image, empty when no image was
// archived or presigning is unavailable.
type InvoiceDetail struct {
	Invoice   *domain.Invoice      `json:"invoice"`
	Items     []domain.InvoiceItem `json:"items"`
	SourceURL string               `json:"source_url,omitempty"`
}

// Save handles POST /api/v1/invoices
// @Summary Save a reviewed invoice
// @Description Persist a confirmed record as a header row plus item rows
// @Tags invoices
// @Accept json
// @Produce json
// @Param body body SaveRequest true "Reviewed record"
// @Success 201 {object} APIResponse
// @Failure 500 {object} APIResponse "Header saved but items failed"
// @Failure 503 {object} APIResponse "Store unavailable, nothing saved"
// @Router /invoices [post]
func (h *InvoiceHandler) Save(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must contain a data record")
		return
	}

	header, items, err := h.invoiceService.Save(c.Request.Context(), req.Data, req.SourceKey)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, InvoiceDetail{Invoice: header, Items: items})
}

// List handles GET /api/v1/invoices
// @Summary List saved invoices
// @Description List invoice headers ordered by creation time descending, with the summed total as meta
// @Tags invoices
// @Produce json
// @Success 200 {object} APIResponse
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	var totalSum float64
	for i := range invoices {
		totalSum += invoices[i].TotalAmount
	}
	RespondList(c, invoices, ListMeta{Total: len(invoices), TotalSum: totalSum})
}

// GetByID handles GET /api/v1/invoices/:id
// @Summary Get one invoice with its line items and a source-image link
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "id must be a UUID")
		return
	}

	header, items, err := h.invoiceService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, InvoiceDetail{
		Invoice:   header,
		Items:     items,
		SourceURL: h.invoiceService.SourceURL(c.Request.Context(), header.SourceKey),
	})
}
