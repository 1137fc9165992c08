package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seikyu/internal/csvexport"
	"seikyu/internal/service"
	"seikyu/internal/xlsxexport"
)

// ExportHandler streams saved invoices as CSV or XLSX downloads.
type ExportHandler struct {
	invoiceService service.InvoiceService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(invoiceService service.InvoiceService) *ExportHandler {
	return &ExportHandler{invoiceService: invoiceService}
}

// CSV handles GET /export/invoices.csv
// @Summary Download invoice headers as CSV
// @Description Fixed column order, UTF-8 with BOM for spreadsheet compatibility
// @Tags export
// @Produce text/csv
// @Success 200 {string} string "CSV content"
// @Router /export/invoices.csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+csvexport.BuildFilename()+`"`)
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteInvoices(invoices); err != nil {
		return
	}
	w.Flush()
}

// XLSX handles GET /export/invoices.xlsx
// @Summary Download invoices as an Excel workbook
// @Description Header rows on one sheet, line items on a second
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {string} string "XLSX content"
// @Router /export/invoices.xlsx [get]
func (h *ExportHandler) XLSX(c *gin.Context) {
	invoices, items, err := h.invoiceService.ExportData(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+xlsxexport.BuildFilename()+`"`)
	c.Status(http.StatusOK)

	if err := xlsxexport.Write(c.Writer, invoices, items); err != nil {
		// Headers are already out; nothing to do but log via HandleError's path.
		_ = c.Error(err)
	}
}
