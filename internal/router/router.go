package router

import (
	"github.com/gin-gonic/gin"

	"seikyu/internal/config"
	"seikyu/internal/handler"
	"seikyu/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	gateCfg *config.GateConfig,
	analyzeH *handler.AnalyzeHandler,
	invoiceH *handler.InvoiceHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// Health probes stay outside the basic-auth gate: the platform's probe
	// requests cannot carry credentials.
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	invoices := v1.Group("/invoices")
	invoices.POST("/analyze", analyzeH.Analyze)
	invoices.POST("/revalidate", analyzeH.Revalidate)
	invoices.POST("", invoiceH.Save)
	invoices.GET("", invoiceH.List)
	invoices.GET("/:id", invoiceH.GetByID)

	// Download routes sit outside /api and behind the basic-auth gate.
	export := r.Group("/export")
	export.Use(middleware.BasicGate(gateCfg))
	export.GET("/invoices.csv", exportH.CSV)
	export.GET("/invoices.xlsx", exportH.XLSX)

	return r
}
