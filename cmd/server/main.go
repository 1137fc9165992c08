package main

import (
	"fmt"
	"log"

	"seikyu/internal/config"
	"seikyu/internal/handler"
	"seikyu/internal/parser/gemini"
	"seikyu/internal/repository/postgres"
	"seikyu/internal/router"
	"seikyu/internal/service"
	s3storage "seikyu/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	invoiceRepo := postgres.NewInvoiceRepo(db)

	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// One configured model client for the process, injected into the pipeline.
	invParser := gemini.NewParser(&cfg.Parser)

	analysisSvc := service.NewAnalysisService(invParser, s3Client, &cfg.S3)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, s3Client, &cfg.S3)

	analyzeH := handler.NewAnalyzeHandler(analysisSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	exportH := handler.NewExportHandler(invoiceSvc)
	healthH := handler.NewHealthHandler(db)

	r := router.Setup(&cfg.Gate, analyzeH, invoiceH, exportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
