package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/medocr/lab-report-extraction/client"
	"github.com/medocr/lab-report-extraction/config"
	"github.com/medocr/lab-report-extraction/handler"
	"github.com/medocr/lab-report-extraction/service"
)

func main() {
	cfg := config.LoadConfig()

	doctrClient := client.NewDoctrClient(cfg.DoctrAPIURL)
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)

	pdfProcessor := service.NewPDFProcessor()
	barcodeService := service.NewBarcodeService()

	reportService := service.NewReportService(doctrClient, tesseractClient, pdfProcessor, barcodeService)

	reportHandler := handler.NewReportHandler(reportService)

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Lab Report Extraction",
		})
	})

	api := router.Group("/api/v1")
	{
		report := api.Group("/report")
		{
			report.POST("/extract", reportHandler.ExtractReport)
			report.POST("/extract-batch", reportHandler.ExtractBatch)
		}
	}

	log.Printf("Starting Lab Report Extraction Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
