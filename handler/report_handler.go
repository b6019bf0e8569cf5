package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medocr/lab-report-extraction/dto"
	"github.com/medocr/lab-report-extraction/service"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// ExtractReport handles the POST /report/extract endpoint. It expects one
// uploaded file and a report_type form field (cbc or lft).
func (h *ReportHandler) ExtractReport(c *gin.Context) {
	log.Println("Received report extraction request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, dto.ErrNoFileUploaded.Error(), err)
		return
	}

	reportType := dto.ReportType(c.PostForm("report_type"))
	if reportType == "" {
		reportType = dto.ReportTypeCBC
	}

	response, err := h.reportService.ExtractReport(c.Request.Context(), fileHeader, reportType)
	if err != nil {
		h.sendError(c, statusFor(err), "Failed to extract report", err)
		return
	}

	log.Printf("Report extraction completed: %d records", len(response.Records))
	c.JSON(http.StatusOK, response)
}

// ExtractBatch handles the POST /report/extract-batch endpoint. Files are
// uploaded under files[] with a metadata JSON field mapping each filename
// to its report type.
func (h *ReportHandler) ExtractBatch(c *gin.Context) {
	log.Println("Received batch extraction request")

	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return
	}

	request := &dto.BatchExtractionRequest{
		Files:    form.File["files[]"],
		Metadata: c.PostForm("metadata"),
	}

	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	log.Printf("Processing %d files", len(request.Files))

	response, err := h.reportService.ExtractBatch(c.Request.Context(), request)
	if err != nil {
		h.sendError(c, statusFor(err), "Failed to extract batch", err)
		return
	}

	log.Println("Batch extraction completed successfully")
	c.JSON(http.StatusOK, response)
}

// statusFor maps service errors onto HTTP status codes. Client mistakes
// (bad report type, unreadable upload) are 4xx; everything else is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, dto.ErrUnknownReportType),
		errors.Is(err, dto.ErrNoFileUploaded),
		errors.Is(err, dto.ErrMetadataRequired),
		errors.Is(err, dto.ErrFileNotInMetadata):
		return http.StatusBadRequest
	case errors.Is(err, dto.ErrNoTextRecognized):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// sendError sends a structured error response
func (h *ReportHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
