package dto

import (
	"errors"

	"github.com/medocr/lab-report-extraction/extract"
)

// Custom errors
var (
	ErrNoFileUploaded    = errors.New("no file uploaded")
	ErrUnknownReportType = errors.New("unknown report type")
	ErrNoTextRecognized  = errors.New("no words could be recognized in the document")
	ErrMetadataRequired  = errors.New("metadata is required")
	ErrFileNotInMetadata = errors.New("file not described in metadata")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ReportExtractionResponse is the result of extracting one lab report.
// Records preserves first-seen order; an empty list is a valid success.
type ReportExtractionResponse struct {
	ReportType  ReportType       `json:"report_type"`
	Records     []extract.Record `json:"records"`
	SampleID    string           `json:"sample_id,omitempty"`
	WordCount   int              `json:"word_count"`
	ProcessedAt string           `json:"processed_at"`
}

// BatchExtractionResponse aggregates independent per-document extractions.
type BatchExtractionResponse struct {
	Reports     []ReportExtractionResponse `json:"reports"`
	ProcessedAt string                     `json:"processed_at"`
}
