package dto

import (
	"mime/multipart"
)

// BatchExtractionRequest represents a multi-file extraction request.
type BatchExtractionRequest struct {
	Files    []*multipart.FileHeader `form:"files[]" binding:"required"`
	Metadata string                  `form:"metadata" binding:"required"`
}

// Validate performs basic validation on the request
func (r *BatchExtractionRequest) Validate() error {
	if len(r.Files) == 0 {
		return ErrNoFileUploaded
	}
	if r.Metadata == "" {
		return ErrMetadataRequired
	}
	return nil
}
