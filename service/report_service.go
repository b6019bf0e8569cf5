package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/medocr/lab-report-extraction/client"
	"github.com/medocr/lab-report-extraction/dto"
	"github.com/medocr/lab-report-extraction/extract"
)

// minPDFWords is the word count below which a PDF text layer is treated
// as absent and the scanned-document OCR path is taken instead.
const minPDFWords = 20

type ReportService struct {
	doctrClient     *client.DoctrClient
	tesseractClient *client.TesseractClient
	pdfProcessor    PDFProcessor
	barcodeService  *BarcodeService
}

func NewReportService(
	doctrClient *client.DoctrClient,
	tesseractClient *client.TesseractClient,
	pdfProcessor PDFProcessor,
	barcodeService *BarcodeService,
) *ReportService {
	return &ReportService{
		doctrClient:     doctrClient,
		tesseractClient: tesseractClient,
		pdfProcessor:    pdfProcessor,
		barcodeService:  barcodeService,
	}
}

// ExtractReport runs the full pipeline for one uploaded document: obtain
// positioned words (PDF text layer, or OCR for images and scanned PDFs),
// then hand them to the extraction engine for the requested report type.
func (s *ReportService) ExtractReport(ctx context.Context, fileHeader *multipart.FileHeader, reportType dto.ReportType) (*dto.ReportExtractionResponse, error) {
	cfg, err := extract.ConfigFor(string(reportType))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", dto.ErrUnknownReportType, reportType)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var tokens []extract.PositionedToken
	var sampleID string

	isPDF := strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf")
	if isPDF {
		tokens, sampleID, err = s.tokensFromPDF(ctx, fileHeader.Filename, fileBytes)
	} else {
		tokens, sampleID, err = s.tokensFromImage(ctx, fileBytes)
	}
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, dto.ErrNoTextRecognized
	}

	engine := extract.New(cfg)
	records := engine.Extract(tokens)

	log.Printf("extracted %d records from %s (%s, %d words)",
		len(records), fileHeader.Filename, reportType, len(tokens))

	return &dto.ReportExtractionResponse{
		ReportType:  reportType,
		Records:     records,
		SampleID:    sampleID,
		WordCount:   len(tokens),
		ProcessedAt: time.Now().Format(time.RFC3339),
	}, nil
}

// ExtractBatch processes every file described in the metadata concurrently.
// Each document succeeds or fails on its own; the first failure aborts the
// batch.
func (s *ReportService) ExtractBatch(ctx context.Context, req *dto.BatchExtractionRequest) (*dto.BatchExtractionResponse, error) {
	var metadata dto.BatchMetadata
	if err := json.Unmarshal([]byte(req.Metadata), &metadata); err != nil {
		return nil, fmt.Errorf("invalid metadata JSON: %w", err)
	}

	fileMap := make(map[string]*multipart.FileHeader)
	for _, file := range req.Files {
		fileMap[file.Filename] = file
	}

	var reports []dto.ReportExtractionResponse
	var mu sync.Mutex
	var wg sync.WaitGroup
	errs := make([]error, 0)

	for _, docMeta := range metadata.Documents {
		fileHeader, ok := fileMap[docMeta.Filename]
		if !ok {
			return nil, fmt.Errorf("%w: %s", dto.ErrFileNotInMetadata, docMeta.Filename)
		}

		wg.Add(1)
		go func(meta dto.DocumentMeta, file *multipart.FileHeader) {
			defer wg.Done()

			result, err := s.ExtractReport(ctx, file, meta.ReportType)
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("failed to process file %s: %w", meta.Filename, err))
				mu.Unlock()
				return
			}

			mu.Lock()
			reports = append(reports, *result)
			mu.Unlock()
		}(docMeta, fileHeader)
	}

	wg.Wait()

	if len(errs) > 0 {
		return nil, errs[0]
	}

	return &dto.BatchExtractionResponse{
		Reports:     reports,
		ProcessedAt: time.Now().Format(time.RFC3339),
	}, nil
}

// tokensFromPDF prefers the embedded text layer and falls back to OCR over
// the page images when the layer is missing or too sparse.
func (s *ReportService) tokensFromPDF(ctx context.Context, filename string, pdfData []byte) ([]extract.PositionedToken, string, error) {
	tokens, err := s.pdfProcessor.ExtractPositionedWords(pdfData)
	if err != nil {
		log.Printf("PDF text extraction failed for %s: %v", filename, err)
	}
	if len(tokens) >= minPDFWords {
		return tokens, "", nil
	}

	log.Printf("PDF %s has minimal text, attempting image-based OCR", filename)

	images, err := s.pdfProcessor.ExtractImages(pdfData)
	if err != nil {
		return nil, "", fmt.Errorf("failed to extract images from PDF: %w", err)
	}
	if len(images) == 0 {
		return nil, "", dto.ErrNoTextRecognized
	}

	var sampleID string
	tokens = tokens[:0]
	for i, img := range images {
		if sampleID == "" {
			sampleID = s.barcodeService.ExtractSampleID(img)
		}

		doc, err := s.ocrImage(ctx, img)
		if err != nil {
			log.Printf("OCR failed for page %d of %s: %v", i+1, filename, err)
			continue
		}

		// Stack pages vertically so rows from different pages stay apart.
		for _, tok := range doc.PositionedTokens() {
			tok.CenterY += float64(i)
			tokens = append(tokens, tok)
		}
	}

	return tokens, sampleID, nil
}

func (s *ReportService) tokensFromImage(ctx context.Context, imageBytes []byte) ([]extract.PositionedToken, string, error) {
	var sampleID string
	if img, _, err := image.Decode(bytes.NewReader(imageBytes)); err == nil {
		sampleID = s.barcodeService.ExtractSampleID(img)
	}

	doc, err := s.doctrClient.AnalyzeImage(ctx, imageBytes)
	if err != nil {
		log.Printf("docTR extraction failed, falling back to Tesseract: %v", err)
		doc, err = s.ocrImageBytesWithTesseract(imageBytes)
		if err != nil {
			return nil, "", fmt.Errorf("image OCR failed: %w", err)
		}
	}

	return doc.PositionedTokens(), sampleID, nil
}

// ocrImage sends one decoded image through docTR, falling back to Tesseract.
func (s *ReportService) ocrImage(ctx context.Context, img image.Image) (*dto.Document, error) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image to PNG: %w", err)
	}

	doc, err := s.doctrClient.AnalyzeImage(ctx, buf.Bytes())
	if err == nil {
		return doc, nil
	}
	log.Printf("docTR extraction failed, falling back to Tesseract: %v", err)

	return s.ocrImageBytesWithTesseract(buf.Bytes())
}

func (s *ReportService) ocrImageBytesWithTesseract(imageBytes []byte) (*dto.Document, error) {
	tempFile, err := os.CreateTemp("", "ocr-img-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(imageBytes); err != nil {
		tempFile.Close()
		return nil, fmt.Errorf("failed to write temp image file: %w", err)
	}
	tempFile.Close()

	return s.tesseractClient.AnalyzeImagePath(tempFile.Name())
}
