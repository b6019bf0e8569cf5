package client

import (
	"fmt"
	"image"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	_ "image/jpeg"
	_ "image/png"

	"github.com/otiai10/gosseract/v2"

	"github.com/medocr/lab-report-extraction/dto"
)

// TesseractClient is the fallback OCR engine. Unlike plain text extraction
// it asks Tesseract for word-level bounding boxes, so its output carries
// the geometry the row builder depends on.
type TesseractClient struct {
	dataPath string
}

func NewTesseractClient(dataPath string) *TesseractClient {
	return &TesseractClient{
		dataPath: dataPath,
	}
}

// AnalyzeFile runs OCR over an uploaded image file and returns a
// single-page document of positioned words.
func (tc *TesseractClient) AnalyzeFile(fileHeader *multipart.FileHeader) (*dto.Document, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	tempFile, err := tc.CreateTempFile(file, fileHeader.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile)

	return tc.AnalyzeImagePath(tempFile)
}

// AnalyzeImagePath runs OCR over an image on disk.
func (tc *TesseractClient) AnalyzeImagePath(path string) (*dto.Document, error) {
	width, height, err := imageDimensions(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image dimensions: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	client.SetTessdataPrefix(tc.dataPath)
	if err := client.SetLanguage("eng"); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(path); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("failed to extract word boxes: %w", err)
	}

	page := dto.Page{Dimensions: []float64{width, height}}
	var words []dto.Word
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		words = append(words, dto.Word{
			Value:      box.Word,
			Confidence: box.Confidence,
			Geometry: [2][2]float64{
				{float64(box.Box.Min.X) / width, float64(box.Box.Min.Y) / height},
				{float64(box.Box.Max.X) / width, float64(box.Box.Max.Y) / height},
			},
		})
	}

	// Tesseract gives a flat word stream; wrap it as one block/line and
	// let the row builder regroup by geometry.
	page.Blocks = []dto.Block{{Lines: []dto.Line{{Words: words}}}}

	doc := &dto.Document{Pages: []dto.Page{page}}
	log.Printf("Tesseract recognized %d words", len(words))
	return doc, nil
}

// CreateTempFile creates a temporary file from uploaded content
func (tc *TesseractClient) CreateTempFile(file multipart.File, filename string) (string, error) {
	ext := filepath.Ext(filename)
	tempFile, err := os.CreateTemp("", "ocr-*"+ext)
	if err != nil {
		return "", err
	}
	defer tempFile.Close()

	if _, err := io.Copy(tempFile, file); err != nil {
		os.Remove(tempFile.Name())
		return "", err
	}

	return tempFile.Name(), nil
}

func imageDimensions(path string) (float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return 0, 0, fmt.Errorf("image has zero dimensions")
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}
