package service

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/medocr/lab-report-extraction/extract"
)

type PDFProcessor interface {
	ExtractPositionedWords(pdfData []byte) ([]extract.PositionedToken, error)
	ExtractImages(pdfData []byte) ([]image.Image, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractPositionedWords reads the text layer of a digital PDF and returns
// words with normalized centers. Successive pages are stacked vertically,
// page n occupying the interval [n, n+1), so rows from different pages
// never collapse together.
func (p *pdfProcessor) ExtractPositionedWords(pdfData []byte) ([]extract.PositionedToken, error) {
	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return nil, err
	}

	var tokens []extract.PositionedToken
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		width, height := pageSize(page)
		if width <= 0 || height <= 0 {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}

		for _, row := range rows {
			for _, word := range assembleWords(row.Content) {
				// PDF coordinates grow upward; flip Y so rows read top to bottom.
				tokens = append(tokens, extract.PositionedToken{
					Text:    word.text,
					CenterX: word.centerX / width,
					CenterY: float64(pageIndex-1) + (1 - word.centerY/height),
				})
			}
		}
	}

	return tokens, nil
}

type assembledWord struct {
	text    string
	centerX float64
	centerY float64
}

// assembleWords joins the per-fragment text draws of one row back into
// words. A new word starts when the horizontal gap between fragments
// exceeds a third of the font size.
func assembleWords(fragments []pdf.Text) []assembledWord {
	var words []assembledWord
	var current strings.Builder
	var startX, endX, y float64

	flush := func() {
		text := strings.TrimSpace(current.String())
		if text != "" {
			words = append(words, assembledWord{
				text:    text,
				centerX: (startX + endX) / 2,
				centerY: y,
			})
		}
		current.Reset()
	}

	for _, frag := range fragments {
		if strings.TrimSpace(frag.S) == "" {
			flush()
			continue
		}

		gap := frag.X - endX
		if current.Len() > 0 && gap > frag.FontSize/3 {
			flush()
		}
		if current.Len() == 0 {
			startX = frag.X
			y = frag.Y
		}
		current.WriteString(frag.S)
		endX = frag.X + frag.W
	}
	flush()

	return words
}

// pageSize resolves the MediaBox, walking up the page tree when the box
// is inherited from a parent node.
func pageSize(page pdf.Page) (float64, float64) {
	for v := page.V; !v.IsNull(); v = v.Key("Parent") {
		mediaBox := v.Key("MediaBox")
		if mediaBox.IsNull() || mediaBox.Len() < 4 {
			continue
		}
		width := mediaBox.Index(2).Float64() - mediaBox.Index(0).Float64()
		height := mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
		return width, height
	}
	return 0, 0
}

// ExtractImages pulls embedded page images out of a scanned PDF so they
// can be sent through OCR.
func (p *pdfProcessor) ExtractImages(pdfData []byte) ([]image.Image, error) {
	tempDir, err := os.MkdirTemp("", "pdf_images")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tempFile, err := os.CreateTemp("", "doc-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(pdfData); err != nil {
		return nil, fmt.Errorf("failed to write pdf data: %w", err)
	}
	tempFile.Close()

	conf := model.NewDefaultConfiguration()
	if err := api.ExtractImagesFile(tempFile.Name(), tempDir, nil, conf); err != nil {
		return nil, fmt.Errorf("failed to extract images: %w", err)
	}

	var images []image.Image
	files, err := os.ReadDir(tempDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp dir: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		imgPath := filepath.Join(tempDir, file.Name())
		imgFile, err := os.Open(imgPath)
		if err != nil {
			continue
		}

		img, _, err := image.Decode(imgFile)
		imgFile.Close()
		if err != nil {
			continue
		}
		images = append(images, img)
	}

	return images, nil
}
