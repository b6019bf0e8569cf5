package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/medocr/lab-report-extraction/dto"
)

// DoctrClient talks to the docTR serving endpoint, the primary OCR engine.
// It sends one image and receives the word-level export with geometry,
// which is what the extraction engine needs; plain-text OCR is only a
// fallback (see TesseractClient).
type DoctrClient struct {
	apiURL     string
	httpClient *http.Client
}

// NewDoctrClient creates a client for the docTR OCR API.
func NewDoctrClient(apiURL string) *DoctrClient {
	return &DoctrClient{
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// AnalyzeImage runs OCR over one image and returns the structured document.
func (c *DoctrClient) AnalyzeImage(ctx context.Context, imageBytes []byte) (*dto.Document, error) {
	payload := map[string]interface{}{
		"image": base64.StdEncoding.EncodeToString(imageBytes),
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call docTR API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("docTR API returned status %d: %s", resp.StatusCode, string(body))
	}

	var doc dto.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode docTR response: %w", err)
	}

	if doc.WordCount() == 0 {
		return nil, fmt.Errorf("docTR recognized no words in image")
	}

	log.Printf("docTR recognized %d words across %d pages", doc.WordCount(), len(doc.Pages))
	return &doc, nil
}
