package service

import (
	"image"
	"log"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// BarcodeService reads the sample identifier printed on lab reports.
// Labs encode it either as a QR code or a Code 128 strip near the header.
type BarcodeService struct {
	readers []gozxing.Reader
}

func NewBarcodeService() *BarcodeService {
	return &BarcodeService{
		readers: []gozxing.Reader{
			qrcode.NewQRCodeReader(),
			oned.NewCode128Reader(),
		},
	}
}

// ExtractSampleID scans the image for a barcode and returns its payload.
// A report without a barcode is normal, so the empty string is returned
// instead of an error when nothing decodes.
func (s *BarcodeService) ExtractSampleID(img image.Image) string {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		log.Printf("failed to create binary bitmap: %v", err)
		return ""
	}

	for _, reader := range s.readers {
		result, err := reader.Decode(bmp, nil)
		if err != nil {
			continue
		}

		sampleID := strings.TrimSpace(result.GetText())
		if sampleID != "" {
			log.Printf("decoded sample ID from barcode (%d bytes)", len(sampleID))
			return sampleID
		}
	}

	return ""
}
