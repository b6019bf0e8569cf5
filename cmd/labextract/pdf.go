package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/medocr/lab-report-extraction/service"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf <report.pdf>",
	Short: "Extract records from a digital PDF's text layer",
	Long: `Extract structured records from a digital PDF.

Only the embedded text layer is read; scanned PDFs without one need the
OCR pipeline behind the HTTP service instead.

Examples:
  labextract pdf report.pdf
  labextract pdf --type lft report.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read pdf: %w", err)
		}

		tokens, err := service.NewPDFProcessor().ExtractPositionedWords(data)
		if err != nil {
			return fmt.Errorf("failed to read text layer: %w", err)
		}
		if len(tokens) == 0 {
			return fmt.Errorf("pdf has no text layer")
		}

		return runEngine(tokens)
	},
}
