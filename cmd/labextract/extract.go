package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medocr/lab-report-extraction/dto"
	"github.com/medocr/lab-report-extraction/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract <doctr-export.json>",
	Short: "Extract records from a docTR JSON export",
	Long: `Extract structured records from a docTR OCR export.

The input is the JSON document docTR produces for one report image:
pages of blocks of lines of words, each word with normalized geometry.

Examples:
  labextract extract report.json
  labextract extract --type lft --trace report.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read export: %w", err)
		}

		var doc dto.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse docTR export: %w", err)
		}
		if doc.WordCount() == 0 {
			return fmt.Errorf("export contains no recognized words")
		}

		return runEngine(doc.PositionedTokens())
	},
}

func runEngine(tokens []extract.PositionedToken) error {
	cfg, err := extract.ConfigFor(reportType)
	if err != nil {
		return err
	}

	var opts []extract.Option
	if traceRuns {
		opts = append(opts, extract.WithTrace(func(ev extract.TraceEvent) {
			log.Printf("[%s/%s] section=%q label=%q alias=%q param=%q score=%d row=%s",
				ev.Stage, ev.Outcome, ev.Section, ev.Label, ev.Alias, ev.Parameter,
				ev.Score, strings.Join(ev.Row, " "))
		}))
	}

	engine := extract.New(cfg, opts...)
	records := engine.Extract(tokens)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
