package main

import (
	"github.com/spf13/cobra"
)

var (
	reportType string
	traceRuns  bool
)

var rootCmd = &cobra.Command{
	Use:   "labextract",
	Short: "Extract structured records from OCR'd lab reports",
	Long: `labextract turns OCR output from clinical lab reports into structured
parameter records (name, value, unit, reference range).

It reads either a docTR JSON export or a digital PDF with a text layer,
and supports complete blood count (cbc) and liver function test (lft)
report layouts.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&reportType, "type", "t", "cbc", "report type: cbc or lft",
	)
	rootCmd.PersistentFlags().BoolVar(
		&traceRuns, "trace", false, "log resolver and splitter decisions to stderr",
	)

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(pdfCmd)
}
