package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// rowTokens lays out one visual row of words at the given vertical position,
// spacing them left to right.
func rowTokens(y float64, words ...string) []PositionedToken {
	tokens := make([]PositionedToken, 0, len(words))
	for i, w := range words {
		tokens = append(tokens, PositionedToken{Text: w, CenterX: float64(50 + i*100), CenterY: y})
	}
	return tokens
}

func TestExtractSectionScopedRow(t *testing.T) {
	e := New(CBCConfig())

	var tokens []PositionedToken
	tokens = append(tokens, rowTokens(0.10, "Differential", "Leucocyte", "Count")...)
	tokens = append(tokens, rowTokens(0.20, "Neutrophils", "55", "%", "40", "-", "80")...)

	records := e.Extract(tokens)

	assert.Len(t, records, 1)
	assert.Equal(t, "Neutrophils", records[0].Parameter)
	assert.Equal(t, "55", records[0].Value)
	assert.Equal(t, "%", records[0].Unit)
	assert.Equal(t, "40 to 80", records[0].Range)
}

func TestExtractRecoversMergedRow(t *testing.T) {
	e := New(CBCConfig())

	var tokens []PositionedToken
	tokens = append(tokens, rowTokens(0.10, "12.5", "g/dL")...)
	tokens = append(tokens, rowTokens(0.20, "Haemoglobin")...)

	records := e.Extract(tokens)

	assert.Len(t, records, 1)
	assert.Equal(t, "Haemoglobin", records[0].Parameter)
	assert.Equal(t, "12.5", records[0].Value)
	assert.Equal(t, "g/dL", records[0].Unit)
	assert.Equal(t, "13 - 17", records[0].Range) // metadata default
}

func TestExtractMultiParameterRow(t *testing.T) {
	e := New(CBCConfig())

	records := e.Extract(rowTokens(0.10, "Neutrophils", "55", "%", "Lymphocytes", "35", "%"))

	assert.Len(t, records, 2)
	assert.Equal(t, "Neutrophils", records[0].Parameter)
	assert.Equal(t, "55", records[0].Value)
	assert.Equal(t, "Lymphocytes", records[1].Parameter)
	assert.Equal(t, "35", records[1].Value)
}

func TestExtractBilirubinVariants(t *testing.T) {
	e := New(LFTConfig())

	var tokens []PositionedToken
	tokens = append(tokens, rowTokens(0.10, "Bilirubin", "(Total)", "0.9", "mg/dL")...)
	tokens = append(tokens, rowTokens(0.20, "Bilirubin", "(Direct)", "0.2", "mg/dL")...)

	records := e.Extract(tokens)

	assert.Len(t, records, 2)
	assert.Equal(t, "Total Bilirubin", records[0].Parameter)
	assert.Equal(t, "Direct Bilirubin", records[1].Parameter)
	assert.Equal(t, "0.2", records[1].Value)
}

func TestExtractDedupInvariant(t *testing.T) {
	e := New(CBCConfig())

	// the same parameter appears twice; first occurrence wins
	var tokens []PositionedToken
	tokens = append(tokens, rowTokens(0.10, "Haemoglobin", "12.5", "g/dL")...)
	tokens = append(tokens, rowTokens(0.30, "Haemoglobin", "13.1", "g/dL")...)

	records := e.Extract(tokens)

	assert.Len(t, records, 1)
	assert.Equal(t, "12.5", records[0].Value)

	seen := map[string]bool{}
	for _, r := range records {
		assert.False(t, seen[r.Parameter])
		seen[r.Parameter] = true
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	e := New(LFTConfig())

	var tokens []PositionedToken
	tokens = append(tokens, rowTokens(0.10, "LIVER", "FUNCTION", "TEST")...)
	tokens = append(tokens, rowTokens(0.20, "SGOT", "32.0", "U/L", "5", "-", "40")...)
	tokens = append(tokens, rowTokens(0.30, "SGPT", "28.5", "U/L", "7", "-", "56")...)
	tokens = append(tokens, rowTokens(0.40, "Albumin", "4.1", "g/dL")...)

	first := e.Extract(tokens)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Extract(tokens))
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	e := New(CBCConfig())

	records := e.Extract(nil)

	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestExtractObservedUnitNotOverwritten(t *testing.T) {
	e := New(CBCConfig())

	// MCHC default unit is g/dL; an observed % must survive backfill
	records := e.Extract(rowTokens(0.10, "MCHC", "33.0", "%"))

	assert.Len(t, records, 1)
	assert.Equal(t, "%", records[0].Unit)
	assert.Equal(t, "31.5 - 34.5", records[0].Range)
}

func TestExtractHeaderRowsYieldNoRecords(t *testing.T) {
	e := New(CBCConfig())

	var tokens []PositionedToken
	tokens = append(tokens, rowTokens(0.05, "COMPLETE", "BLOOD", "COUNT")...)
	tokens = append(tokens, rowTokens(0.10, "Test", "Description", "Result", "Ref.", "Range")...)

	records := e.Extract(tokens)
	assert.Empty(t, records)
}

func TestExtractGGTAndTotalProteinsRecovery(t *testing.T) {
	e := New(LFTConfig())

	var tokens []PositionedToken
	tokens = append(tokens, rowTokens(0.10, "ALP", "98")...)
	tokens = append(tokens, rowTokens(0.20, "GAMMA", "GLUTAMYL")...)
	tokens = append(tokens, rowTokens(0.30, "TOTAL", "PROTEINS")...)
	tokens = append(tokens, rowTokens(0.40, "6.8", "gm/dL")...)

	records := e.Extract(tokens)

	byName := map[string]Record{}
	for _, r := range records {
		byName[r.Parameter] = r
	}

	assert.Contains(t, byName, "ALP")
	assert.Contains(t, byName, "GGT")
	assert.Equal(t, "98", byName["GGT"].Value) // paired with the previous {label, number} row
	assert.Contains(t, byName, "Total Proteins")
	assert.Equal(t, "6.8", byName["Total Proteins"].Value)
}

func TestExtractTraceHook(t *testing.T) {
	var events []TraceEvent
	e := New(CBCConfig(), WithTrace(func(ev TraceEvent) {
		events = append(events, ev)
	}))

	e.Extract(rowTokens(0.10, "Haemoglobin", "12.5", "g/dL"))

	assert.NotEmpty(t, events)
	found := false
	for _, ev := range events {
		if ev.Stage == "split" && ev.Outcome == "accepted" && ev.Parameter == "Haemoglobin" {
			found = true
		}
	}
	assert.True(t, found)
}
