package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeSplitRows(t *testing.T) {
	cfg := CBCConfig()
	rows := []Row{
		{Tokens: []string{"12.5", "g/dL"}, Section: "main", AvgX: 100, AvgY: 0.1},
		{Tokens: []string{"Haemoglobin"}, Section: "main", AvgX: 50, AvgY: 0.12},
		{Tokens: []string{"Platelets", "250000"}, Section: "main"},
	}

	merged := MergeSplitRows(rows, cfg)

	assert.Len(t, merged, 2)
	assert.Equal(t, []string{"12.5", "g/dL", "Haemoglobin"}, merged[0].Tokens)
	assert.Equal(t, "main", merged[0].Section)
	assert.InDelta(t, 75, merged[0].AvgX, 1e-9)
	assert.InDelta(t, 0.11, merged[0].AvgY, 1e-9)
	assert.Equal(t, []string{"Platelets", "250000"}, merged[1].Tokens)
}

func TestMergeIsPairwiseAndNonOverlapping(t *testing.T) {
	cfg := CBCConfig()
	rows := []Row{
		{Tokens: []string{"12.5"}},
		{Tokens: []string{"Haemoglobin"}},
		{Tokens: []string{"Platelets"}}, // second orphan label must not join the pair
	}

	merged := MergeSplitRows(rows, cfg)

	assert.Len(t, merged, 2)
	assert.Equal(t, []string{"12.5", "Haemoglobin"}, merged[0].Tokens)
	assert.Equal(t, []string{"Platelets"}, merged[1].Tokens)
}

func TestMergeSkipsRowsWithAlphabeticData(t *testing.T) {
	cfg := CBCConfig()

	// "Adequate" makes the first row a normal data row, not data-only
	rows := []Row{
		{Tokens: []string{"12.5", "Adequate"}},
		{Tokens: []string{"Haemoglobin"}},
	}

	merged := MergeSplitRows(rows, cfg)
	assert.Len(t, merged, 2)
}

func TestMergeRequiresKnownAliasInLabelRow(t *testing.T) {
	cfg := CBCConfig()
	rows := []Row{
		{Tokens: []string{"12.5", "g/dL"}},
		{Tokens: []string{"Unrelated", "Text"}},
	}

	merged := MergeSplitRows(rows, cfg)
	assert.Len(t, merged, 2)
}
