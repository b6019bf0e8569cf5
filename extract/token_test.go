package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRowsGroupsByVerticalProximity(t *testing.T) {
	tokens := []PositionedToken{
		{Text: "Haemoglobin", CenterX: 50, CenterY: 0.100},
		{Text: "12.5", CenterX: 300, CenterY: 0.104}, // within tolerance of the first
		{Text: "Platelets", CenterX: 50, CenterY: 0.200},
		{Text: "250000", CenterX: 300, CenterY: 0.201},
	}

	rows := BuildRows(tokens)

	assert.Len(t, rows, 2)
	assert.Equal(t, []string{"Haemoglobin", "12.5"}, rows[0].Tokens)
	assert.Equal(t, []string{"Platelets", "250000"}, rows[1].Tokens)
}

func TestBuildRowsOrdersTopOfPageFirst(t *testing.T) {
	tokens := []PositionedToken{
		{Text: "bottom", CenterX: 10, CenterY: 0.9},
		{Text: "top", CenterX: 10, CenterY: 0.1},
		{Text: "middle", CenterX: 10, CenterY: 0.5},
	}

	rows := BuildRows(tokens)

	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"top"}, rows[0].Tokens)
	assert.Equal(t, []string{"middle"}, rows[1].Tokens)
	assert.Equal(t, []string{"bottom"}, rows[2].Tokens)
}

func TestBuildRowsSortsTokensLeftToRight(t *testing.T) {
	// emission order is right-to-left; the builder must not trust it
	tokens := []PositionedToken{
		{Text: "12.5", CenterX: 300, CenterY: 0.1},
		{Text: "Haemoglobin", CenterX: 50, CenterY: 0.1},
		{Text: "g/dL", CenterX: 400, CenterY: 0.1},
	}

	rows := BuildRows(tokens)

	assert.Len(t, rows, 1)
	assert.Equal(t, []string{"Haemoglobin", "12.5", "g/dL"}, rows[0].Tokens)
}

func TestBuildRowsComputesAverages(t *testing.T) {
	tokens := []PositionedToken{
		{Text: "a", CenterX: 100, CenterY: 0.10},
		{Text: "b", CenterX: 300, CenterY: 0.10},
	}

	rows := BuildRows(tokens)

	assert.Len(t, rows, 1)
	assert.InDelta(t, 200, rows[0].AvgX, 1e-9)
	assert.InDelta(t, 0.10, rows[0].AvgY, 1e-9)
}

func TestBuildRowsEmptyInput(t *testing.T) {
	assert.Empty(t, BuildRows(nil))
	assert.Empty(t, BuildRows([]PositionedToken{}))
}
