package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySections(t *testing.T) {
	cfg := CBCConfig()
	rows := []Row{
		{Tokens: []string{"Haemoglobin", "12.5"}},
		{Tokens: []string{"Differential", "Leucocyte", "Count"}},
		{Tokens: []string{"Neutrophils", "55"}},
		{Tokens: []string{"Lymphocytes", "35"}},
	}

	ClassifySections(rows, cfg)

	assert.False(t, rows[0].IsHeader)
	assert.Equal(t, "main", rows[0].Section)

	assert.True(t, rows[1].IsHeader)
	assert.Equal(t, "Differential Leucocyte Count", rows[1].Section)

	assert.False(t, rows[2].IsHeader)
	assert.Equal(t, "Differential Leucocyte Count", rows[2].Section)
	assert.Equal(t, "Differential Leucocyte Count", rows[3].Section)
}

func TestClassifySectionsKeywordIsCaseInsensitiveSubstring(t *testing.T) {
	cfg := CBCConfig()
	rows := []Row{
		{Tokens: []string{"COMPLETE", "BLOOD", "COUNT"}},
		{Tokens: []string{"RBC", "4.8"}},
	}

	ClassifySections(rows, cfg)

	assert.True(t, rows[0].IsHeader)
	assert.Equal(t, "COMPLETE BLOOD COUNT", rows[1].Section)
}
