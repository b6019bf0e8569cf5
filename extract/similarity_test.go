package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	assert.Equal(t, 100, ratio("haemoglobin", "haemoglobin"))
	assert.Equal(t, 100, ratio("", ""))
	assert.Equal(t, 0, ratio("abc", ""))
	assert.Equal(t, 0, ratio("", "abc"))

	// one substitution in an 11-char word stays high
	assert.Greater(t, ratio("haemoglobin", "haemoglobim"), 85)
	assert.Less(t, ratio("platelets", "bilirubin"), 50)
}

func TestTokenSortRatioIsOrderInsensitive(t *testing.T) {
	assert.Equal(t, 100, tokenSortRatio("count leucocyte total", "total leucocyte count"))
	assert.Equal(t, 100, tokenSortRatio("Direct Bilirubin", "bilirubin direct"))

	// monotonicity: sharing more tokens scores higher
	some := tokenSortRatio("total bilirubin", "direct bilirubin")
	none := tokenSortRatio("total bilirubin", "platelet count")
	assert.Greater(t, some, none)
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("same", "same"))
	assert.Equal(t, 4, levenshteinDistance("", "same"))
	assert.Equal(t, 1, levenshteinDistance("sgot", "sgpt"))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}
