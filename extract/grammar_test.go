package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericLiteral(t *testing.T) {
	assert.True(t, isNumeric("55"))
	assert.True(t, isNumeric("12.5"))
	assert.True(t, isNumeric("12,345.6"))
	assert.True(t, isNumeric("150,000"))

	assert.False(t, isNumeric("12.3.4"))
	assert.False(t, isNumeric("abc"))
	assert.False(t, isNumeric("-5"))
	assert.False(t, isNumeric("1e3"))
	assert.False(t, isNumeric(""))
}

func TestRangeNormalization(t *testing.T) {
	for _, raw := range []string{"40-80", "40 - 80", "40–80", "40 to 80"} {
		rng, ok := findRange(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, "40 to 80", rng, raw)
	}

	rng, ok := findRange("0.1 - 1.2")
	assert.True(t, ok)
	assert.Equal(t, "0.1 to 1.2", rng)

	_, ok = findRange("no numbers here")
	assert.False(t, ok)
}

func TestFindUnitPrefersTwoTokenSpan(t *testing.T) {
	cfg := CBCConfig()

	// "x" "10³/µL" is one unit OCR'd as two words
	unit := findUnit([]string{"8000", "x", "10³/µL"}, 1, 3, cfg)
	assert.Equal(t, "x10³/µL", unit)

	unit = findUnit([]string{"12.5", "g/dL", "13"}, 1, 3, cfg)
	assert.Equal(t, "g/dL", unit)
}

func TestFindUnitCanonicalCasing(t *testing.T) {
	cfg := CBCConfig()

	// OCR reads fL as "fl"; the closed-set match restores canonical casing
	assert.Equal(t, "fL", findUnit([]string{"88", "fl"}, 1, 2, cfg))
	assert.Equal(t, "%", findUnit([]string{"55", "%"}, 1, 2, cfg))
	assert.Equal(t, "", findUnit([]string{"55", "bogus"}, 1, 2, cfg))
}

func TestNormalizeUnitRepairsOCRConfusions(t *testing.T) {
	cfg := LFTConfig()

	assert.Equal(t, "mg/dL", normalizeUnit("mgidl", cfg))
	assert.Equal(t, "mg/dL", normalizeUnit("mg/di", cfg))
	assert.Equal(t, "g/dL", normalizeUnit("gldi", cfg))
	assert.Equal(t, "U/L", normalizeUnit("uai", cfg))
	assert.Equal(t, "U/L", normalizeUnit("IU/L", cfg))

	// unknown units pass through untouched
	assert.Equal(t, "furlongs", normalizeUnit("furlongs", cfg))
	assert.Equal(t, "", normalizeUnit("", cfg))
}
