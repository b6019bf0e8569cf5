package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveNameExactMatch(t *testing.T) {
	e := New(CBCConfig())

	name := e.resolveName([]string{"Haemoglobin"}, "main", nil)
	assert.Equal(t, "Haemoglobin", name)

	name = e.resolveName([]string{"WBC"}, "main", nil)
	assert.Equal(t, "Total Leucocyte Count", name)
}

func TestResolveNameSubstringMatch(t *testing.T) {
	e := New(CBCConfig())

	// OCR glued the label to stray punctuation
	name := e.resolveName([]string{"Haemoglobin:"}, "main", nil)
	assert.Equal(t, "Haemoglobin", name)

	// hyphen-insensitive
	name = e.resolveName([]string{"RDWCV"}, "main", nil)
	assert.Equal(t, "RDW-CV", name)
}

func TestResolveNameFuzzyMatch(t *testing.T) {
	e := New(CBCConfig())

	// misspelled label still lands on the right parameter
	name := e.resolveName([]string{"Haemoglobim"}, "main", nil)
	assert.Equal(t, "Haemoglobin", name)

	name = e.resolveName([]string{"Platelet", "Cout"}, "main", nil)
	assert.Equal(t, "Platelet Count", name)
}

func TestResolveNameShortLabelGuard(t *testing.T) {
	e := New(CBCConfig())

	// a 3-char garbage label must not fuzzy-match a short alias
	assert.Equal(t, "", e.resolveName([]string{"xyz"}, "main", nil))

	// but an exact short alias still resolves
	assert.Equal(t, "MCV", e.resolveName([]string{"mcv"}, "main", nil))
}

func TestResolveNameFailsBelowThreshold(t *testing.T) {
	e := New(CBCConfig())
	assert.Equal(t, "", e.resolveName([]string{"completely", "unrelated", "words"}, "main", nil))
}

func TestResolveNameSectionScope(t *testing.T) {
	e := New(CBCConfig())

	// section naming a parameter restricts the exact-match lookup to it
	name := e.resolveName([]string{"neutrophils"}, "Differential Leucocyte Count", nil)
	assert.Equal(t, "Neutrophils", name)
}

func TestParseRowGeneric(t *testing.T) {
	e := New(CBCConfig())

	rec := e.parseRow(Row{
		Tokens:  []string{"Haemoglobin", "12.5", "g/dL", "13", "-", "17"},
		Section: "main",
	})

	assert.NotNil(t, rec)
	assert.Equal(t, "Haemoglobin", rec.Parameter)
	assert.Equal(t, "12.5", rec.Value)
	assert.Equal(t, "g/dL", rec.Unit)
	assert.Equal(t, "13 to 17", rec.Range)
}

func TestParseRowMergedShape(t *testing.T) {
	e := New(CBCConfig())

	// data tokens first, orphan label after (the row merger's output order)
	rec := e.parseRow(Row{Tokens: []string{"12.5", "g/dL", "Haemoglobin"}, Section: "main"})

	assert.NotNil(t, rec)
	assert.Equal(t, "Haemoglobin", rec.Parameter)
	assert.Equal(t, "12.5", rec.Value)
	assert.Equal(t, "g/dL", rec.Unit)
	assert.Equal(t, "13 - 17", rec.Range) // metadata fallback
}

func TestParseRowNoValue(t *testing.T) {
	e := New(CBCConfig())
	assert.Nil(t, e.parseRow(Row{Tokens: []string{"Haemoglobin"}, Section: "main"}))
	assert.Nil(t, e.parseRow(Row{Tokens: []string{}, Section: "main"}))
}

func TestParseRowUnresolvableLabelIsSilentSkip(t *testing.T) {
	e := New(CBCConfig())
	assert.Nil(t, e.parseRow(Row{Tokens: []string{"Gibberish", "Garble", "42"}, Section: "main"}))
}
