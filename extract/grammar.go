package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// numberRe matches a bare numeric literal: digits with optional thousands
// commas and an optional decimal part. No sign, no exponent.
var numberRe = regexp.MustCompile(`^\d{1,3}(?:,\d{3})*(?:\.\d+)?$`)

// rangeRe matches a reference range: two numbers joined by a hyphen,
// en-dash, or the word "to".
var rangeRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:-|–|to)\s*(\d+(?:\.\d+)?)`)

// isNumeric reports whether tok is a numeric literal token.
func isNumeric(tok string) bool {
	return numberRe.MatchString(tok)
}

// looksLikeRange reports whether tok alone contains a range pattern.
func looksLikeRange(tok string) bool {
	return rangeRe.MatchString(tok)
}

// findRange searches text for a reference-range pattern and returns it in
// the normalized "<low> to <high>" form regardless of the separator glyph.
func findRange(text string) (string, bool) {
	m := rangeRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%s to %s", m[1], m[2]), true
}

// isAlphabetic reports whether every rune in tok is a letter.
func isAlphabetic(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// findUnit scans tokens[start:end) for the first 1- or 2-token span that
// matches the report type's valid-unit set, case- and space-insensitively.
// Two-token concatenations are tried first to catch units OCR'd as two
// words. The returned unit is the canonical spelling from the config.
func findUnit(tokens []string, start, end int, cfg *ReportConfig) string {
	if start < 0 {
		start = 0
	}
	if end > len(tokens) {
		end = len(tokens)
	}
	for k := start; k < end; k++ {
		if k+1 < len(tokens) {
			if u, ok := matchUnit(tokens[k]+tokens[k+1], cfg); ok {
				return u
			}
		}
		if u, ok := matchUnit(tokens[k], cfg); ok {
			return u
		}
	}
	return ""
}

// matchUnit compares a candidate token concatenation against the valid-unit
// set and returns the canonical spelling on a hit.
func matchUnit(candidate string, cfg *ReportConfig) (string, bool) {
	c := strings.ToLower(strings.ReplaceAll(candidate, " ", ""))
	for _, u := range cfg.ValidUnits {
		if c == strings.ToLower(strings.ReplaceAll(u, " ", "")) {
			return u, true
		}
	}
	return "", false
}

// normalizeUnit repairs known OCR corruptions of a unit string ("mgidl",
// "u/i", ...) using the config's ordered fix list. Unrecognized units pass
// through unchanged.
func normalizeUnit(unit string, cfg *ReportConfig) string {
	if unit == "" {
		return unit
	}
	stripped := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(unit, " ", ""), ".", ""))
	for _, fix := range cfg.UnitFixes {
		if strings.Contains(stripped, fix.Match) {
			return fix.Canonical
		}
	}
	return unit
}
