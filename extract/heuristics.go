package extract

import "strings"

// Domain recovery heuristics for known-hard report patterns. Each heuristic
// gates itself on the config actually carrying its target parameter, so the
// engine stays report-agnostic and CBC extractions never pay for LFT rules.

// unitHints are substrings that mark a token as a probable unit when the
// closed-set match cannot apply (heuristic rows carry heavily garbled units).
var unitHints = []string{"mg", "g", "iu", "u/", "g/"}

// bilirubinRecord disambiguates Total/Direct/Indirect bilirubin rows by
// their literal parenthetical markers. For the Direct variant the marker is
// sometimes pushed onto the next visual row, so its first token is also
// consulted. Without a marker the row falls through to generic resolution.
func (e *Engine) bilirubinRecord(row Row, next *Row) *Record {
	if !e.cfg.hasParameter("Total Bilirubin") {
		return nil
	}
	if !anyTokenContains(row.Tokens, "bilirubin") {
		return nil
	}

	label := strings.ToLower(strings.Join(row.Tokens, " "))

	var param string
	switch {
	case strings.Contains(label, "(total)"):
		param = "Total Bilirubin"
	case strings.Contains(label, "(direct)"),
		strings.Contains(label, "serumi bilirubin"),
		next != nil && len(next.Tokens) > 0 && strings.Contains(strings.ToLower(next.Tokens[0]), "(direct)"):
		param = "Direct Bilirubin"
	case strings.Contains(label, "(indirect)"):
		param = "Indirect Bilirubin"
	default:
		return nil
	}

	value := firstNumeric(row.Tokens)
	if value == "" {
		return nil
	}

	rng, _ := findRange(label)
	unit := hintedUnit(row.Tokens, e.cfg)

	rec := &Record{Parameter: param, Value: value, Unit: unit, Range: rng}
	e.backfill(rec)
	e.trace(TraceEvent{
		Stage: "heuristic", Outcome: "bilirubin-variant",
		Row: row.Tokens, Parameter: param, Section: row.Section,
	})
	return rec
}

// totalProteinRecord handles serum/total protein rows, which the header
// keyword set would otherwise swallow because "protein" doubles as a
// section-title word. The value may sit on the following row.
func (e *Engine) totalProteinRecord(row Row, next *Row) *Record {
	if !e.cfg.hasParameter("Total Protein") {
		return nil
	}
	if !anyTokenContains(row.Tokens, "protein") {
		return nil
	}

	label := strings.ToLower(strings.Join(row.Tokens, " "))
	if !strings.Contains(label, "serum protein") && !strings.Contains(label, "total protein") {
		return nil
	}

	value := firstNumeric(row.Tokens)
	if value == "" && next != nil {
		value = firstNumeric(next.Tokens)
	}
	if value == "" {
		return nil
	}

	rng, _ := findRange(label)
	unit := hintedUnit(row.Tokens, e.cfg)

	rec := &Record{Parameter: "Total Protein", Value: value, Unit: unit, Range: rng}
	e.backfill(rec)
	e.trace(TraceEvent{
		Stage: "heuristic", Outcome: "total-protein",
		Row: row.Tokens, Parameter: "Total Protein", Section: row.Section,
	})
	return rec
}

// ggtLookbehind recovers GGT rows whose value landed on the previous visual
// row: a gamma-glutamyl label row with no number of its own is paired with
// an immediately preceding exact {label, number} pair.
func (e *Engine) ggtLookbehind(rows []Row, seen map[string]bool) *Record {
	if !e.cfg.hasParameter("GGT") || seen["ggt"] {
		return nil
	}

	for i, row := range rows {
		if !hasAnyUpperToken(row.Tokens, "GAMMA", "GLUTAMYL", "GGT") {
			continue
		}
		if rowHasPlainNumber(row.Tokens) {
			continue
		}
		if i == 0 {
			continue
		}
		prev := rows[i-1].Tokens
		if len(prev) != 2 || !isPlainNumber(prev[1]) {
			continue
		}

		rec := &Record{Parameter: "GGT", Value: prev[1]}
		e.backfill(rec)
		e.trace(TraceEvent{
			Stage: "heuristic", Outcome: "ggt-lookbehind",
			Row: row.Tokens, Parameter: "GGT", Section: row.Section,
		})
		return rec
	}
	return nil
}

// totalProteinsLookahead recovers a "TOTAL PROTEINS" label row whose value
// starts the following row.
func (e *Engine) totalProteinsLookahead(rows []Row, seen map[string]bool) *Record {
	if !e.cfg.hasParameter("Total Proteins") || seen["total proteins"] {
		return nil
	}

	for i, row := range rows {
		if !hasUpperToken(row.Tokens, "TOTAL") || !hasUpperToken(row.Tokens, "PROTEINS") {
			continue
		}
		if i+1 >= len(rows) {
			continue
		}
		next := rows[i+1].Tokens
		if len(next) == 0 || !isPlainNumber(next[0]) {
			continue
		}

		rec := &Record{Parameter: "Total Proteins", Value: next[0]}
		meta := e.cfg.metadataFor("Total Proteins")
		if meta == (Metadata{}) {
			meta = e.cfg.metadataFor("Total Protein")
		}
		rec.Unit = meta.Unit
		rec.Range = meta.Range
		e.trace(TraceEvent{
			Stage: "heuristic", Outcome: "total-proteins-lookahead",
			Row: row.Tokens, Parameter: "Total Proteins", Section: row.Section,
		})
		return rec
	}
	return nil
}

// isProteinRow marks rows the section classifier must not swallow: the LFT
// header keyword set intentionally includes "protein" for section titling.
func isProteinRow(row Row) bool {
	return anyTokenContains(row.Tokens, "protein")
}

func anyTokenContains(tokens []string, sub string) bool {
	for _, t := range tokens {
		if strings.Contains(strings.ToLower(t), sub) {
			return true
		}
	}
	return false
}

func hasUpperToken(tokens []string, want string) bool {
	for _, t := range tokens {
		if strings.ToUpper(t) == want {
			return true
		}
	}
	return false
}

func hasAnyUpperToken(tokens []string, wants ...string) bool {
	for _, w := range wants {
		if hasUpperToken(tokens, w) {
			return true
		}
	}
	return false
}

func firstNumeric(tokens []string) string {
	for _, t := range tokens {
		if isNumeric(t) {
			return t
		}
	}
	return ""
}

// hintedUnit pulls a probable unit token by substring hint and repairs it
// through the config's OCR-confusion fixes.
func hintedUnit(tokens []string, cfg *ReportConfig) string {
	for _, t := range tokens {
		lower := strings.ToLower(t)
		for _, hint := range unitHints {
			if strings.Contains(lower, hint) {
				return normalizeUnit(t, cfg)
			}
		}
	}
	return ""
}

// isPlainNumber accepts bare digit runs with at most one decimal point, the
// looser shape the lookbehind/lookahead heuristics were tuned against.
func isPlainNumber(tok string) bool {
	if tok == "" {
		return false
	}
	dots := 0
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
		case r == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return tok != "."
}

func rowHasPlainNumber(tokens []string) bool {
	for _, t := range tokens {
		if isPlainNumber(t) {
			return true
		}
	}
	return false
}
