package extract

import "strings"

// MergeSplitRows repairs OCR line-splitting artifacts: a row carrying only
// numbers and punctuation immediately followed by a row carrying only a
// known label is collapsed into one logical row (data tokens first, label
// tokens after). Merging is strictly pairwise and non-overlapping; a merged
// pair advances the scan by two rows.
func MergeSplitRows(rows []Row, cfg *ReportConfig) []Row {
	aliases := cfg.aliasSet()

	merged := make([]Row, 0, len(rows))
	i := 0
	for i < len(rows) {
		if i+1 < len(rows) && isDataOnly(rows[i]) && isOrphanLabel(rows[i+1], aliases) {
			cur, nxt := rows[i], rows[i+1]
			merged = append(merged, Row{
				Tokens:  append(append([]string{}, cur.Tokens...), nxt.Tokens...),
				AvgX:    (cur.AvgX + nxt.AvgX) / 2,
				AvgY:    (cur.AvgY + nxt.AvgY) / 2,
				Section: cur.Section,
			})
			i += 2
			continue
		}
		merged = append(merged, rows[i])
		i++
	}
	return merged
}

// isDataOnly reports whether the row has at least one numeric token and no
// alphabetic token among the rest (punctuation and units only).
func isDataOnly(row Row) bool {
	hasNumber := false
	for _, t := range row.Tokens {
		if isNumeric(t) {
			hasNumber = true
			continue
		}
		if isAlphabetic(t) {
			return false
		}
	}
	return hasNumber
}

// isOrphanLabel reports whether the row has no numeric token and at least
// one token that exactly equals a known alias, case-insensitively.
func isOrphanLabel(row Row, aliases map[string]struct{}) bool {
	hasAlias := false
	for _, t := range row.Tokens {
		if isNumeric(t) {
			return false
		}
		if _, ok := aliases[strings.ToLower(t)]; ok {
			hasAlias = true
		}
	}
	return hasAlias
}
