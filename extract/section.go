package extract

import "strings"

// ClassifySections tags each row as header or data and threads the running
// section context top to bottom. A row is a header iff any of its tokens
// contains a header keyword, case-insensitively. Every row is stamped with
// the section in force when it is visited; the initial section is "main".
func ClassifySections(rows []Row, cfg *ReportConfig) {
	for i := range rows {
		rows[i].IsHeader = isHeaderRow(rows[i].Tokens, cfg.HeaderKeywords)
	}

	currentSection := "main"
	for i := range rows {
		if rows[i].IsHeader {
			currentSection = strings.Join(rows[i].Tokens, " ")
		}
		rows[i].Section = currentSection
	}
}

func isHeaderRow(tokens []string, keywords []string) bool {
	for _, t := range tokens {
		lower := strings.ToLower(t)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
