package extract

import "strings"

// resolveName maps noisy label text to a canonical parameter name using
// three tiers in strict priority order: exact match against a
// section-scoped lookup, hyphen/space-insensitive substring match over the
// full table, then fuzzy token-sort matching with a length-dependent
// acceptance threshold. Returns "" when every tier fails.
func (e *Engine) resolveName(labelTokens []string, section string, rowTokens []string) string {
	label := strings.ToLower(strings.Join(labelTokens, " "))
	joined := strings.ReplaceAll(strings.ReplaceAll(label, " ", ""), "-", "")

	scoped := e.scopedEntries(section)

	// Tier 1: exact alias match, scoped to the section when possible.
	for _, entry := range scoped {
		if entry.alias == label {
			e.trace(TraceEvent{
				Stage: "resolve", Outcome: "exact",
				Row: rowTokens, Label: label, Alias: entry.alias,
				Parameter: entry.name, Section: section,
			})
			return entry.name
		}
	}

	// Tier 2: substring match over the full table, table order breaking
	// ties. Aliases are compared space- and hyphen-stripped.
	for _, entry := range e.entries {
		stripped := strings.ReplaceAll(strings.ReplaceAll(entry.alias, " ", ""), "-", "")
		if stripped != "" && strings.Contains(joined, stripped) {
			e.trace(TraceEvent{
				Stage: "resolve", Outcome: "substring",
				Row: rowTokens, Label: label, Alias: entry.alias,
				Parameter: entry.name, Section: section,
			})
			return entry.name
		}
	}

	// Tier 3: fuzzy match. Short labels need a near-perfect score so stray
	// acronyms do not land on unrelated short aliases.
	threshold := e.cfg.FuzzyThreshold
	if len(label) <= 3 {
		threshold = shortLabelThreshold
	}

	bestScore := 0
	var best aliasEntry
	for _, entry := range scoped {
		if score := tokenSortRatio(label, entry.alias); score > bestScore {
			bestScore = score
			best = entry
		}
	}

	if bestScore >= threshold {
		e.trace(TraceEvent{
			Stage: "resolve", Outcome: "fuzzy",
			Row: rowTokens, Label: label, Alias: best.alias,
			Parameter: best.name, Score: bestScore, Section: section,
		})
		return best.name
	}

	e.trace(TraceEvent{
		Stage: "resolve", Outcome: "below-threshold",
		Row: rowTokens, Label: label, Alias: best.alias,
		Score: bestScore, Section: section,
	})
	return ""
}

// scopedEntries narrows the alias lookup to a single parameter when the
// section text names that parameter or one of its aliases; otherwise the
// full table applies.
func (e *Engine) scopedEntries(section string) []aliasEntry {
	sectionLower := strings.ToLower(section)
	for _, p := range e.cfg.Parameters {
		match := strings.Contains(sectionLower, strings.ToLower(p.Name))
		if !match {
			for _, a := range p.Aliases {
				if strings.Contains(sectionLower, strings.ToLower(a)) {
					match = true
					break
				}
			}
		}
		if match {
			scoped := make([]aliasEntry, 0, len(p.Aliases))
			for _, a := range p.Aliases {
				scoped = append(scoped, aliasEntry{alias: strings.ToLower(a), name: p.Name})
			}
			return scoped
		}
	}
	return e.entries
}

// parseRow extracts at most one record from a row. Leading numeric tokens
// are set aside, the boundary between label and data tokens is the first
// numeric token after them, and the label resolves through the three-tier
// matcher. When no numeric token follows the label but the row opened with
// one, the row is a merged data+orphan-label pair and the leading tokens
// supply the value. A row with no resolvable label or no numeric value
// anywhere yields nothing.
func (e *Engine) parseRow(row Row) *Record {
	tokens := row.Tokens
	lead := 0
	for lead < len(tokens) && (isNumeric(tokens[lead]) || looksLikeRange(tokens[lead])) {
		lead++
	}
	rest := tokens[lead:]

	boundary := -1
	for i, t := range rest {
		if isNumeric(t) {
			boundary = i
			break
		}
	}

	var labelTokens, dataTokens []string
	switch {
	case boundary >= 0:
		labelTokens = rest[:boundary]
		dataTokens = rest[boundary:]
	case lead > 0 && len(rest) > 0:
		// merged row shape: value and unit first, orphan label after
		labelTokens = rest
		dataTokens = tokens[:lead]
	default:
		return nil
	}

	name := e.resolveName(labelTokens, row.Section, row.Tokens)
	if name == "" {
		return nil
	}

	value := firstNumeric(dataTokens)
	if value == "" {
		return nil
	}

	rng, _ := findRange(strings.Join(tokens, " "))
	unit := findUnit(tokens, 0, len(tokens), e.cfg)

	rec := &Record{Parameter: name, Value: value, Unit: unit, Range: rng}
	e.backfill(rec)
	return rec
}
