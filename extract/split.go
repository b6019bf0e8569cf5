package extract

import "strings"

// Bounded-window sizes for value/range/unit recovery around a matched alias
// span. Windows are small constants so unrelated trailing text on the same
// visual row cannot be claimed by an earlier parameter. The range window
// runs from the alias span to just past the value, so a reference range
// printed after the result column is still in reach.
const (
	valueWindow = 4
	rangeWindow = 4
	unitWindow  = 3
)

// aliasTriple is one alias prepared for positional span matching.
type aliasTriple struct {
	name   string
	alias  string   // lowercased, space-joined
	tokens []string // lowercased alias words
}

// buildTriples flattens the alias table into span-matchable triples sorted
// by descending token count, so multi-word aliases win over single-word
// ones at the same position. The sort is stable: ties keep table order.
func buildTriples(cfg *ReportConfig) []aliasTriple {
	triples := make([]aliasTriple, 0, len(cfg.Parameters)*4)
	for _, p := range cfg.Parameters {
		for _, a := range p.Aliases {
			lower := strings.ToLower(a)
			triples = append(triples, aliasTriple{
				name:   p.Name,
				alias:  lower,
				tokens: strings.Fields(lower),
			})
		}
	}
	// insertion sort keeps the ordering stable without pulling in sort.SliceStable
	for i := 1; i < len(triples); i++ {
		for j := i; j > 0 && len(triples[j].tokens) > len(triples[j-1].tokens); j-- {
			triples[j], triples[j-1] = triples[j-1], triples[j]
		}
	}
	return triples
}

// splitRow walks a row's tokens left to right, greedily matching known
// aliases and recovering value/unit/range for each through bounded-window
// search. A single row can yield several records (multi-parameter rows) or
// none. A matched alias without a recoverable numeric value is discarded,
// but the cursor still moves past the span so the same tokens are not
// rematched.
func (e *Engine) splitRow(row Row) []Record {
	tokens := row.Tokens
	var results []Record

	i := 0
	for i < len(tokens) {
		bestScore := 0
		var best aliasTriple
		bestEnd := -1

		for _, tr := range e.triples {
			n := len(tr.tokens)
			if n == 0 || i+n > len(tokens) {
				continue
			}
			if score := spanScore(tokens[i:i+n], tr.alias); score > bestScore {
				bestScore = score
				best = tr
				bestEnd = i + n
			}
		}

		if bestScore < spanMatchThreshold {
			i++
			continue
		}

		end := bestEnd
		e.trace(TraceEvent{
			Stage: "split", Outcome: "accepted",
			Row: tokens, Label: strings.Join(tokens[i:end], " "),
			Alias: best.alias, Parameter: best.name,
			Score: bestScore, Section: row.Section,
		})

		value, valueIdx := findValue(tokens, end)
		if value == "" {
			e.trace(TraceEvent{
				Stage: "split", Outcome: "no-value",
				Row: tokens, Alias: best.alias, Parameter: best.name,
				Section: row.Section,
			})
			i = end
			continue
		}

		rng, _ := findRange(strings.Join(tokens[end:minOf2(valueIdx+1+rangeWindow, len(tokens))], " "))
		unit := findUnit(tokens, valueIdx+1, valueIdx+1+unitWindow, e.cfg)

		rec := Record{Parameter: best.name, Value: value, Unit: unit, Range: rng}
		e.backfill(&rec)
		results = append(results, rec)

		i = valueIdx + 1
	}

	return results
}

// spanScore compares a token span against an alias, taking the best of a
// direct comparison, a colon-stripped one (OCR likes to insert colons), and
// a reversed-token-order one (OCR sometimes transposes adjacent words).
func spanScore(span []string, alias string) int {
	lowered := make([]string, len(span))
	for i, t := range span {
		lowered[i] = strings.ToLower(t)
	}

	direct := ratio(strings.Join(lowered, " "), alias)

	joined := ratio(strings.ReplaceAll(strings.Join(lowered, " "), ":", ""), alias)
	if joined > direct {
		direct = joined
	}

	reversed := make([]string, len(lowered))
	for i, t := range lowered {
		reversed[len(lowered)-1-i] = t
	}
	if rev := ratio(strings.Join(reversed, " "), alias); rev > direct {
		direct = rev
	}

	return direct
}

// findValue returns the first numeric token at or after start, preferring
// the small bounded window and only then scanning the remainder of the row.
func findValue(tokens []string, start int) (string, int) {
	limit := minOf2(start+valueWindow, len(tokens))
	for j := start; j < limit; j++ {
		if isNumeric(tokens[j]) {
			return tokens[j], j
		}
	}
	for j := limit; j < len(tokens); j++ {
		if isNumeric(tokens[j]) {
			return tokens[j], j
		}
	}
	return "", -1
}

func minOf2(a, b int) int {
	if a < b {
		return a
	}
	return b
}
