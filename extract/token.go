package extract

import (
	"math"
	"sort"
)

// yTolerance is the vertical grouping tolerance in normalized page-height
// units. Word centers within ~1.5% of page height collapse into one row.
const yTolerance = 0.015

// PositionedToken is a single OCR word with its center position. CenterY is
// in normalized [0,1] page coordinates; CenterX is in pixel-relative units
// (normalized X multiplied by page width).
type PositionedToken struct {
	Text    string
	CenterX float64
	CenterY float64
}

// Row is one logical table row assembled from vertically adjacent tokens.
type Row struct {
	Tokens   []string
	AvgX     float64
	AvgY     float64
	Section  string
	IsHeader bool
}

// BuildRows groups positioned tokens into rows by a quantized vertical key,
// orders rows top-of-page first, and sorts tokens within a row left to
// right by horizontal center. An empty token set yields zero rows.
func BuildRows(tokens []PositionedToken) []Row {
	grouped := make(map[int][]PositionedToken)
	for _, tok := range tokens {
		key := int(math.Round(tok.CenterY / yTolerance))
		grouped[key] = append(grouped[key], tok)
	}

	keys := make([]int, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	rows := make([]Row, 0, len(keys))
	for _, k := range keys {
		words := grouped[k]
		sort.SliceStable(words, func(i, j int) bool {
			return words[i].CenterX < words[j].CenterX
		})

		row := Row{Tokens: make([]string, 0, len(words))}
		var sumX, sumY float64
		for _, w := range words {
			row.Tokens = append(row.Tokens, w.Text)
			sumX += w.CenterX
			sumY += w.CenterY
		}
		if n := float64(len(words)); n > 0 {
			row.AvgX = sumX / n
			row.AvgY = sumY / n
		}
		rows = append(rows, row)
	}

	return rows
}
