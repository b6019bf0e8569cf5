package dto

import "github.com/medocr/lab-report-extraction/extract"

// PositionedTokens flattens the OCR document into engine input. Vertical
// centers stay in normalized page units; horizontal centers are scaled by
// the page width so indentation is measured in pixel-relative units.
func (d *Document) PositionedTokens() []extract.PositionedToken {
	width := d.PageWidth()

	var tokens []extract.PositionedToken
	for _, page := range d.Pages {
		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				for _, w := range line.Words {
					centerX := (w.Geometry[0][0] + w.Geometry[1][0]) / 2
					centerY := (w.Geometry[0][1] + w.Geometry[1][1]) / 2
					tokens = append(tokens, extract.PositionedToken{
						Text:    w.Value,
						CenterX: centerX * width,
						CenterY: centerY,
					})
				}
			}
		}
	}
	return tokens
}
