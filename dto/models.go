package dto

// ReportType identifies which extraction configuration applies to a document.
type ReportType string

const (
	ReportTypeCBC ReportType = "cbc"
	ReportTypeLFT ReportType = "lft"
)

// Document is the OCR collaborator's export: pages of blocks of lines of
// words, every word carrying normalized [0,1] geometry. The JSON field
// names match the docTR export format.
type Document struct {
	Pages []Page `json:"pages"`
}

// Page is one OCR'd page. Dimensions is the pixel-dimensions pair of the
// source image; only the first entry is consulted, to convert horizontal
// coordinates into pixel-relative units.
type Page struct {
	Dimensions []float64 `json:"dimensions"`
	Blocks     []Block   `json:"blocks"`
}

type Block struct {
	Lines []Line `json:"lines"`
}

type Line struct {
	Words []Word `json:"words"`
}

// Word is a single recognized word. Geometry is [[x0,y0],[x1,y1]] in
// normalized page coordinates.
type Word struct {
	Value      string        `json:"value"`
	Confidence float64       `json:"confidence,omitempty"`
	Geometry   [2][2]float64 `json:"geometry"`
}

// PageWidth returns the page width used for pixel-relative conversion,
// falling back to a unit width when dimensions are missing, so extraction
// continues in normalized-coordinate space.
func (d *Document) PageWidth() float64 {
	if len(d.Pages) > 0 && len(d.Pages[0].Dimensions) > 0 && d.Pages[0].Dimensions[0] > 0 {
		return d.Pages[0].Dimensions[0]
	}
	return 1.0
}

// WordCount returns the total number of recognized words across all pages.
func (d *Document) WordCount() int {
	n := 0
	for _, p := range d.Pages {
		for _, b := range p.Blocks {
			for _, l := range b.Lines {
				n += len(l.Words)
			}
		}
	}
	return n
}

// DocumentMeta describes one file in a batch upload.
type DocumentMeta struct {
	Filename   string     `json:"filename"`
	ReportType ReportType `json:"report_type"`
}

// BatchMetadata is the metadata JSON accompanying a batch upload.
type BatchMetadata struct {
	Documents []DocumentMeta `json:"documents"`
}
