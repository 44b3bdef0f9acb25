package models

// Position selects the vertical edge used for page-number labels.
type Position string

const (
	// PositionTop places labels near the top edge of the sheet.
	PositionTop Position = "top"
	// PositionBottom places labels near the bottom edge of the sheet.
	PositionBottom Position = "bottom"
)

// Decoration holds the per-section toggles for ordering and sheet decorations.
type Decoration struct {
	// PageNumbers enables a page-number label on the front of each sheet.
	PageNumbers bool `json:"page_numbers"`
	// PageNumberPosition is the label edge; empty means bottom.
	PageNumberPosition Position `json:"page_number_position,omitempty"`
	// BackCover appends a single-face cover sheet after the content sheets.
	BackCover bool `json:"back_cover"`
	// BackCoverText is the cover text; the section title is used when empty.
	BackCoverText string `json:"back_cover_text,omitempty"`
	// BackFlipping reorders back sides for short-edge duplex turning.
	BackFlipping bool `json:"back_flipping"`
	// Landscape rotates every placed page by 90 degrees.
	Landscape bool `json:"landscape"`
	// RTL leads front sides with the first page for right-to-left reading.
	RTL bool `json:"rtl"`
	// Watermark enables the low-opacity watermark on every sheet side.
	Watermark bool `json:"watermark"`
	// WatermarkText is the watermark content.
	WatermarkText string `json:"watermark_text,omitempty"`
}

// Section is an inclusive, 1-based page range imposed as its own booklet.
type Section struct {
	// Title names the section and its output unit.
	Title string `json:"title"`
	// StartPage is the first page (1-based, inclusive).
	StartPage int `json:"start_page"`
	// EndPage is the last page (1-based, inclusive).
	EndPage int `json:"end_page"`
	// Decoration configures ordering and decorations for this section.
	Decoration Decoration `json:"decoration"`
}

// Len returns the number of logical pages in the section.
func (s Section) Len() int {
	if s.EndPage < s.StartPage {
		return 0
	}
	return s.EndPage - s.StartPage + 1
}
