package models

// Plan is the imposition result for one section, ready for rendering.
type Plan struct {
	// Index is the 0-based position of the section in the job.
	Index int `json:"index"`
	// Name is the logical output name.
	Name string `json:"name"`
	// Section is the source section.
	Section Section `json:"section"`
	// PagesPerSheet is the n-up value (2 or 4).
	PagesPerSheet int `json:"pages_per_sheet"`
	// PageWidth is the source page width in points.
	PageWidth float64 `json:"page_width"`
	// PageHeight is the source page height in points.
	PageHeight float64 `json:"page_height"`
	// SheetWidth is the output sheet width in points.
	SheetWidth float64 `json:"sheet_width"`
	// SheetHeight is the output sheet height in points.
	SheetHeight float64 `json:"sheet_height"`
	// PaddedCount is the page count after blank filler was added.
	PaddedCount int `json:"padded_count"`
	// Sheets are the content sheets in print order.
	Sheets []Sheet `json:"sheets"`
	// BackCover is the optional trailing single-face cover.
	BackCover *SheetSide `json:"back_cover,omitempty"`
}

// BlankCount returns the number of blank filler slots.
func (p *Plan) BlankCount() int {
	return p.PaddedCount - p.Section.Len()
}

// Faces returns every sheet face in emission order, back cover last.
func (p *Plan) Faces() []SheetSide {
	faces := make([]SheetSide, 0, len(p.Sheets)*2+1)
	for _, sheet := range p.Sheets {
		faces = append(faces, sheet.Front, sheet.Back)
	}
	if p.BackCover != nil {
		faces = append(faces, *p.BackCover)
	}
	return faces
}
