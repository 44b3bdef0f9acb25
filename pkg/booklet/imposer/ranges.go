package imposer

import "fmt"

// Range is a section's page range padded to a whole number of sheets.
// Local indices run from 0 to Padded-1; indices at or past Count are blank.
type Range struct {
	// Offset is the 0-based source index of local index 0.
	Offset int
	// Count is the number of logical pages.
	Count int
	// PagesPerSheet is the n-up value.
	PagesPerSheet int
	// Padded is Count rounded up to a multiple of the sheet group size.
	Padded int
}

// GroupSize returns the number of pages consumed by one sheet (both sides).
func GroupSize(pagesPerSheet int) int {
	return pagesPerSheet * 2
}

// PaddedCount rounds n up to a multiple of the sheet group size.
func PaddedCount(n, pagesPerSheet int) int {
	if n <= 0 {
		return 0
	}
	g := GroupSize(pagesPerSheet)
	return (n + g - 1) / g * g
}

// ValidPagesPerSheet reports whether n is a supported n-up value.
func ValidPagesPerSheet(n int) bool {
	return n == 2 || n == 4
}

// NewRange builds a padded range of count pages starting at source index offset.
func NewRange(offset, count, pagesPerSheet int) Range {
	if count < 0 {
		count = 0
	}
	return Range{
		Offset:        offset,
		Count:         count,
		PagesPerSheet: pagesPerSheet,
		Padded:        PaddedCount(count, pagesPerSheet),
	}
}

// Normalize validates 1-based inclusive bounds against the document page
// count and returns the padded range.
func Normalize(startPage, endPage, pageCount, pagesPerSheet int) (Range, error) {
	if !ValidPagesPerSheet(pagesPerSheet) {
		return Range{}, fmt.Errorf("%w: got %d", ErrPagesPerSheet, pagesPerSheet)
	}
	if pageCount <= 0 {
		return Range{}, ErrEmptyDocument
	}
	if startPage < 1 || endPage > pageCount || startPage > endPage {
		return Range{}, fmt.Errorf("%w: pages %d-%d of %d", ErrInvalidRange, startPage, endPage, pageCount)
	}
	return NewRange(startPage-1, endPage-startPage+1, pagesPerSheet), nil
}

// IsBlank reports whether local index i is filler.
func (r Range) IsBlank(i int) bool {
	return i >= r.Count
}

// Blanks returns the number of filler pages.
func (r Range) Blanks() int {
	return r.Padded - r.Count
}

// SideCount returns the number of sheet sides the range occupies.
func (r Range) SideCount() int {
	if r.PagesPerSheet == 0 {
		return 0
	}
	return r.Padded / r.PagesPerSheet
}

// SheetCount returns the number of physical sheets.
func (r Range) SheetCount() int {
	return r.SideCount() / 2
}
