package models

// SheetSide is one printable face of a physical sheet.
type SheetSide struct {
	// Slots holds pagesPerSheet slots in layout order.
	Slots []Slot `json:"slots"`
	// Placements positions each slot, parallel to Slots.
	Placements []Placement `json:"placements,omitempty"`
	// Marks holds the text decorations drawn after the pages.
	Marks []TextMark `json:"marks,omitempty"`
}

// Sheet is a front/back pair forming one foldable unit.
type Sheet struct {
	// Front is printed first.
	Front SheetSide `json:"front"`
	// Back is printed on the reverse of Front.
	Back SheetSide `json:"back"`
}
