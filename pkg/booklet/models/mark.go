package models

// MarkKind identifies what a text mark decorates.
type MarkKind string

const (
	MarkPageNumber MarkKind = "page_number"
	MarkWatermark  MarkKind = "watermark"
	MarkBackCover  MarkKind = "back_cover"
)

// Align is the horizontal anchoring of a text mark relative to X.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// Color is an 8-bit RGB color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// TextMark is a piece of text drawn on a sheet side.
type TextMark struct {
	// Kind is the decoration this mark belongs to.
	Kind MarkKind `json:"kind"`
	// Text is the content to draw.
	Text string `json:"text"`
	// X is the anchor position; see Align.
	X float64 `json:"x"`
	// Y is the baseline position from the bottom sheet edge.
	Y float64 `json:"y"`
	// Size is the font size in points.
	Size float64 `json:"size"`
	// Opacity is in [0, 1]; 1 is fully opaque.
	Opacity float64 `json:"opacity"`
	// Align anchors the text at X.
	Align Align `json:"align"`
	// Color is the fill color.
	Color Color `json:"color"`
}
