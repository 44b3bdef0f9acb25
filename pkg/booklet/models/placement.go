package models

// Placement positions one slot on a sheet side.
// Coordinates are in points with the origin at the lower-left sheet corner.
type Placement struct {
	// Slot is the page (or blank filler) drawn at this position.
	Slot Slot `json:"slot"`
	// X is the left edge of the page image.
	X float64 `json:"x"`
	// Y is the bottom edge of the page image.
	Y float64 `json:"y"`
	// W is the page image width.
	W float64 `json:"w"`
	// H is the page image height.
	H float64 `json:"h"`
	// Rotation is the counter-clockwise rotation in degrees around (X, Y).
	Rotation float64 `json:"rotation,omitempty"`
}
