package imposer

import "github.com/ukaji3/booklet-go/pkg/booklet/models"

// LandscapeRotation is the rotation applied to every page in landscape mode.
const LandscapeRotation = 90

// SheetSize returns the output sheet size for the given page size and n-up value.
func SheetSize(pageWidth, pageHeight float64, pagesPerSheet int) (width, height float64) {
	if pagesPerSheet == 4 {
		return 2 * pageWidth, 2 * pageHeight
	}
	return 2 * pageWidth, pageHeight
}

// Origin returns the lower-left corner of slot position pos on a sheet.
func Origin(pos, pagesPerSheet int, pageWidth, pageHeight float64) (x, y float64) {
	if pagesPerSheet == 4 {
		switch pos {
		case 0:
			return 0, pageHeight
		case 1:
			return pageWidth, pageHeight
		case 2:
			return 0, 0
		default:
			return pageWidth, 0
		}
	}
	if pos == 0 {
		return 0, 0
	}
	return pageWidth, 0
}

// Layout assigns a quadrant to every slot of a sheet side.
func Layout(slots []models.Slot, pagesPerSheet int, landscape bool, pageWidth, pageHeight float64) []models.Placement {
	placements := make([]models.Placement, len(slots))
	for pos, slot := range slots {
		x, y := Origin(pos, pagesPerSheet, pageWidth, pageHeight)
		p := models.Placement{Slot: slot, X: x, Y: y, W: pageWidth, H: pageHeight}
		if landscape {
			p.Rotation = LandscapeRotation
		}
		placements[pos] = p
	}
	return placements
}
