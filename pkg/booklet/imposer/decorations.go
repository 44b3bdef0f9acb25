package imposer

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/ukaji3/booklet-go/pkg/booklet/models"
)

const (
	// PageNumberMargin is the distance of page-number baselines from the sheet edge.
	PageNumberMargin = 20
	// PageNumberSize is the page-number font size in points.
	PageNumberSize = 12
	// BackCoverSize is the back-cover font size in points.
	BackCoverSize = 24
	// WatermarkOpacity is the watermark fill opacity.
	WatermarkOpacity = 0.2

	watermarkSizeDivisor = 40
	watermarkCharWidth   = 0.6
)

var (
	black = models.Color{}
	gray  = models.Color{R: 128, G: 128, B: 128}
)

// PageNumber returns the label value for the front side whose first slot sits
// at frontStart in the section's flat slot order.
func PageNumber(frontStart, pagesPerSheet int) int {
	return frontStart/pagesPerSheet + 1
}

// PageNumberMark places a page-number label centered on the sheet.
func PageNumberMark(number int, pos models.Position, sheetWidth, sheetHeight float64) models.TextMark {
	y := float64(PageNumberMargin)
	if pos == models.PositionTop {
		y = sheetHeight - PageNumberMargin
	}
	return models.TextMark{
		Kind:    models.MarkPageNumber,
		Text:    strconv.Itoa(number),
		X:       sheetWidth / 2,
		Y:       y,
		Size:    PageNumberSize,
		Opacity: 1,
		Align:   models.AlignCenter,
		Color:   black,
	}
}

// WatermarkMark places watermark text near the lower-right sheet corner.
// Text width is estimated at 0.6 em per character.
func WatermarkMark(text string, sheetWidth, sheetHeight float64) models.TextMark {
	size := math.Min(sheetWidth, sheetHeight) / watermarkSizeDivisor
	textWidth := float64(utf8.RuneCountInString(text)) * size * watermarkCharWidth
	return models.TextMark{
		Kind:    models.MarkWatermark,
		Text:    text,
		X:       sheetWidth - textWidth - 2*size,
		Y:       2 * size,
		Size:    size,
		Opacity: WatermarkOpacity,
		Align:   models.AlignLeft,
		Color:   gray,
	}
}

// BackCover returns the single-face cover sheet for a section.
func BackCover(title, text string, sheetWidth, sheetHeight float64) models.SheetSide {
	if text == "" {
		text = title
	}
	return models.SheetSide{
		Marks: []models.TextMark{{
			Kind:    models.MarkBackCover,
			Text:    text,
			X:       sheetWidth / 2,
			Y:       sheetHeight / 2,
			Size:    BackCoverSize,
			Opacity: 1,
			Align:   models.AlignCenter,
			Color:   black,
		}},
	}
}
