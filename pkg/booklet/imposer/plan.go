package imposer

import "github.com/ukaji3/booklet-go/pkg/booklet/models"

// Geometry is the uniform source page size in points.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
}

// PlanSection imposes one section: it normalizes the range, sequences the
// slots, pairs sides into sheets, lays out every side and adds decorations.
func PlanSection(section models.Section, pageCount, pagesPerSheet int, g Geometry) (*models.Plan, error) {
	r, err := Normalize(section.StartPage, section.EndPage, pageCount, pagesPerSheet)
	if err != nil {
		return nil, err
	}

	d := section.Decoration
	sheetW, sheetH := SheetSize(g.PageWidth, g.PageHeight, pagesPerSheet)
	plan := &models.Plan{
		Name:          section.Title,
		Section:       section,
		PagesPerSheet: pagesPerSheet,
		PageWidth:     g.PageWidth,
		PageHeight:    g.PageHeight,
		SheetWidth:    sheetW,
		SheetHeight:   sheetH,
		PaddedCount:   r.Padded,
	}

	sides := Sequence(r, Order{RTL: d.RTL, BackFlipping: d.BackFlipping})
	for i := range sides {
		side := &sides[i]
		side.Placements = Layout(side.Slots, pagesPerSheet, d.Landscape, g.PageWidth, g.PageHeight)
		if d.PageNumbers && i%2 == 0 {
			n := PageNumber(i*pagesPerSheet, pagesPerSheet)
			side.Marks = append(side.Marks, PageNumberMark(n, d.PageNumberPosition, sheetW, sheetH))
		}
		if d.Watermark {
			side.Marks = append(side.Marks, WatermarkMark(d.WatermarkText, sheetW, sheetH))
		}
	}

	plan.Sheets = make([]models.Sheet, 0, len(sides)/2)
	for i := 0; i+1 < len(sides); i += 2 {
		plan.Sheets = append(plan.Sheets, models.Sheet{Front: sides[i], Back: sides[i+1]})
	}

	if d.BackCover {
		cover := BackCover(section.Title, d.BackCoverText, sheetW, sheetH)
		plan.BackCover = &cover
	}
	return plan, nil
}
