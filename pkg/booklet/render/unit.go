package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"

	"github.com/ukaji3/booklet-go/pkg/booklet/models"
)

const (
	fontFamily = "Helvetica"
	pageBox    = "/MediaBox"
)

// Unit is one output PDF under construction.
// gofpdf measures y from the top edge; Unit converts from the
// bottom-left origin used by plans.
type Unit struct {
	pdf    *gofpdf.Fpdf
	imp    *gofpdi.Importer
	src    io.ReadSeeker
	tpls   map[int]int
	tr     func(string) string
	height float64
}

// NewUnit starts an empty output unit that places pages from src.
func NewUnit(src *Document) *Unit {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: 1, Ht: 1},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCreator("booklet-go", true)

	return &Unit{
		pdf:  pdf,
		imp:  gofpdi.NewImporter(),
		src:  bytes.NewReader(src.data),
		tpls: make(map[int]int),
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// NewSheet appends a sheet face of the given size; later calls draw on it.
func (u *Unit) NewSheet(width, height float64) {
	u.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: width, Ht: height})
	u.height = height
}

// Place draws a source page. Blank slots leave their quadrant empty.
func (u *Unit) Place(p models.Placement) error {
	index, ok := p.Slot.Index()
	if !ok {
		return nil
	}
	tpl, err := u.template(index)
	if err != nil {
		return err
	}
	top := u.height - p.Y - p.H
	if p.Rotation == 0 {
		u.imp.UseImportedTemplate(u.pdf, tpl, p.X, top, p.W, p.H)
		return nil
	}
	u.pdf.TransformBegin()
	u.pdf.TransformRotate(p.Rotation, p.X, u.height-p.Y)
	u.imp.UseImportedTemplate(u.pdf, tpl, p.X, top, p.W, p.H)
	u.pdf.TransformEnd()
	return nil
}

// template imports a source page once per unit. gofpdi reports parse
// failures by panicking; they are returned as errors.
func (u *Unit) template(index int) (tpl int, err error) {
	if tpl, ok := u.tpls[index]; ok {
		return tpl, nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("importing page %d: %v", index+1, r)
		}
	}()
	tpl = u.imp.ImportPageFromStream(u.pdf, &u.src, index+1, pageBox)
	u.tpls[index] = tpl
	return tpl, nil
}

// DrawText draws a text mark on the current sheet.
func (u *Unit) DrawText(m models.TextMark) {
	u.pdf.SetFont(fontFamily, "", m.Size)
	u.pdf.SetTextColor(int(m.Color.R), int(m.Color.G), int(m.Color.B))

	text := u.tr(m.Text)
	x := m.X
	if m.Align == models.AlignCenter {
		x -= u.pdf.GetStringWidth(text) / 2
	}
	if m.Opacity < 1 {
		u.pdf.SetAlpha(m.Opacity, "Normal")
		defer u.pdf.SetAlpha(1, "Normal")
	}
	u.pdf.Text(x, u.height-m.Y, text)
}

// Finalize serializes the unit to w. The unit must not be used afterwards.
func (u *Unit) Finalize(w io.Writer) error {
	if u.pdf.Err() {
		return u.pdf.Error()
	}
	return u.pdf.Output(w)
}

// Render draws every face of plan into a new unit and writes it to w.
func Render(w io.Writer, src *Document, plan *models.Plan) error {
	u := NewUnit(src)
	for _, face := range plan.Faces() {
		u.NewSheet(plan.SheetWidth, plan.SheetHeight)
		for _, p := range face.Placements {
			if err := u.Place(p); err != nil {
				return fmt.Errorf("rendering %s: %w", plan.Name, err)
			}
		}
		for _, m := range face.Marks {
			u.DrawText(m)
		}
	}
	if err := u.Finalize(w); err != nil {
		return fmt.Errorf("rendering %s: %w", plan.Name, err)
	}
	return nil
}
