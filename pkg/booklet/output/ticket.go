package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/booklet-go/pkg/booklet/models"
)

// SummarySheet is the name of the ticket's overview worksheet.
const SummarySheet = "Summary"

const maxSheetNameLen = 31

var (
	summaryHeader = []interface{}{"Section", "Title", "Output", "Pages", "Padded", "Blanks", "Sheets", "Sheet Width", "Sheet Height", "Back Cover"}
	slotHeader    = []interface{}{"Sheet", "Side", "Slot", "Source Page", "X", "Y", "Width", "Height", "Rotation"}
)

// WriteTicket writes an XLSX imposition ticket: a summary worksheet plus one
// worksheet per plan listing every slot with its source page and placement.
func WriteTicket(w io.Writer, plans []*models.Plan) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(SummarySheet, "A1", &summaryHeader); err != nil {
		return err
	}

	used := map[string]bool{strings.ToLower(SummarySheet): true}
	for i, plan := range plans {
		row := []interface{}{
			i + 1,
			plan.Section.Title,
			plan.Name,
			plan.Section.Len(),
			plan.PaddedCount,
			plan.BlankCount(),
			len(plan.Sheets),
			plan.SheetWidth,
			plan.SheetHeight,
			plan.BackCover != nil,
		}
		if err := setRow(f, SummarySheet, i+2, row); err != nil {
			return err
		}

		name := sheetName(plan, used)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating worksheet %q: %w", name, err)
		}
		if err := writeSlots(f, name, plan); err != nil {
			return fmt.Errorf("writing worksheet %q: %w", name, err)
		}
	}

	return f.Write(w)
}

func writeSlots(f *excelize.File, sheet string, plan *models.Plan) error {
	if err := f.SetSheetRow(sheet, "A1", &slotHeader); err != nil {
		return err
	}
	row := 2
	for n, s := range plan.Sheets {
		for _, side := range []struct {
			label string
			face  models.SheetSide
		}{{"front", s.Front}, {"back", s.Back}} {
			for pos, p := range side.face.Placements {
				values := []interface{}{n + 1, side.label, pos + 1, sourcePage(p.Slot), p.X, p.Y, p.W, p.H, p.Rotation}
				if err := setRow(f, sheet, row, values); err != nil {
					return err
				}
				row++
			}
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// sourcePage returns the 1-based page number, or "blank" for filler.
func sourcePage(slot models.Slot) interface{} {
	if idx, ok := slot.Index(); ok {
		return idx + 1
	}
	return "blank"
}

// sheetName derives a unique worksheet name within Excel's limits.
func sheetName(plan *models.Plan, used map[string]bool) string {
	base := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(plan.Section.Title))
	base = strings.Trim(base, "'")
	if base == "" {
		base = fmt.Sprintf("Section %d", plan.Index+1)
	}
	base = truncate(base, maxSheetNameLen)

	name := base
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = truncate(base, maxSheetNameLen-len(suffix)) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
