package imposer

import "github.com/ukaji3/booklet-go/pkg/booklet/models"

// Order selects the slot ordering variant of the sweep.
type Order struct {
	// RTL leads front sides with the low (left) pointer.
	RTL bool
	// BackFlipping swaps the two halves of every back side.
	BackFlipping bool
}

// Sequence sweeps the padded range from both ends and returns the sheet sides
// in emission order: front and back of the outermost sheet first.
func Sequence(r Range, o Order) []models.SheetSide {
	order := sweep(r.Padded, r.PagesPerSheet, o)
	if len(order) == 0 {
		return nil
	}
	sides := make([]models.SheetSide, 0, len(order)/r.PagesPerSheet)
	for i := 0; i < len(order); i += r.PagesPerSheet {
		slots := make([]models.Slot, r.PagesPerSheet)
		for j, local := range order[i : i+r.PagesPerSheet] {
			slots[j] = r.Slot(local)
		}
		sides = append(sides, models.SheetSide{Slots: slots})
	}
	return sides
}

// Slot converts local index i into a slot.
func (r Range) Slot(i int) models.Slot {
	if r.IsBlank(i) {
		return models.Blank
	}
	return models.Source(r.Offset + i)
}

// sweep returns the flat local-index order for a padded count.
func sweep(padded, pagesPerSheet int, o Order) []int {
	order := make([]int, 0, padded)
	left, right := 0, padded-1
	for left < right {
		switch pagesPerSheet {
		case 2:
			order = append(order, front2(left, right, o)...)
			order = append(order, back2(left, right, o)...)
		case 4:
			order = append(order, front4(left, right, o)...)
			order = append(order, back4(left, right, o)...)
		default:
			return nil
		}
		left += pagesPerSheet
		right -= pagesPerSheet
	}
	return order
}

func front2(left, right int, o Order) []int {
	if o.RTL {
		return []int{left, right}
	}
	return []int{right, left}
}

func back2(left, right int, o Order) []int {
	if o.BackFlipping {
		return []int{left + 1, right - 1}
	}
	return []int{right - 1, left + 1}
}

func front4(left, right int, o Order) []int {
	if o.RTL {
		return []int{left, left + 1, right, right - 1}
	}
	return []int{right, right - 1, left, left + 1}
}

// back4 does not depend on RTL.
func back4(left, right int, o Order) []int {
	if o.BackFlipping {
		return []int{left + 2, left + 3, right - 2, right - 3}
	}
	return []int{right - 2, right - 3, left + 2, left + 3}
}
