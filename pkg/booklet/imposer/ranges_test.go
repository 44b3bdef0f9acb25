package imposer

import (
	"errors"
	"testing"
)

func TestPaddedCount(t *testing.T) {
	tests := []struct {
		n             int
		pagesPerSheet int
		expected      int
	}{
		{0, 2, 0},
		{1, 2, 4},
		{4, 2, 4},
		{5, 2, 8},
		{8, 2, 8},
		{1, 4, 8},
		{8, 4, 8},
		{9, 4, 16},
		{17, 4, 24},
	}

	for _, tt := range tests {
		result := PaddedCount(tt.n, tt.pagesPerSheet)
		if result != tt.expected {
			t.Errorf("PaddedCount(%d, %d) = %d, expected %d",
				tt.n, tt.pagesPerSheet, result, tt.expected)
		}
	}
}

func TestRangeCounts(t *testing.T) {
	for _, pps := range []int{2, 4} {
		for n := 0; n <= 40; n++ {
			r := NewRange(0, n, pps)
			g := GroupSize(pps)
			if r.Padded%g != 0 || r.Padded < n || r.Padded-n >= g {
				t.Fatalf("n=%d pps=%d: padded %d is not the next multiple of %d", n, pps, r.Padded, g)
			}
			if r.Blanks() != r.Padded-n {
				t.Errorf("n=%d pps=%d: blanks = %d, expected %d", n, pps, r.Blanks(), r.Padded-n)
			}
			if r.SideCount() != r.Padded/pps {
				t.Errorf("n=%d pps=%d: sides = %d, expected %d", n, pps, r.SideCount(), r.Padded/pps)
			}
			if r.SheetCount() != r.SideCount()/2 {
				t.Errorf("n=%d pps=%d: sheets = %d, expected %d", n, pps, r.SheetCount(), r.SideCount()/2)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name          string
		start, end    int
		pageCount     int
		pagesPerSheet int
		wantErr       error
		wantOffset    int
		wantCount     int
		wantPadded    int
	}{
		{"whole document", 1, 5, 5, 2, nil, 0, 5, 8},
		{"inner range", 3, 6, 10, 4, nil, 2, 4, 8},
		{"single page", 7, 7, 7, 2, nil, 6, 1, 4},
		{"start after end", 4, 3, 10, 2, ErrInvalidRange, 0, 0, 0},
		{"start below one", 0, 3, 10, 2, ErrInvalidRange, 0, 0, 0},
		{"end past document", 2, 11, 10, 2, ErrInvalidRange, 0, 0, 0},
		{"empty document", 1, 1, 0, 2, ErrEmptyDocument, 0, 0, 0},
		{"three up", 1, 3, 3, 3, ErrPagesPerSheet, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Normalize(tt.start, tt.end, tt.pageCount, tt.pagesPerSheet)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Normalize error = %v, expected %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if r.Offset != tt.wantOffset || r.Count != tt.wantCount || r.Padded != tt.wantPadded {
				t.Errorf("Normalize = %+v, expected offset=%d count=%d padded=%d",
					r, tt.wantOffset, tt.wantCount, tt.wantPadded)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	r := NewRange(10, 5, 2)
	for i := 0; i < r.Padded; i++ {
		if got := r.IsBlank(i); got != (i >= 5) {
			t.Errorf("IsBlank(%d) = %v", i, got)
		}
	}
	if idx, ok := r.Slot(4).Index(); !ok || idx != 14 {
		t.Errorf("Slot(4) = %v, expected source 14", r.Slot(4))
	}
	if !r.Slot(5).IsBlank() {
		t.Errorf("Slot(5) = %v, expected blank", r.Slot(5))
	}
}
