package booklet

import (
	"context"
	"errors"
	"testing"

	"github.com/ukaji3/booklet-go/pkg/booklet/models"
)

type fakeDoc struct {
	pages int
	w, h  float64
	err   error
}

func (d fakeDoc) PageCount() int { return d.pages }

func (d fakeDoc) PageSize(int) (float64, float64, error) {
	return d.w, d.h, d.err
}

func collect(plans *[]*models.Plan) EmitFunc {
	return func(plan *models.Plan) error {
		*plans = append(*plans, plan)
		return nil
	}
}

func pageNumbers(plan *models.Plan) []string {
	var out []string
	for _, sheet := range plan.Sheets {
		for _, m := range sheet.Front.Marks {
			if m.Kind == models.MarkPageNumber {
				out = append(out, m.Text)
			}
		}
	}
	return out
}

func TestImposeImplicitSection(t *testing.T) {
	opts := DefaultOptions()
	var plans []*models.Plan
	err := Impose(context.Background(), fakeDoc{pages: 5, w: 300, h: 400}, "report.pdf", opts, collect(&plans))
	if err != nil {
		t.Fatalf("Impose failed: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("Expected 1 plan, got %d", len(plans))
	}
	p := plans[0]
	if p.Name != "booklet-report.pdf" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.Section.StartPage != 1 || p.Section.EndPage != 5 {
		t.Errorf("implicit section = %d-%d, expected 1-5", p.Section.StartPage, p.Section.EndPage)
	}
	if p.PaddedCount != 8 || len(p.Sheets) != 2 {
		t.Errorf("padded = %d sheets = %d, expected 8 and 2", p.PaddedCount, len(p.Sheets))
	}
}

func TestImposeSectionsRestartNumbering(t *testing.T) {
	deco := models.Decoration{PageNumbers: true}
	opts := DefaultOptions()
	opts.Sections = []models.Section{
		{Title: "One", StartPage: 1, EndPage: 4, Decoration: deco},
		{Title: "Two", StartPage: 5, EndPage: 8, Decoration: deco},
	}

	var plans []*models.Plan
	if err := Impose(context.Background(), fakeDoc{pages: 8, w: 300, h: 400}, "doc.pdf", opts, collect(&plans)); err != nil {
		t.Fatalf("Impose failed: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("Expected 2 plans, got %d", len(plans))
	}
	for i, plan := range plans {
		if plan.Index != i {
			t.Errorf("plan %d has index %d", i, plan.Index)
		}
		numbers := pageNumbers(plan)
		if len(numbers) != 1 || numbers[0] != "1" {
			t.Errorf("plan %d page numbers = %v, expected [1]", i, numbers)
		}
	}
	if idx, _ := plans[1].Sheets[0].Front.Slots[1].Index(); idx != 4 {
		t.Errorf("second section starts at source %d, expected 4", idx)
	}
	if plans[0].Name != "One-doc.pdf" || plans[1].Name != "Two-doc.pdf" {
		t.Errorf("names = %q, %q", plans[0].Name, plans[1].Name)
	}
}

func TestImposeDuplicateTitles(t *testing.T) {
	workers := 2
	for _, w := range []*int{nil, &workers} {
		opts := DefaultOptions()
		opts.Workers = w
		opts.Sections = []models.Section{
			{Title: "Part", StartPage: 1, EndPage: 4},
			{Title: "Part", StartPage: 5, EndPage: 8},
			{Title: "part", StartPage: 1, EndPage: 8},
		}

		var plans []*models.Plan
		if err := Impose(context.Background(), fakeDoc{pages: 8, w: 1, h: 1}, "in.pdf", opts, collect(&plans)); err != nil {
			t.Fatalf("Impose failed: %v", err)
		}
		expected := []string{"Part-in.pdf", "Part-in (2).pdf", "part-in (3).pdf"}
		if len(plans) != len(expected) {
			t.Fatalf("Expected %d plans, got %d", len(expected), len(plans))
		}
		for i, plan := range plans {
			if plan.Name != expected[i] {
				t.Errorf("plan %d name = %q, expected %q", i, plan.Name, expected[i])
			}
		}
	}
}

func TestImposePartialFailure(t *testing.T) {
	opts := DefaultOptions()
	opts.Sections = []models.Section{
		{Title: "ok", StartPage: 1, EndPage: 4},
		{Title: "bad", StartPage: 6, EndPage: 12},
		{Title: "never", StartPage: 1, EndPage: 2},
	}

	var plans []*models.Plan
	p := NewProcessor(fakeDoc{pages: 8, w: 300, h: 400}, "doc.pdf", opts)
	err := p.Run(context.Background(), collect(&plans))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("Run error = %v, expected ErrInvalidRange", err)
	}

	var se *SectionError
	if !errors.As(err, &se) {
		t.Fatalf("Expected *SectionError, got %T", err)
	}
	if se.Index != 1 || se.Title != "bad" || se.StartPage != 6 || se.EndPage != 12 {
		t.Errorf("SectionError = %+v", se)
	}
	if len(plans) != 1 || plans[0].Section.Title != "ok" {
		t.Errorf("Expected the first section to stay emitted, got %d plans", len(plans))
	}
	if p.State() != StateFailed || p.Emitted() != 1 {
		t.Errorf("state = %v emitted = %d", p.State(), p.Emitted())
	}
}

func TestImposeValidation(t *testing.T) {
	sizeErr := errors.New("no media box")
	tests := []struct {
		name     string
		doc      Document
		pps      int
		expected error
	}{
		{"empty document", fakeDoc{pages: 0, w: 1, h: 1}, 2, ErrEmptyDocument},
		{"unsupported n-up", fakeDoc{pages: 4, w: 1, h: 1}, 3, ErrPagesPerSheet},
		{"unreadable size", fakeDoc{pages: 4, err: sizeErr}, 2, ErrInvalidDocument},
		{"zero size", fakeDoc{pages: 4}, 2, ErrInvalidDocument},
		{"no document", nil, 2, ErrInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.PagesPerSheet = tt.pps
			called := false
			p := NewProcessor(tt.doc, "doc.pdf", opts)
			err := p.Run(context.Background(), func(*models.Plan) error {
				called = true
				return nil
			})
			if !errors.Is(err, tt.expected) {
				t.Errorf("Run error = %v, expected %v", err, tt.expected)
			}
			if called {
				t.Errorf("emit called for an invalid job")
			}
			if p.State() != StateFailed {
				t.Errorf("state = %v, expected failed", p.State())
			}
		})
	}
}

func TestImposeEmitError(t *testing.T) {
	opts := DefaultOptions()
	opts.Sections = []models.Section{
		{Title: "a", StartPage: 1, EndPage: 2},
		{Title: "b", StartPage: 3, EndPage: 4},
	}
	diskFull := errors.New("disk full")
	calls := 0
	err := Impose(context.Background(), fakeDoc{pages: 4, w: 1, h: 1}, "doc.pdf", opts, func(*models.Plan) error {
		calls++
		return diskFull
	})
	if !errors.Is(err, diskFull) {
		t.Errorf("Impose error = %v, expected the emit error", err)
	}
	if calls != 1 {
		t.Errorf("emit called %d times, expected 1", calls)
	}
}

func TestImposeCancelledBetweenSections(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	opts := DefaultOptions()
	opts.Sections = []models.Section{
		{Title: "a", StartPage: 1, EndPage: 2},
		{Title: "b", StartPage: 3, EndPage: 4},
	}

	var plans []*models.Plan
	err := Impose(ctx, fakeDoc{pages: 4, w: 1, h: 1}, "doc.pdf", opts, func(plan *models.Plan) error {
		plans = append(plans, plan)
		cancel()
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Impose error = %v, expected context.Canceled", err)
	}
	if len(plans) != 1 {
		t.Errorf("Expected 1 plan before cancellation, got %d", len(plans))
	}
}

func TestImposeParallelKeepsOrder(t *testing.T) {
	workers := 4
	opts := DefaultOptions()
	opts.Workers = &workers
	for i := 0; i < 12; i++ {
		opts.Sections = append(opts.Sections, models.Section{StartPage: i + 1, EndPage: i + 1})
	}
	opts.Sections[9].EndPage = 99

	var plans []*models.Plan
	p := NewProcessor(fakeDoc{pages: 12, w: 10, h: 10}, "doc.pdf", opts)
	err := p.Run(context.Background(), collect(&plans))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("Run error = %v, expected ErrInvalidRange", err)
	}
	if len(plans) != 9 {
		t.Fatalf("Expected 9 plans before the failing section, got %d", len(plans))
	}
	for i, plan := range plans {
		if plan.Index != i || plan.Section.StartPage != i+1 {
			t.Errorf("plan %d out of order: index %d start %d", i, plan.Index, plan.Section.StartPage)
		}
		if plan.Name != UnitName("", i, "doc.pdf") {
			t.Errorf("plan %d name = %q", i, plan.Name)
		}
	}
}

func TestProcessorStates(t *testing.T) {
	p := NewProcessor(fakeDoc{pages: 2, w: 1, h: 1}, "doc.pdf", DefaultOptions())
	if p.State() != StateIdle {
		t.Errorf("initial state = %v", p.State())
	}
	var seen State
	err := p.Run(context.Background(), func(*models.Plan) error {
		seen = p.State()
		return nil
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if seen != StateProcessingSection {
		t.Errorf("state during emit = %v", seen)
	}
	if p.State() != StateDone {
		t.Errorf("final state = %v", p.State())
	}
}

func TestWorkerCount(t *testing.T) {
	zero, three := 0, 3
	tests := []struct {
		workers  *int
		expected int
	}{
		{nil, 1},
		{&zero, 1},
		{&three, 3},
	}
	for _, tt := range tests {
		if got := (Options{Workers: tt.workers}).WorkerCount(); got != tt.expected {
			t.Errorf("WorkerCount() = %d, expected %d", got, tt.expected)
		}
	}
}
