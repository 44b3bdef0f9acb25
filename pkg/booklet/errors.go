package booklet

import (
	"fmt"

	"github.com/ukaji3/booklet-go/pkg/booklet/imposer"
)

var (
	// ErrInvalidDocument indicates the source could not be read; no section runs.
	ErrInvalidDocument = imposer.ErrInvalidDocument
	// ErrInvalidRange indicates section bounds outside the document.
	ErrInvalidRange = imposer.ErrInvalidRange
	// ErrEmptyDocument indicates a source without pages.
	ErrEmptyDocument = imposer.ErrEmptyDocument
	// ErrPagesPerSheet indicates an n-up value other than 2 or 4.
	ErrPagesPerSheet = imposer.ErrPagesPerSheet
)

// SectionError represents a failure while processing one section.
type SectionError struct {
	Index     int // 0-based position in the job
	Title     string
	StartPage int
	EndPage   int
	Err       error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %d %q (pages %d-%d): %v", e.Index+1, e.Title, e.StartPage, e.EndPage, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}

// NewSectionError creates a new SectionError.
func NewSectionError(index int, title string, startPage, endPage int, err error) *SectionError {
	return &SectionError{
		Index:     index,
		Title:     title,
		StartPage: startPage,
		EndPage:   endPage,
		Err:       err,
	}
}
