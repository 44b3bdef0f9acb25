// Package booklet imposes PDF page ranges into saddle-stitch booklet sheets.
package booklet

import (
	"log/slog"

	"github.com/ukaji3/booklet-go/pkg/booklet/models"
)

// DefaultTitle names the implicit whole-document section.
const DefaultTitle = "booklet"

// Options configures an imposition job.
type Options struct {
	// PagesPerSheet is the n-up value (2 or 4).
	PagesPerSheet int
	// Sections lists the page ranges to impose, in output order.
	// If empty, the whole document is imposed as one section using Defaults.
	Sections []models.Section
	// Defaults is the decoration of the implicit whole-document section.
	Defaults models.Decoration
	// Title names the implicit section. If empty, DefaultTitle is used.
	Title string
	// Password unlocks encrypted source documents.
	Password string
	// Workers is the number of sections planned concurrently.
	// If nil, sections are planned one at a time.
	Workers *int
	// Logger receives job progress. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default imposition options.
func DefaultOptions() Options {
	return Options{
		PagesPerSheet: 2,
		Defaults: models.Decoration{
			PageNumberPosition: models.PositionBottom,
		},
	}
}

// WorkerCount returns the number of sections planned concurrently.
func (o Options) WorkerCount() int {
	if o.Workers != nil && *o.Workers > 1 {
		return *o.Workers
	}
	return 1
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// resolveSections returns the declared sections, or one implicit section
// covering all pageCount pages.
func (o Options) resolveSections(pageCount int) []models.Section {
	if len(o.Sections) > 0 {
		return o.Sections
	}
	title := o.Title
	if title == "" {
		title = DefaultTitle
	}
	return []models.Section{{
		Title:      title,
		StartPage:  1,
		EndPage:    pageCount,
		Decoration: o.Defaults,
	}}
}
