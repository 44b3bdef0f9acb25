// Package imposer computes saddle-stitch imposition plans.
//
// Every function in this package is pure: the same range, order and page
// geometry always yield the same plan.
package imposer

import "errors"

// ErrInvalidRange indicates section bounds outside 1 <= start <= end <= pageCount.
var ErrInvalidRange = errors.New("invalid page range")

// ErrEmptyDocument indicates a source document without pages.
var ErrEmptyDocument = errors.New("document has no pages")

// ErrInvalidDocument indicates an unreadable or unparseable source document.
var ErrInvalidDocument = errors.New("invalid document")

// ErrPagesPerSheet indicates an unsupported n-up value.
var ErrPagesPerSheet = errors.New("pages per sheet must be 2 or 4")
