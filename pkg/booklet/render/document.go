// Package render implements the document collaborators of an imposition job:
// reading source PDFs and writing imposed sheets.
//
// Source documents are read and validated with pdfcpu. Output units are
// written with gofpdf; source pages are imported as form XObjects through
// gofpdi and placed without re-rendering.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/ukaji3/booklet-go/pkg/booklet/imposer"
)

func init() {
	api.DisableConfigDir()
}

// Document is a loaded, read-only source PDF.
type Document struct {
	name  string
	data  []byte // flattened copy handed to the page importer
	sizes []pageSize
}

type pageSize struct {
	w, h float64
}

// Open reads and validates the PDF at path.
func Open(path, password string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", imposer.ErrInvalidDocument, err)
	}
	return Load(filepath.Base(path), data, password)
}

// Load validates PDF bytes and measures every page.
func Load(name string, data []byte, password string) (*Document, error) {
	conf := model.NewDefaultConfiguration()
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		if errors.Is(err, pdfcpu.ErrWrongPassword) {
			return nil, fmt.Errorf("%w: wrong password: %w", imposer.ErrInvalidDocument, err)
		}
		return nil, fmt.Errorf("%w: %w", imposer.ErrInvalidDocument, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("%w: %w", imposer.ErrInvalidDocument, err)
	}

	doc := &Document{
		name:  name,
		sizes: make([]pageSize, 0, ctx.PageCount),
	}
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		_, _, inh, err := ctx.PageDict(pageNr, false)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %w", imposer.ErrInvalidDocument, pageNr, err)
		}
		box := inh.MediaBox
		if box == nil {
			box = inh.CropBox
		}
		if box == nil {
			return nil, fmt.Errorf("%w: page %d has no media box", imposer.ErrInvalidDocument, pageNr)
		}
		size := pageSize{w: box.Width(), h: box.Height()}
		if inh.Rotate%180 != 0 {
			size.w, size.h = size.h, size.w
		}
		doc.sizes = append(doc.sizes, size)
	}

	if doc.data, err = flatten(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", imposer.ErrInvalidDocument, err)
	}
	return doc, nil
}

// flatten rewrites ctx as an unencrypted PDF with a classic xref table and
// no object streams, the only form the page importer can parse.
func flatten(ctx *model.Context) ([]byte, error) {
	if ctx.Encrypt != nil {
		ctx.Cmd = model.DECRYPT
	}
	var buf bytes.Buffer
	if err := api.WriteContext(ctx, &buf); err != nil {
		return nil, fmt.Errorf("rewriting source: %w", err)
	}
	return buf.Bytes(), nil
}

// Name returns the source file name.
func (d *Document) Name() string {
	return d.name
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.sizes)
}

// PageSize returns the size in points of the 0-based page index.
func (d *Document) PageSize(index int) (width, height float64, err error) {
	if index < 0 || index >= len(d.sizes) {
		return 0, 0, fmt.Errorf("page index %d out of range (0-%d)", index, len(d.sizes)-1)
	}
	s := d.sizes[index]
	return s.w, s.h, nil
}
