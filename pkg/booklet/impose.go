package booklet

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/booklet-go/pkg/booklet/imposer"
	"github.com/ukaji3/booklet-go/pkg/booklet/models"
)

// Document is the read-only source of an imposition job.
// Page sizes are assumed uniform; only the first page is measured.
type Document interface {
	PageCount() int
	PageSize(index int) (width, height float64, err error)
}

// EmitFunc receives each completed plan in section order.
// A non-nil error stops the job; plans already emitted stay emitted.
type EmitFunc func(plan *models.Plan) error

// State is the lifecycle stage of a Processor.
type State int32

const (
	StateIdle State = iota
	StateValidating
	StateProcessingSection
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateProcessingSection:
		return "processing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Processor runs an imposition job section by section.
type Processor struct {
	doc     Document
	docName string
	opts    Options
	log     *slog.Logger
	state   atomic.Int32
	emitted atomic.Int32
	names   nameSet
}

// NewProcessor creates a processor for doc; docName is used for unit names.
func NewProcessor(doc Document, docName string, opts Options) *Processor {
	return &Processor{
		doc:     doc,
		docName: docName,
		opts:    opts,
		log:     opts.logger().With("document", docName),
	}
}

// State returns the current lifecycle stage.
func (p *Processor) State() State {
	return State(p.state.Load())
}

// Emitted returns the number of plans handed to the emit callback so far.
func (p *Processor) Emitted() int {
	return int(p.emitted.Load())
}

func (p *Processor) setState(s State) {
	p.state.Store(int32(s))
}

// Run validates the job, plans every section and emits the plans in declared
// order. Cancellation is only observed between sections.
func (p *Processor) Run(ctx context.Context, emit EmitFunc) error {
	p.setState(StateValidating)
	p.names = nameSet{}
	geom, pageCount, err := p.validate()
	if err != nil {
		return p.fail(err)
	}

	sections := p.opts.resolveSections(pageCount)
	p.log.Info("imposing document",
		"pages", pageCount,
		"sections", len(sections),
		"pages_per_sheet", p.opts.PagesPerSheet)

	if n := p.opts.WorkerCount(); n > 1 && len(sections) > 1 {
		return p.runParallel(ctx, sections, pageCount, geom, n, emit)
	}

	for i, section := range sections {
		if err := ctx.Err(); err != nil {
			return p.fail(err)
		}
		p.setState(StateProcessingSection)
		plan, err := p.plan(i, section, pageCount, geom)
		if err != nil {
			return p.fail(err)
		}
		if err := p.emit(plan, emit); err != nil {
			return p.fail(err)
		}
	}

	p.setState(StateDone)
	return nil
}

func (p *Processor) validate() (imposer.Geometry, int, error) {
	if p.doc == nil {
		return imposer.Geometry{}, 0, fmt.Errorf("%w: no document", ErrInvalidDocument)
	}
	if !imposer.ValidPagesPerSheet(p.opts.PagesPerSheet) {
		return imposer.Geometry{}, 0, fmt.Errorf("%w: got %d", ErrPagesPerSheet, p.opts.PagesPerSheet)
	}
	pageCount := p.doc.PageCount()
	if pageCount <= 0 {
		return imposer.Geometry{}, 0, ErrEmptyDocument
	}
	w, h, err := p.doc.PageSize(0)
	if err != nil {
		return imposer.Geometry{}, 0, fmt.Errorf("%w: page size: %w", ErrInvalidDocument, err)
	}
	if w <= 0 || h <= 0 {
		return imposer.Geometry{}, 0, fmt.Errorf("%w: page size %gx%g", ErrInvalidDocument, w, h)
	}
	return imposer.Geometry{PageWidth: w, PageHeight: h}, pageCount, nil
}

func (p *Processor) plan(index int, section models.Section, pageCount int, geom imposer.Geometry) (*models.Plan, error) {
	p.log.Debug("planning section",
		"index", index,
		"title", section.Title,
		"start", section.StartPage,
		"end", section.EndPage)

	plan, err := imposer.PlanSection(section, pageCount, p.opts.PagesPerSheet, geom)
	if err != nil {
		return nil, NewSectionError(index, section.Title, section.StartPage, section.EndPage, err)
	}
	plan.Index = index
	plan.Name = UnitName(section.Title, index, p.docName)
	return plan, nil
}

func (p *Processor) emit(plan *models.Plan, emit EmitFunc) error {
	plan.Name = p.names.claim(plan.Name)
	if emit != nil {
		if err := emit(plan); err != nil {
			return NewSectionError(plan.Index, plan.Section.Title, plan.Section.StartPage, plan.Section.EndPage, err)
		}
	}
	p.emitted.Add(1)
	p.log.Info("section imposed",
		"index", plan.Index,
		"name", plan.Name,
		"sheets", len(plan.Sheets),
		"blanks", plan.BlankCount())
	return nil
}

// runParallel plans all sections concurrently, then emits them in order,
// stopping at the first failed section.
func (p *Processor) runParallel(ctx context.Context, sections []models.Section, pageCount int, geom imposer.Geometry, workers int, emit EmitFunc) error {
	p.setState(StateProcessingSection)

	plans := make([]*models.Plan, len(sections))
	errs := make([]error, len(sections))

	// Section errors are kept by index rather than returned to the group,
	// so emission stops at the first failure in declared order.
	var g errgroup.Group
	g.SetLimit(workers)
	for i, section := range sections {
		g.Go(func() error {
			plans[i], errs[i] = p.plan(i, section, pageCount, geom)
			return nil
		})
	}
	g.Wait()

	for i := range sections {
		if err := ctx.Err(); err != nil {
			return p.fail(err)
		}
		if errs[i] != nil {
			return p.fail(errs[i])
		}
		if err := p.emit(plans[i], emit); err != nil {
			return p.fail(err)
		}
	}

	p.setState(StateDone)
	return nil
}

func (p *Processor) fail(err error) error {
	p.setState(StateFailed)
	p.log.Error("imposition failed", "emitted", p.Emitted(), "error", err)
	return err
}

// Impose runs a job on doc and hands every completed plan to emit.
func Impose(ctx context.Context, doc Document, docName string, opts Options, emit EmitFunc) error {
	return NewProcessor(doc, docName, opts).Run(ctx, emit)
}
