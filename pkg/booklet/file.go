package booklet

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/booklet-go/pkg/booklet/models"
	"github.com/ukaji3/booklet-go/pkg/booklet/render"
)

// Result pairs an emitted plan with the file it was rendered to.
type Result struct {
	Plan *models.Plan
	// Path is empty when nothing was rendered.
	Path string
}

// ImposeFile imposes the PDF at inputPath. Each section is rendered to
// outputDir as soon as it is planned; if outputDir is empty, sections are
// only planned. Results produced before a failure are returned with the error.
func ImposeFile(ctx context.Context, inputPath, outputDir string, opts Options) ([]Result, error) {
	doc, err := render.Open(inputPath, opts.Password)
	if err != nil {
		return nil, err
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, err
		}
	}

	var results []Result
	err = Impose(ctx, doc, doc.Name(), opts, func(plan *models.Plan) error {
		res := Result{Plan: plan}
		if outputDir != "" {
			res.Path = filepath.Join(outputDir, plan.Name)
			if err := writeUnit(res.Path, doc, plan); err != nil {
				return err
			}
		}
		results = append(results, res)
		return nil
	})
	return results, err
}

func writeUnit(path string, doc *render.Document, plan *models.Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.Render(f, doc, plan); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
