// Package main provides the CLI entry point for booklet-go.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/ukaji3/booklet-go/pkg/booklet"
	"github.com/ukaji3/booklet-go/pkg/booklet/models"
	"github.com/ukaji3/booklet-go/pkg/booklet/output"
)

var (
	pagesPerSheet      int
	sectionsPath       string
	rtl                bool
	backFlipping       bool
	landscape          bool
	pageNumbers        bool
	pageNumberPosition string
	watermark          string
	backCover          bool
	backCoverText      string
	title              string
	password           string
	outputDir          string
	planPath           string
	pretty             bool
	ticketPath         string
	workers            int
	dryRun             bool
	verbose            bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "booklet [input.pdf]",
		Short: "Impose PDF pages into saddle-stitch booklets",
		Long: `booklet-go rearranges the pages of a PDF so that printed duplex sheets,
folded and stacked, read in order. Each section of the input becomes its own
imposed PDF.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	f := rootCmd.Flags()
	f.IntVarP(&pagesPerSheet, "pages-per-sheet", "n", 2, "Pages per sheet side: 2 or 4")
	f.StringVar(&sectionsPath, "sections", "", "JSON file listing the sections to impose")
	f.BoolVar(&rtl, "rtl", false, "Right-to-left reading order")
	f.BoolVar(&backFlipping, "back-flipping", false, "Reorder back sides for short-edge duplex")
	f.BoolVar(&landscape, "landscape", false, "Rotate placed pages by 90 degrees")
	f.BoolVar(&pageNumbers, "page-numbers", false, "Print a page number on each sheet front")
	f.StringVar(&pageNumberPosition, "page-number-position", "bottom", "Page number edge: top or bottom")
	f.StringVar(&watermark, "watermark", "", "Watermark text printed on every sheet side")
	f.BoolVar(&backCover, "back-cover", false, "Append a back cover sheet")
	f.StringVar(&backCoverText, "back-cover-text", "", "Back cover text (default: section title)")
	f.StringVar(&title, "title", booklet.DefaultTitle, "Title of the whole-document section")
	f.StringVar(&password, "password", "", "Password of an encrypted input")
	f.StringVarP(&outputDir, "output-dir", "o", ".", "Directory for imposed PDFs")
	f.StringVar(&planPath, "plan", "", "Write the imposition plans as JSON (- for stdout)")
	f.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	f.StringVar(&ticketPath, "ticket", "", "Write an XLSX imposition ticket")
	f.IntVar(&workers, "workers", 1, "Number of sections planned concurrently")
	f.BoolVar(&dryRun, "dry-run", false, "Plan sections without writing PDFs")
	f.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	dir := outputDir
	if dryRun {
		dir = ""
	}
	results, runErr := booklet.ImposeFile(ctx, inputPath, dir, opts)

	plans := make([]*models.Plan, len(results))
	for i, res := range results {
		plans[i] = res.Plan
		if res.Path != "" {
			fmt.Fprintln(cmd.OutOrStdout(), res.Path)
		}
	}

	// Reports cover every emitted section, including those before a failure.
	if err := writeReports(cmd, plans); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("imposition failed: %w", runErr)
	}
	return nil
}

func buildOptions() (booklet.Options, error) {
	opts := booklet.DefaultOptions()
	opts.PagesPerSheet = pagesPerSheet
	opts.Title = title
	opts.Password = password
	opts.Workers = &workers

	pos, err := parsePosition(pageNumberPosition)
	if err != nil {
		return opts, err
	}
	opts.Defaults = models.Decoration{
		PageNumbers:        pageNumbers,
		PageNumberPosition: pos,
		BackCover:          backCover,
		BackCoverText:      backCoverText,
		BackFlipping:       backFlipping,
		Landscape:          landscape,
		RTL:                rtl,
		Watermark:          watermark != "",
		WatermarkText:      watermark,
	}

	if sectionsPath != "" {
		data, err := os.ReadFile(sectionsPath)
		if err != nil {
			return opts, fmt.Errorf("failed to read sections: %w", err)
		}
		opts.Sections, err = parseSections(data, opts.Defaults)
		if err != nil {
			return opts, err
		}
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return opts, nil
}

func parsePosition(s string) (models.Position, error) {
	switch models.Position(s) {
	case models.PositionTop:
		return models.PositionTop, nil
	case models.PositionBottom, "":
		return models.PositionBottom, nil
	}
	return "", fmt.Errorf("invalid page number position: %s (must be top or bottom)", s)
}

// sectionSpec is one entry of a sections file. Sections without a
// decoration inherit the command-line decoration.
type sectionSpec struct {
	Title      string             `json:"title"`
	StartPage  int                `json:"start_page"`
	EndPage    int                `json:"end_page"`
	Decoration *models.Decoration `json:"decoration,omitempty"`
}

func parseSections(data []byte, defaults models.Decoration) ([]models.Section, error) {
	var specs []sectionSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("invalid sections file: %w", err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("invalid sections file: no sections")
	}

	sections := make([]models.Section, len(specs))
	for i, s := range specs {
		deco := defaults
		if s.Decoration != nil {
			deco = *s.Decoration
			if _, err := parsePosition(string(deco.PageNumberPosition)); err != nil {
				return nil, fmt.Errorf("section %d: %w", i+1, err)
			}
		}
		sections[i] = models.Section{
			Title:      s.Title,
			StartPage:  s.StartPage,
			EndPage:    s.EndPage,
			Decoration: deco,
		}
	}
	return sections, nil
}

func writeReports(cmd *cobra.Command, plans []*models.Plan) error {
	if planPath != "" {
		jsonData, err := output.PlansToJSON(plans, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if planPath == "-" {
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		} else if err := os.WriteFile(planPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write plan: %w", err)
		}
	}

	if ticketPath != "" {
		f, err := os.Create(ticketPath)
		if err != nil {
			return fmt.Errorf("failed to write ticket: %w", err)
		}
		if err := output.WriteTicket(f, plans); err != nil {
			f.Close()
			return fmt.Errorf("failed to write ticket: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write ticket: %w", err)
		}
	}
	return nil
}
