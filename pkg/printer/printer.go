// Package printer renders run reports, tag lists and check catalogs as
// tables, JSON or YAML.
package printer

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/datera/ddct/pkg/doctor"
	printerjson "github.com/datera/ddct/pkg/printer/json"
	"github.com/datera/ddct/pkg/printer/table"
	printeryaml "github.com/datera/ddct/pkg/printer/yaml"
	"github.com/datera/ddct/pkg/validate/check"
)

// Format is an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Validate checks if the output format is valid.
func (f Format) Validate() error {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (must be one of: table, json, yaml)", f)
	}
}

//nolint:gochecknoglobals
var (
	// Colors are applied at render time so that color.NoColor set after
	// startup is honored.
	passColor    = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed)
	verdictColor = map[check.Verdict]*color.Color{
		check.VerdictPass: color.New(color.FgGreen, color.Bold),
		check.VerdictFail: color.New(color.FgRed, color.Bold),
	}

	reportHeaders = []string{"STATUS", "CHECK", "CATEGORY", "CODE", "MESSAGE"}
	checkHeaders  = []string{"ID", "NAME", "CATEGORY", "TAGS"}
	tagHeaders    = []string{"TAGS"}
)

// Printer renders command output.
type Printer interface {
	PrintReport(report *doctor.Report) error
	PrintTags(tags []string) error
	PrintChecks(checks []check.Definition) error
}

// Options configures NewPrinter.
type Options struct {
	Format Format
	Out    io.Writer
}

// NewPrinter returns the printer for opts.Format, defaulting to a table.
func NewPrinter(opts Options) Printer {
	switch opts.Format {
	case FormatJSON:
		return &JSONPrinter{out: opts.Out}
	case FormatYAML:
		return &YAMLPrinter{out: opts.Out}
	case FormatTable:
		return &TablePrinter{out: opts.Out}
	default:
		return &TablePrinter{out: opts.Out}
	}
}

// TablePrinter renders human-readable tables.
type TablePrinter struct {
	out io.Writer
}

// PrintReport writes one row per record, or a single passing row for a
// check that reported nothing, followed by the summary and verdict.
func (p *TablePrinter) PrintReport(report *doctor.Report) error {
	renderer := table.NewRenderer(
		table.WithWriter(p.out),
		table.WithHeaders(reportHeaders...),
		table.WithFormatter("STATUS", statusSymbol),
	)

	for _, res := range sortedResults(report.Checks) {
		records := report.RecordsFor(res.ID)
		if len(records) == 0 {
			if err := renderer.Append([]any{check.StatusPass, res.Name, res.Category, "", ""}); err != nil {
				return fmt.Errorf("appending table row: %w", err)
			}

			continue
		}

		for _, rec := range records {
			if err := renderer.Append([]any{rec.Severity, res.Name, res.Category, rec.Code, rec.Message}); err != nil {
				return fmt.Errorf("appending table row: %w", err)
			}
		}
	}

	if err := renderer.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	s := report.Summary

	_, _ = fmt.Fprintln(p.out)
	_, _ = fmt.Fprintln(p.out, "Summary:")
	_, _ = fmt.Fprintf(p.out, "  Checks: %d | Passed: %d | Warnings: %d | Failed: %d\n", s.Total, s.Passed, s.Warned, s.Failed)
	_, _ = fmt.Fprintf(p.out, "  Records: %d failures, %d warnings\n", s.Failures, s.Warnings)
	_, _ = fmt.Fprintln(p.out)

	verdict := string(report.Verdict)
	if c, ok := verdictColor[report.Verdict]; ok {
		verdict = c.Sprint(verdict)
	}

	_, _ = fmt.Fprintf(p.out, "Verdict: %s\n", verdict)

	return nil
}

// PrintTags writes a single-column table of tags.
func (p *TablePrinter) PrintTags(tags []string) error {
	renderer := table.NewRenderer(
		table.WithWriter(p.out),
		table.WithHeaders(tagHeaders...),
	)

	for _, tag := range tags {
		if err := renderer.Append([]any{tag}); err != nil {
			return fmt.Errorf("appending table row: %w", err)
		}
	}

	if err := renderer.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

// PrintChecks writes the catalog of available checks.
func (p *TablePrinter) PrintChecks(checks []check.Definition) error {
	renderer := table.NewRenderer(
		table.WithWriter(p.out),
		table.WithHeaders(checkHeaders...),
		table.WithFormatter("TAGS", func(v any) any {
			tags, _ := v.([]string)

			return strings.Join(tags, ",")
		}),
	)

	for _, def := range checks {
		if err := renderer.Append([]any{def.ID, def.Name, def.Category, def.Tags}); err != nil {
			return fmt.Errorf("appending table row: %w", err)
		}
	}

	if err := renderer.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

// JSONPrinter renders JSON documents.
type JSONPrinter struct {
	out io.Writer
}

func (p *JSONPrinter) PrintReport(report *doctor.Report) error {
	return printerjson.NewRenderer(printerjson.WithWriter[*doctor.Report](p.out)).Render(report)
}

func (p *JSONPrinter) PrintTags(tags []string) error {
	return printerjson.NewRenderer(printerjson.WithWriter[[]string](p.out)).Render(nonNil(tags))
}

func (p *JSONPrinter) PrintChecks(checks []check.Definition) error {
	return printerjson.NewRenderer(printerjson.WithWriter[[]CheckOutput](p.out)).Render(checkOutputs(checks))
}

// YAMLPrinter renders YAML documents.
type YAMLPrinter struct {
	out io.Writer
}

func (p *YAMLPrinter) PrintReport(report *doctor.Report) error {
	return printeryaml.NewRenderer(printeryaml.WithWriter[*doctor.Report](p.out)).Render(report)
}

func (p *YAMLPrinter) PrintTags(tags []string) error {
	return printeryaml.NewRenderer(printeryaml.WithWriter[[]string](p.out)).Render(nonNil(tags))
}

func (p *YAMLPrinter) PrintChecks(checks []check.Definition) error {
	return printeryaml.NewRenderer(printeryaml.WithWriter[[]CheckOutput](p.out)).Render(checkOutputs(checks))
}

// CheckOutput is the serialized form of a check definition.
type CheckOutput struct {
	ID       string         `json:"id"       yaml:"id"`
	Name     string         `json:"name"     yaml:"name"`
	Category check.Category `json:"category" yaml:"category"`
	Tags     []string       `json:"tags"     yaml:"tags"`
}

func checkOutputs(checks []check.Definition) []CheckOutput {
	out := make([]CheckOutput, 0, len(checks))
	for _, def := range checks {
		out = append(out, CheckOutput{ID: def.ID, Name: def.Name, Category: def.Category, Tags: def.Tags})
	}

	return out
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}

	return tags
}

// sortedResults orders results by canonical category, keeping execution
// order within a category.
func sortedResults(results []doctor.Result) []doctor.Result {
	sorted := slices.Clone(results)

	slices.SortStableFunc(sorted, func(a, b doctor.Result) int {
		return categoryPriority(a.Category) - categoryPriority(b.Category)
	})

	return sorted
}

func categoryPriority(category check.Category) int {
	if i := slices.Index(check.CanonicalCategoryOrder, category); i >= 0 {
		return i
	}

	return len(check.CanonicalCategoryOrder)
}

// statusSymbol maps a check status or record severity to its colored symbol.
func statusSymbol(value any) any {
	switch fmt.Sprint(value) {
	case string(check.StatusFail):
		return failColor.Sprint("✗")
	case string(check.StatusWarn):
		return warnColor.Sprint("⚠")
	default:
		return passColor.Sprint("✓")
	}
}
