package table

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// ColumnFormatter is a function that transforms a value for display in a specific column.
type ColumnFormatter func(value any) any

// Renderer provides a flexible interface for creating and rendering tables.
type Renderer struct {
	writer       io.Writer
	headers      []string
	formatters   map[string]ColumnFormatter
	table        *tablewriter.Table
	tableOptions []tablewriter.Option
}

// NewRenderer creates a new table renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		writer:     os.Stdout,
		formatters: make(map[string]ColumnFormatter),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.table = tablewriter.NewTable(r.writer)

	if len(r.tableOptions) == 0 {
		r.table = r.table.Options(DefaultTableOptions...)
	} else {
		r.table = r.table.Options(r.tableOptions...)
	}

	if len(r.headers) > 0 {
		r.table.Header(r.headers)
	}

	return r
}

// Append adds one row; values must line up with the headers.
func (r *Renderer) Append(values []any) error {
	if len(values) != len(r.headers) {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), len(r.headers))
	}

	row := make([]any, 0, len(values))

	for i := range r.headers {
		v := values[i]
		h := strings.ToUpper(r.headers[i])

		if formatter, exists := r.formatters[h]; exists {
			v = formatter(v)
		}

		row = append(row, v)
	}

	return r.table.Append(row)
}

// AppendAll adds multiple rows to the table in a single operation.
func (r *Renderer) AppendAll(rows [][]any) error {
	for _, values := range rows {
		if err := r.Append(values); err != nil {
			return err
		}
	}

	return nil
}

// Render outputs the table to the configured writer.
func (r *Renderer) Render() error {
	return r.table.Render()
}

// DefaultTableOptions renders borderless tables without column separators.
//
//nolint:gochecknoglobals
var DefaultTableOptions = []tablewriter.Option{
	tablewriter.WithRendition(tw.Rendition{
		Borders: tw.BorderNone,
		Settings: tw.Settings{
			Separators: tw.Separators{
				BetweenColumns: tw.Off,
			},
		},
	}),
}
