package table

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithWriter sets the destination of the rendered table. Defaults to stdout.
func WithWriter(w io.Writer) Option {
	return func(r *Renderer) {
		r.writer = w
	}
}

// WithHeaders sets the column headers. Every appended row must have one
// value per header.
func WithHeaders(headers ...string) Option {
	return func(r *Renderer) {
		r.headers = headers
	}
}

// WithFormatter transforms values of the named column before rendering.
func WithFormatter(columnName string, formatter ColumnFormatter) Option {
	return func(r *Renderer) {
		if r.formatters == nil {
			r.formatters = make(map[string]ColumnFormatter)
		}

		r.formatters[strings.ToUpper(columnName)] = formatter
	}
}

// WithTableOptions replaces DefaultTableOptions.
func WithTableOptions(values ...tablewriter.Option) Option {
	return func(r *Renderer) {
		r.tableOptions = append(r.tableOptions, values...)
	}
}
