package json

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Option configures a Renderer.
type Option[T any] func(*Renderer[T])

// WithWriter sets the destination of the rendered document.
func WithWriter[T any](w io.Writer) Option[T] {
	return func(r *Renderer[T]) {
		r.writer = w
	}
}

// WithIndent sets the indentation of nested values.
func WithIndent[T any](indent string) Option[T] {
	return func(r *Renderer[T]) {
		r.indent = indent
	}
}

// Renderer writes values of type T as indented JSON documents.
type Renderer[T any] struct {
	writer io.Writer
	indent string
}

// NewRenderer creates a JSON renderer writing to stdout by default.
func NewRenderer[T any](opts ...Option[T]) *Renderer[T] {
	r := &Renderer[T]{
		writer: os.Stdout,
		indent: "  ",
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render encodes value followed by a newline.
func (r *Renderer[T]) Render(value T) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", r.indent)

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}
