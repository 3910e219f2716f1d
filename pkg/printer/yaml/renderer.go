package yaml

import (
	"fmt"
	"io"
	"os"

	"sigs.k8s.io/yaml"
)

// Option configures a Renderer.
type Option[T any] func(*Renderer[T])

// WithWriter sets the destination of the rendered document.
func WithWriter[T any](w io.Writer) Option[T] {
	return func(r *Renderer[T]) {
		r.writer = w
	}
}

// Renderer writes values of type T as YAML documents. Field names follow
// the json struct tags.
type Renderer[T any] struct {
	writer io.Writer
}

// NewRenderer creates a YAML renderer writing to stdout by default.
func NewRenderer[T any](opts ...Option[T]) *Renderer[T] {
	r := &Renderer[T]{
		writer: os.Stdout,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render marshals value and writes it.
func (r *Renderer[T]) Render(value T) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	if _, err := r.writer.Write(data); err != nil {
		return fmt.Errorf("writing YAML: %w", err)
	}

	return nil
}
