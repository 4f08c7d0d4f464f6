package adapter

import (
	"context"
)

// Formatter reformats a snippet of source code. The options are specific to
// the implementation and passed through untouched.
type Formatter interface {
	Format(ctx context.Context, source string, options map[string]any) (string, error)
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(ctx context.Context, source string, options map[string]any) (string, error)

// Format calls f.
func (f FormatterFunc) Format(ctx context.Context, source string, options map[string]any) (string, error) {
	return f(ctx, source, options)
}
