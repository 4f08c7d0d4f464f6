package domain

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/mouse-blink/tsexpand/internal/adapter"
	m "github.com/mouse-blink/tsexpand/internal/model"
)

const wrapperDeclaration = "type " + IdentifierPrefix + " ="

// DefaultFormatOptions are used when a request enables prettifying without
// formatter options.
func DefaultFormatOptions() map[string]any {
	return map[string]any{
		"parser": "typescript",
		"semi":   false,
	}
}

// Normalizer turns the engine's type rendering into the final output.
type Normalizer struct {
	formatter adapter.Formatter
}

// NewNormalizer constructs a Normalizer around formatter.
func NewNormalizer(formatter adapter.Formatter) *Normalizer {
	return &Normalizer{formatter: formatter}
}

// Normalize returns raw unchanged when prettifying is disabled. Otherwise raw
// is wrapped in an alias declaration so the formatter sees valid top-level
// syntax, and the wrapper is stripped from the result again.
func (n *Normalizer) Normalize(ctx context.Context, raw string, opts m.PrettifyOptions) (string, error) {
	if !opts.IsEnabled() {
		return raw, nil
	}

	options := opts.Options
	if options == nil {
		options = DefaultFormatOptions()
	}

	formatted, err := n.formatter.Format(ctx, wrapperDeclaration+" "+raw, options)
	if err != nil {
		return "", errors.Wrap(err, "failed to format expanded type")
	}

	return stripWrapper(formatted), nil
}

func stripWrapper(formatted string) string {
	formatted = strings.TrimSpace(formatted)

	rest, ok := strings.CutPrefix(formatted, wrapperDeclaration)
	if !ok {
		return formatted
	}

	if strings.HasPrefix(rest, "\n") {
		rest = dedent(rest)
	}

	return strings.TrimSpace(rest)
}

// dedent removes the indentation shared by all non-blank lines. Formatters
// move a long right-hand side onto its own indented lines.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	common := -1

	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}

		width := len(l) - len(strings.TrimLeft(l, " \t"))
		if common < 0 || width < common {
			common = width
		}
	}

	if common <= 0 {
		return s
	}

	for i, l := range lines {
		if len(l) >= common {
			lines[i] = l[common:]
		}
	}

	return strings.Join(lines, "\n")
}
