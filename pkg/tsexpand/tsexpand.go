// Package tsexpand expands TypeScript type expressions into their structural
// form, e.g. "A<number>" into "{ a: string; b: number }".
//
// A Client drives the TypeScript compiler (typescript.js, run inside goja)
// against an augmented copy of the source unit the expression is written
// against:
//
//	client, err := tsexpand.New(tsexpand.WithTypeScriptLib("node_modules/typescript/lib/typescript.js"))
//	if err != nil {
//		return err
//	}
//
//	out, err := client.Expand(ctx, tsexpand.Request{
//		Expression: "A<number>",
//		Source:     tsexpand.TextSource("type A<T> = { a: string } & B<T>; type B<T> = { b: T };"),
//	})
package tsexpand

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/mouse-blink/tsexpand/internal/adapter"
	"github.com/mouse-blink/tsexpand/internal/domain"
	m "github.com/mouse-blink/tsexpand/internal/model"
	"github.com/mouse-blink/tsexpand/internal/typefmt"
)

// Re-exported request types.
type (
	Request         = m.Request
	SourceRef       = m.SourceRef
	SourceUnit      = m.SourceUnit
	CompilerOptions = m.CompilerOptions
	PrettifyOptions = m.PrettifyOptions
	HostOverrides   = m.HostOverrides
	Expansion       = m.Expansion
	Path            = m.Path

	// SourceHost is the source loading contract.
	SourceHost = adapter.SourceHost
	// TypeEngine is the type resolution engine contract.
	TypeEngine = adapter.TypeEngine
	// Formatter is the output formatting contract.
	Formatter = adapter.Formatter
)

// Source constructors.
var (
	FileSource = m.FileSource
	TextSource = m.TextSource
	Bool       = m.Bool
)

// Errors surfaced by Expand.
var (
	ErrSourceFileNotFound = domain.ErrSourceFileNotFound
	ErrNoNodeFound        = domain.ErrNoNodeFound
)

// NeverType is the result for an empty expression.
const NeverType = domain.NeverType

type config struct {
	typescriptLib string
	prettierDir   string
	poolSize      int
	host          adapter.SourceHost
	engine        adapter.TypeEngine
	formatter     adapter.Formatter
	logger        *slog.Logger
}

// Option configures a Client.
type Option func(*config)

// WithTypeScriptLib sets the path of typescript.js. Without it the library is
// located via TSEXPAND_TYPESCRIPT or node_modules above the working directory.
func WithTypeScriptLib(path string) Option {
	return func(c *config) {
		c.typescriptLib = path
	}
}

// WithPrettier formats output with the prettier package in dir instead of the
// native type printer.
func WithPrettier(dir string) Option {
	return func(c *config) {
		c.prettierDir = dir
	}
}

// WithRuntimePool bounds how many expansions can type-check concurrently.
func WithRuntimePool(size int) Option {
	return func(c *config) {
		c.poolSize = size
	}
}

// WithSourceHost replaces the storage-backed source host.
func WithSourceHost(host SourceHost) Option {
	return func(c *config) {
		c.host = host
	}
}

// WithEngine replaces the TypeScript engine.
func WithEngine(engine TypeEngine) Option {
	return func(c *config) {
		c.engine = engine
	}
}

// WithFormatter replaces the output formatter.
func WithFormatter(formatter Formatter) Option {
	return func(c *config) {
		c.formatter = formatter
	}
}

// WithLogger sets the logger for pipeline state transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Client expands type expressions. It is safe for concurrent use; every
// expansion builds its own augmented program.
type Client struct {
	domain.Expander
}

// New builds a Client.
func New(opts ...Option) (*Client, error) {
	c := &config{poolSize: 1}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	if c.host == nil {
		c.host = adapter.NewLocalSourceHost(nil)
	}

	if c.engine == nil {
		engine, err := newTypeScriptEngine(c)
		if err != nil {
			return nil, err
		}

		c.engine = engine
	}

	if c.formatter == nil {
		formatter, err := newFormatter(c)
		if err != nil {
			return nil, err
		}

		c.formatter = formatter
	}

	return &Client{Expander: domain.NewExpander(c.engine, c.host, c.formatter, c.logger)}, nil
}

// Expand is a one-shot helper that builds a default Client. A blank
// expression is never and builds nothing.
func Expand(ctx context.Context, req Request, opts ...Option) (string, error) {
	if strings.TrimSpace(req.Expression) == "" {
		return NeverType, nil
	}

	client, err := New(opts...)
	if err != nil {
		return "", err
	}

	return client.Expand(ctx, req)
}

func newTypeScriptEngine(c *config) (adapter.TypeEngine, error) {
	lib := c.typescriptLib
	if lib == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get working directory")
		}

		lib, err = adapter.LocateTypeScriptLib(wd)
		if err != nil {
			return nil, errors.Wrap(err, "failed to locate typescript.js")
		}
	}

	return adapter.NewTypeScriptEngine(lib, c.poolSize, c.logger)
}

func newFormatter(c *config) (adapter.Formatter, error) {
	if c.prettierDir == "" {
		return typefmt.NewPrinter(), nil
	}

	return adapter.NewPrettierFormatter(c.prettierDir, c.poolSize, c.logger)
}
