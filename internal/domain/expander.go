// Package domain contains the type expansion pipeline: code generation,
// source augmentation, result location and output normalization.
package domain

import (
	"context"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/tsexpand/internal/adapter"
	m "github.com/mouse-blink/tsexpand/internal/model"
	"github.com/mouse-blink/tsexpand/internal/typefmt"
)

// rawTextUnitPrefix names the synthetic unit raw source text is served as.
const rawTextUnitPrefix = "expand-my-type-"

// Expander expands type expressions against program sources.
type Expander interface {
	// Expand resolves the request's expression to its expanded textual form.
	Expand(ctx context.Context, req m.Request) (string, error)

	// DeclaredTypes lists the names of the types declared at the top level of
	// the request's source unit. The expression is ignored.
	DeclaredTypes(ctx context.Context, req m.Request) ([]string, error)

	// ExpandAll expands every name against base's source with at most
	// parallel expansions in flight. Failures are recorded per row.
	ExpandAll(ctx context.Context, base m.Request, names []string, parallel int) ([]m.Expansion, error)
}

type expander struct {
	engine     adapter.TypeEngine
	host       adapter.SourceHost
	normalizer *Normalizer
	logger     *slog.Logger
}

// NewExpander constructs an Expander. A nil formatter uses the native type
// printer; a nil logger discards logs.
func NewExpander(engine adapter.TypeEngine, host adapter.SourceHost, formatter adapter.Formatter, logger *slog.Logger) Expander {
	if formatter == nil {
		formatter = typefmt.NewPrinter()
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &expander{
		engine:     engine,
		host:       host,
		normalizer: NewNormalizer(formatter),
		logger:     logger,
	}
}

// DefaultCompilerOptions are used when a request carries no compiler options.
func DefaultCompilerOptions() m.CompilerOptions {
	return m.CompilerOptions{
		Values: map[string]any{
			"noEmit":                       true,
			"allowSyntheticDefaultImports": true,
			"allowArbitraryExtensions":     true,
			"allowImportingTsExtensions":   true,
			"allowJs":                      true,
		},
	}
}

func (e *expander) Expand(ctx context.Context, req m.Request) (string, error) {
	if strings.TrimSpace(req.Expression) == "" {
		e.logger.Debug("expansion state", "state", "expression-empty")
		return NeverType, nil
	}

	unit, overrides, err := e.resolveSource(req)
	if err != nil {
		return "", err
	}

	e.logger.Debug("expansion state", "state", "augment", "unit", unit, "expression", req.Expression)
	host := NewAugmentedHost(e.host, unit, ExpandCodeBlock(req.Expression), overrides)

	program, err := e.createProgram(ctx, unit, req.CompilerOptions, host)
	if err != nil {
		return "", err
	}

	defer func() {
		_ = program.Close()
	}()

	e.logger.Debug("expansion state", "state", "locate-result", "unit", unit)

	root, ok := program.SourceFile(unit)
	if !ok {
		return "", ErrSourceFileNotFound
	}

	node, err := FindResultIdentifier(root)
	if err != nil {
		return "", err
	}

	if e.logger.Enabled(ctx, slog.LevelDebug) {
		e.logger.Debug("expansion state", "state", "render", "identifier", node.Text())
	}

	raw, err := program.TypeToString(node)
	if err != nil {
		return "", errors.Wrap(err, "failed to render expanded type")
	}

	e.logger.Debug("expansion state", "state", "normalize", "prettify", req.Prettify.IsEnabled())

	return e.normalizer.Normalize(ctx, raw, req.Prettify)
}

func (e *expander) DeclaredTypes(ctx context.Context, req m.Request) ([]string, error) {
	unit, overrides, err := e.resolveSource(req)
	if err != nil {
		return nil, err
	}

	program, err := e.createProgram(ctx, unit, req.CompilerOptions, NewOverrideHost(e.host, overrides))
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = program.Close()
	}()

	if _, ok := program.SourceFile(unit); !ok {
		return nil, ErrSourceFileNotFound
	}

	return program.DeclaredTypeNames(unit)
}

func (e *expander) ExpandAll(ctx context.Context, base m.Request, names []string, parallel int) ([]m.Expansion, error) {
	if parallel <= 0 {
		parallel = 1
	}

	results := make([]m.Expansion, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, name := range names {
		g.Go(func() error {
			req := base
			req.Expression = name

			result, err := e.Expand(gctx, req)
			results[i] = m.Expansion{
				Name:       name,
				Expression: name,
				Result:     result,
				Err:        err,
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, ctx.Err()
}

// resolveSource returns the designated unit name and the loading overrides
// for it. Raw text gets a fresh synthetic identity served by an override.
func (e *expander) resolveSource(req m.Request) (string, m.HostOverrides, error) {
	if err := req.Source.Validate(); err != nil {
		return "", m.HostOverrides{}, err
	}

	cwd := NewOverrideHost(e.host, req.Overrides).GetCurrentDirectory()

	if !req.Source.IsText() {
		unit, err := adapter.NormalizeUnitName(resolveRelative(cwd, string(req.Source.File)))
		if err != nil {
			return "", m.HostOverrides{}, errors.Wrapf(err, "failed to resolve %s", req.Source.File)
		}

		e.logger.Debug("expansion state", "state", "resolve-source", "unit", unit)

		return unit, req.Overrides, nil
	}

	unit := path.Join(cwd, rawTextUnitPrefix+uuid.NewString()+".ts")

	e.logger.Debug("expansion state", "state", "resolve-source", "unit", unit, "raw", true)

	return unit, RawTextOverrides(e.host, req.Overrides, unit, *req.Source.Text), nil
}

func (e *expander) createProgram(ctx context.Context, unit string, options m.CompilerOptions, host adapter.SourceHost) (adapter.Program, error) {
	if options.IsZero() {
		options = DefaultCompilerOptions()
	}

	e.logger.Debug("expansion state", "state", "type-check", "unit", unit)

	program, err := e.engine.CreateProgram(ctx, unit, options, host)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to type-check %s", unit)
	}

	return program, nil
}

// resolveRelative anchors a relative unit name at the host's current
// directory. Absolute names and URLs are returned unchanged.
func resolveRelative(cwd, name string) string {
	if strings.Contains(name, "://") || filepath.IsAbs(name) || path.IsAbs(filepath.ToSlash(name)) {
		return name
	}

	name = filepath.ToSlash(name)

	if strings.Contains(cwd, "://") {
		return strings.TrimSuffix(cwd, "/") + "/" + path.Clean(name)
	}

	return path.Join(cwd, name)
}
