package adapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dop251/goja"
	"github.com/pkg/errors"
)

const prettierGlue = `var __tsexpandPrettier = function (source, optionsJSON) {
  var options = JSON.parse(optionsJSON);
  options.plugins = [prettierPlugins.typescript, prettierPlugins.estree];
  if (!options.parser) {
    options.parser = "typescript";
  }
  return prettier.format(source, options);
};`

// prettierBundles are the browser builds loaded into each runtime, relative
// to the prettier package directory.
var prettierBundles = []string{
	"standalone.js",
	filepath.Join("plugins", "estree.js"),
	filepath.Join("plugins", "typescript.js"),
}

// PrettierFormatter formats source with prettier's standalone build running
// inside goja.
type PrettierFormatter struct {
	pool   *runtimePool
	logger *slog.Logger
}

// NewPrettierFormatter loads prettier from its package directory (the one
// containing standalone.js).
func NewPrettierFormatter(dir string, poolSize int, logger *slog.Logger) (*PrettierFormatter, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	programs := make([]*goja.Program, 0, len(prettierBundles)+1)

	for _, bundle := range prettierBundles {
		bundlePath := filepath.Join(dir, bundle)

		source, err := os.ReadFile(bundlePath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read prettier bundle %s", bundlePath)
		}

		program, err := goja.Compile(bundle, string(source), false)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compile prettier bundle %s", bundle)
		}

		programs = append(programs, program)
	}

	glue, err := goja.Compile("prettier-glue.js", prettierGlue, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile prettier glue")
	}

	programs = append(programs, glue)

	formatter := &PrettierFormatter{logger: logger}
	formatter.pool = newRuntimePool(poolSize, func() (*goja.Runtime, error) {
		rt := goja.New()
		installConsole(rt, logger)

		for _, program := range programs {
			if _, err := rt.RunProgram(program); err != nil {
				return nil, errors.Wrap(err, "failed to load prettier")
			}
		}

		return rt, nil
	})

	return formatter, nil
}

// Format runs prettier.format over source. The promise it returns settles
// before the call into the runtime completes.
func (f *PrettierFormatter) Format(ctx context.Context, source string, options map[string]any) (string, error) {
	if options == nil {
		options = map[string]any{}
	}

	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode prettier options")
	}

	rt, err := f.pool.acquire(ctx)
	if err != nil {
		return "", err
	}
	defer f.pool.release(rt)

	format, ok := goja.AssertFunction(rt.Get("__tsexpandPrettier"))
	if !ok {
		return "", errors.New("prettier glue is not loaded")
	}

	value, err := format(goja.Undefined(), rt.ToValue(source), rt.ToValue(string(optionsJSON)))
	if err != nil {
		return "", errors.Wrap(err, "prettier failed")
	}

	promise, ok := value.Export().(*goja.Promise)
	if !ok {
		return value.String(), nil
	}

	switch promise.State() {
	case goja.PromiseStateFulfilled:
		return promise.Result().String(), nil
	case goja.PromiseStateRejected:
		return "", errors.Errorf("prettier failed: %s", promise.Result().String())
	default:
		return "", errors.New("prettier did not settle")
	}
}

// LocatePrettier finds the prettier package directory by searching
// node_modules from start upwards.
func LocatePrettier(start string) (string, error) {
	standalone, err := locateUpwards(start, filepath.Join("node_modules", "prettier", "standalone.js"))
	if err != nil {
		return "", err
	}

	return filepath.Dir(standalone), nil
}
