package adapter

import (
	"context"
	_ "embed"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dop251/goja"
	"github.com/pkg/errors"

	m "github.com/mouse-blink/tsexpand/internal/model"
)

// TypeScriptLibEnv names the environment variable that points at typescript.js.
const TypeScriptLibEnv = "TSEXPAND_TYPESCRIPT"

//go:embed bridge.js
var bridgeSource string

// TypeScriptEngine runs the TypeScript compiler (typescript.js) inside goja
// runtimes and exposes it as a TypeEngine.
type TypeScriptEngine struct {
	libDir string
	pool   *runtimePool
	logger *slog.Logger
}

// NewTypeScriptEngine compiles the typescript.js bundle at libPath. Up to
// poolSize programs can be type-checked concurrently.
func NewTypeScriptEngine(libPath string, poolSize int, logger *slog.Logger) (*TypeScriptEngine, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	source, err := os.ReadFile(libPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read TypeScript library %s", libPath)
	}

	tsProgram, err := goja.Compile(filepath.Base(libPath), string(source), false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile TypeScript library")
	}

	bridgeProgram, err := goja.Compile("bridge.js", bridgeSource, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile engine bridge")
	}

	engine := &TypeScriptEngine{
		libDir: filepath.ToSlash(filepath.Dir(libPath)),
		logger: logger,
	}

	engine.pool = newRuntimePool(poolSize, func() (*goja.Runtime, error) {
		rt := goja.New()
		installConsole(rt, logger)

		if _, err := rt.RunProgram(tsProgram); err != nil {
			return nil, errors.Wrap(err, "failed to load TypeScript library")
		}

		if _, err := rt.RunProgram(bridgeProgram); err != nil {
			return nil, errors.Wrap(err, "failed to load engine bridge")
		}

		logger.Debug("typescript runtime ready", "lib", libPath)

		return rt, nil
	})

	return engine, nil
}

// CreateProgram type-checks rootName with the given options. Units are loaded
// through host; the TypeScript default library is read from the directory of
// typescript.js.
func (e *TypeScriptEngine) CreateProgram(ctx context.Context, rootName string, options m.CompilerOptions, host SourceHost) (Program, error) {
	rt, err := e.pool.acquire(ctx)
	if err != nil {
		return nil, err
	}

	bridge, err := loadBridge(rt)
	if err != nil {
		e.pool.discard(rt)
		return nil, err
	}

	valuesJSON := ""

	if len(options.Values) > 0 {
		data, err := json.Marshal(options.Values)
		if err != nil {
			e.pool.release(rt)
			return nil, errors.Wrap(err, "failed to encode compiler options")
		}

		valuesJSON = string(data)
	}

	program, err := bridge.call("createProgram",
		rt.ToValue(rootName),
		rt.ToValue(string(options.ConfigFile)),
		rt.ToValue(valuesJSON),
		hostObject(rt, host),
		rt.ToValue(e.libDir),
	)
	if err != nil {
		e.pool.release(rt)
		return nil, errors.Wrapf(err, "failed to create program for %s", rootName)
	}

	return &tsProgram{
		rt:      rt,
		bridge:  bridge,
		program: program,
		release: e.pool.release,
	}, nil
}

// LocateTypeScriptLib finds typescript.js. The TSEXPAND_TYPESCRIPT
// environment variable wins; otherwise node_modules directories are searched
// from start upwards.
func LocateTypeScriptLib(start string) (string, error) {
	if lib := os.Getenv(TypeScriptLibEnv); lib != "" {
		return lib, nil
	}

	return locateUpwards(start, filepath.Join("node_modules", "typescript", "lib", "typescript.js"))
}

func locateUpwards(start, relative string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, relative)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Errorf("%s not found in any parent directory of %s", relative, start)
		}

		dir = parent
	}
}

// jsBridge gives typed access to the functions of the embedded bridge script.
type jsBridge struct {
	rt  *goja.Runtime
	obj *goja.Object
}

func loadBridge(rt *goja.Runtime) (*jsBridge, error) {
	value := rt.Get("__tsexpand")
	if value == nil || goja.IsUndefined(value) {
		return nil, errors.New("engine bridge is not loaded")
	}

	return &jsBridge{rt: rt, obj: value.ToObject(rt)}, nil
}

func (b *jsBridge) call(name string, args ...goja.Value) (goja.Value, error) {
	fn, ok := goja.AssertFunction(b.obj.Get(name))
	if !ok {
		return nil, errors.Errorf("engine bridge has no function %s", name)
	}

	return fn(goja.Undefined(), args...)
}

// hostObject exposes host to the bridge script. Absence is reported as null.
func hostObject(rt *goja.Runtime, host SourceHost) *goja.Object {
	obj := rt.NewObject()

	set := func(name string, fn func(call goja.FunctionCall) goja.Value) {
		_ = obj.Set(name, fn)
	}

	set("fileExists", func(call goja.FunctionCall) goja.Value {
		return rt.ToValue(host.FileExists(call.Argument(0).String()))
	})
	set("readFile", func(call goja.FunctionCall) goja.Value {
		text, ok := host.ReadFile(call.Argument(0).String())
		if !ok {
			return goja.Null()
		}

		return rt.ToValue(text)
	})
	set("directoryExists", func(call goja.FunctionCall) goja.Value {
		return rt.ToValue(host.DirectoryExists(call.Argument(0).String()))
	})
	set("getDirectories", func(call goja.FunctionCall) goja.Value {
		dirs := host.GetDirectories(call.Argument(0).String())

		items := make([]interface{}, 0, len(dirs))
		for _, dir := range dirs {
			items = append(items, dir)
		}

		return rt.NewArray(items...)
	})
	set("realpath", func(call goja.FunctionCall) goja.Value {
		return rt.ToValue(host.Realpath(call.Argument(0).String()))
	})
	set("getCurrentDirectory", func(_ goja.FunctionCall) goja.Value {
		return rt.ToValue(host.GetCurrentDirectory())
	})
	set("getSourceFile", func(call goja.FunctionCall) goja.Value {
		unit, ok := sourceUnit(host, call.Argument(0).String())
		if !ok {
			return goja.Null()
		}

		out := rt.NewObject()
		_ = out.Set("fileName", unit.FileName)
		_ = out.Set("text", unit.Text)

		return out
	})

	return obj
}

func sourceUnit(host SourceHost, name string) (*m.SourceUnit, bool) {
	if provider, ok := host.(SourceFileProvider); ok {
		return provider.GetSourceFile(name)
	}

	text, ok := host.ReadFile(name)
	if !ok {
		return nil, false
	}

	return &m.SourceUnit{FileName: name, Text: text}, true
}

func installConsole(rt *goja.Runtime, logger *slog.Logger) {
	console := rt.NewObject()
	logFn := func(call goja.FunctionCall) goja.Value {
		args := make([]any, 0, len(call.Arguments))
		for i, arg := range call.Arguments {
			args = append(args, "arg"+strconv.Itoa(i), arg.String())
		}

		logger.Debug("javascript console", args...)

		return goja.Undefined()
	}

	for _, name := range []string{"log", "info", "warn", "error", "debug"} {
		_ = console.Set(name, logFn)
	}

	_ = rt.Set("console", console)
}

type tsProgram struct {
	rt      *goja.Runtime
	bridge  *jsBridge
	program goja.Value
	release func(rt *goja.Runtime)
	closed  bool
}

func (p *tsProgram) SourceFile(name string) (SyntaxNode, bool) {
	value, err := p.bridge.call("sourceFile", p.program, p.rt.ToValue(name))
	if err != nil || value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
		return nil, false
	}

	return &tsNode{p: p, value: value}, true
}

func (p *tsProgram) TypeToString(node SyntaxNode) (string, error) {
	n, ok := node.(*tsNode)
	if !ok || n.p != p {
		return "", errors.New("node does not belong to this program")
	}

	value, err := p.bridge.call("typeToString", p.program, n.value)
	if err != nil {
		return "", errors.Wrap(err, "failed to render type")
	}

	return value.String(), nil
}

func (p *tsProgram) DeclaredTypeNames(name string) ([]string, error) {
	value, err := p.bridge.call("declaredTypeNames", p.program, p.rt.ToValue(name))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list declarations of %s", name)
	}

	if goja.IsNull(value) || goja.IsUndefined(value) {
		return nil, errors.Errorf("source file %s is not part of the program", name)
	}

	var names []string
	if err := p.rt.ExportTo(value, &names); err != nil {
		return nil, errors.Wrap(err, "failed to read declaration names")
	}

	return names, nil
}

func (p *tsProgram) Close() error {
	if p.closed {
		return nil
	}

	p.closed = true
	p.program = nil
	p.release(p.rt)

	return nil
}

type tsNode struct {
	p     *tsProgram
	value goja.Value
}

func (n *tsNode) Kind() string {
	value, err := n.p.bridge.call("kind", n.value)
	if err != nil {
		return ""
	}

	return value.String()
}

func (n *tsNode) IsIdentifier() bool {
	value, err := n.p.bridge.call("isIdentifier", n.value)
	if err != nil {
		return false
	}

	return value.ToBoolean()
}

func (n *tsNode) Text() string {
	value, err := n.p.bridge.call("text", n.value)
	if err != nil {
		return ""
	}

	return value.String()
}

func (n *tsNode) Children() []SyntaxNode {
	value, err := n.p.bridge.call("children", n.value)
	if err != nil {
		return nil
	}

	array := value.ToObject(n.p.rt)
	length := int(array.Get("length").ToInteger())

	children := make([]SyntaxNode, 0, length)
	for i := range length {
		children = append(children, &tsNode{p: n.p, value: array.Get(strconv.Itoa(i))})
	}

	return children
}
