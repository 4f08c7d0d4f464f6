// Package model defines the data structures passed between the expansion
// pipeline stages.
package model

// Request describes a single type expansion.
type Request struct {
	// Expression is the type expression to expand, e.g. "ReturnType<typeof fn>".
	Expression string
	Source     SourceRef
	// CompilerOptions are handed to the type engine verbatim.
	CompilerOptions CompilerOptions
	Prettify        PrettifyOptions
	// Overrides replace individual source loading operations.
	Overrides HostOverrides
}

// CompilerOptions configures the type engine.
type CompilerOptions struct {
	// ConfigFile points at a tsconfig.json whose compilerOptions are loaded first.
	ConfigFile Path
	// Values are tsconfig-shaped compiler options (e.g. {"strict": true}) applied
	// on top of ConfigFile.
	Values map[string]any
}

// IsZero reports whether no compiler options were supplied at all.
func (o CompilerOptions) IsZero() bool {
	return o.ConfigFile == "" && len(o.Values) == 0
}

// PrettifyOptions configures the output formatter.
type PrettifyOptions struct {
	// Enabled defaults to true when nil.
	Enabled *bool
	// Options are passed through to the formatter.
	Options map[string]any
}

// IsEnabled reports whether the result should be reformatted.
func (o PrettifyOptions) IsEnabled() bool {
	return o.Enabled == nil || *o.Enabled
}

// Bool returns a pointer to b, handy for PrettifyOptions.Enabled.
func Bool(b bool) *bool {
	return &b
}

// HostOverrides replace individual operations of the source loading contract.
// A nil field keeps the base behavior.
type HostOverrides struct {
	FileExists          func(name string) bool
	ReadFile            func(name string) (string, bool)
	DirectoryExists     func(name string) bool
	GetDirectories      func(name string) []string
	Realpath            func(name string) string
	GetCurrentDirectory func() string
	// GetSourceFile replaces unit construction entirely; the returned text is
	// parsed by the engine as is.
	GetSourceFile func(name string) (*SourceUnit, bool)
}
