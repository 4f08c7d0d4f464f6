package typefmt

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		source string
		opts   Options
		want   string
	}{
		{
			name:   "object fits on one line",
			source: "type X = { a: string; b: number; }",
			opts:   DefaultOptions(),
			want:   "type X = { a: string; b: number }\n",
		},
		{
			name:   "object with semicolons",
			source: "type X = { a: string; b: number; }",
			opts:   Options{PrintWidth: 80, TabWidth: 2, Semi: true},
			want:   "type X = { a: string; b: number };\n",
		},
		{
			name:   "empty object",
			source: "type X = {}",
			opts:   DefaultOptions(),
			want:   "type X = {}\n",
		},
		{
			name:   "object breaks one member per line",
			source: "type X = { alpha: string; beta: number; }",
			opts:   Options{PrintWidth: 20, TabWidth: 2},
			want:   "type X = {\n  alpha: string\n  beta: number\n}\n",
		},
		{
			name:   "broken object keeps semicolons when enabled",
			source: "type X = { alpha: string; beta: number; }",
			opts:   Options{PrintWidth: 20, TabWidth: 2, Semi: true},
			want:   "type X = {\n  alpha: string;\n  beta: number;\n};\n",
		},
		{
			name:   "tabs",
			source: "type X = { alpha: string; beta: number; }",
			opts:   Options{PrintWidth: 20, TabWidth: 2, UseTabs: true},
			want:   "type X = {\n\talpha: string\n\tbeta: number\n}\n",
		},
		{
			name:   "union stays inline when it fits",
			source: `type X = "a" | "b"`,
			opts:   DefaultOptions(),
			want:   "type X = \"a\" | \"b\"\n",
		},
		{
			name:   "long union breaks with leading bars",
			source: `type X = "alpha" | "beta" | "gamma"`,
			opts:   Options{PrintWidth: 20, TabWidth: 2},
			want:   "type X =\n  | \"alpha\"\n  | \"beta\"\n  | \"gamma\"\n",
		},
		{
			name:   "function type",
			source: `type X = { c: (a: "a" | "b") => string; }`,
			opts:   DefaultOptions(),
			want:   "type X = { c: (a: \"a\" | \"b\") => string }\n",
		},
		{
			name:   "broken parameters get a trailing comma",
			source: "type X = (first: string, second: number) => void",
			opts:   Options{PrintWidth: 30, TabWidth: 2},
			want:   "type X = (\n  first: string,\n  second: number,\n) => void\n",
		},
		{
			name:   "rest parameter has no trailing comma",
			source: "type X = (first: string, ...rest: number[]) => void",
			opts:   Options{PrintWidth: 30, TabWidth: 2},
			want:   "type X = (\n  first: string,\n  ...rest: number[]\n) => void\n",
		},
		{
			name:   "promise keeps its type argument",
			source: `type X = { a: Promise<"a" | "b">; }`,
			opts:   DefaultOptions(),
			want:   "type X = { a: Promise<\"a\" | \"b\"> }\n",
		},
		{
			name:   "nested objects",
			source: "type X = { d: { e: string; f: number; }; }",
			opts:   DefaultOptions(),
			want:   "type X = { d: { e: string; f: number } }\n",
		},
		{
			name:   "outer object breaks before inner",
			source: "type X = { d: { e: string; f: number; }; g: boolean; }",
			opts:   Options{PrintWidth: 30, TabWidth: 2},
			want:   "type X = {\n  d: { e: string; f: number }\n  g: boolean\n}\n",
		},
		{
			name:   "tuple",
			source: "type X = [string, number]",
			opts:   DefaultOptions(),
			want:   "type X = [string, number]\n",
		},
		{
			name:   "optional and readonly members",
			source: "type X = { readonly a?: string; }",
			opts:   DefaultOptions(),
			want:   "type X = { readonly a?: string }\n",
		},
		{
			name:   "bare type",
			source: "string",
			opts:   DefaultOptions(),
			want:   "string\n",
		},
		{
			name:   "trailing semicolon dropped",
			source: "type X = string;",
			opts:   DefaultOptions(),
			want:   "type X = string\n",
		},
		{
			name:   "template literal",
			source: "type X = `${string}_`",
			opts:   DefaultOptions(),
			want:   "type X = `${string}_`\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.source, tt.opts)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Errors(t *testing.T) {
	for _, source := range []string{
		"type X = { a: string",
		"type X = a: string }",
		"type X = { a: (string }",
		`type X = "unterminated`,
		"type X = `${string",
		"type X = /* open",
	} {
		_, err := Format(source, DefaultOptions())
		require.Error(t, err, source)
	}
}

func TestFormat_Empty(t *testing.T) {
	got, err := Format("  ;  ", DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFormat_WideRunes(t *testing.T) {
	got, err := Format(`type X = { a: "日本語日本語"; b: "日本語日本語"; }`, Options{PrintWidth: 40, TabWidth: 2})
	require.NoError(t, err)
	require.Equal(t, 4, strings.Count(got, "\n"))
}

func TestPrinter_Format(t *testing.T) {
	got, err := NewPrinter().Format(context.Background(), "type X = { a: string; }", map[string]any{
		"parser":     "typescript",
		"semi":       false,
		"printWidth": float64(10),
	})
	require.NoError(t, err)
	require.Equal(t, "type X = {\n  a: string\n}\n", got)
}

func TestParseOptions(t *testing.T) {
	opts := ParseOptions(map[string]any{
		"printWidth": 100,
		"tabWidth":   int64(4),
		"useTabs":    true,
		"semi":       true,
		"parser":     "typescript",
	})

	require.Equal(t, Options{PrintWidth: 100, TabWidth: 4, UseTabs: true, Semi: true}, opts)
	require.Equal(t, DefaultOptions(), ParseOptions(nil))
}
