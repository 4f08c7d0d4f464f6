package tsexpand

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/tsexpand/internal/adapter"
	"github.com/mouse-blink/tsexpand/internal/adapter/mocks"
)

type sourceFile struct{}

func (sourceFile) Kind() string                   { return "SourceFile" }
func (sourceFile) IsIdentifier() bool             { return false }
func (sourceFile) Text() string                   { return "" }
func (sourceFile) Children() []adapter.SyntaxNode { return nil }

func TestExpand_EmptyExpression(t *testing.T) {
	// No engine is built for a blank expression, so a bogus lib path is fine.
	missing := WithTypeScriptLib(filepath.Join(t.TempDir(), "missing.js"))

	for _, expr := range []string{"", "   ", "\n\t"} {
		out, err := Expand(context.Background(), Request{Expression: expr, Source: TextSource("type A = 1")}, missing)
		require.NoError(t, err)
		require.Equal(t, NeverType, out)
	}
}

func TestNew(t *testing.T) {
	t.Run("missing typescript library", func(t *testing.T) {
		_, err := New(WithTypeScriptLib(filepath.Join(t.TempDir(), "typescript.js")))
		require.ErrorContains(t, err, "failed to read TypeScript library")
	})

	t.Run("missing prettier bundle", func(t *testing.T) {
		_, err := New(WithEngine(mocks.NewMockTypeEngine(t)), WithPrettier(t.TempDir()))
		require.ErrorContains(t, err, "failed to read prettier bundle")
	})

	t.Run("injected collaborators", func(t *testing.T) {
		host := adapter.NewMemorySourceHost("/work")
		host.AddFile("/work/a.ts", "type A = 1")

		program := mocks.NewMockProgram(t)
		program.EXPECT().SourceFile("/work/a.ts").Return(nil, false).Once()
		program.EXPECT().SourceFile("/work/a.ts").Return(sourceFile{}, true).Once()
		program.EXPECT().DeclaredTypeNames("/work/a.ts").Return([]string{"A"}, nil)
		program.EXPECT().Close().Return(nil)

		engine := mocks.NewMockTypeEngine(t)
		engine.EXPECT().
			CreateProgram(mock.Anything, "/work/a.ts", mock.Anything, mock.Anything).
			Return(program, nil)

		client, err := New(
			WithSourceHost(host),
			WithEngine(engine),
			WithFormatter(mocks.NewMockFormatter(t)),
			WithRuntimePool(2),
		)
		require.NoError(t, err)

		_, err = client.Expand(context.Background(), Request{Expression: "A", Source: FileSource("/work/a.ts")})
		require.ErrorIs(t, err, ErrSourceFileNotFound)

		names, err := client.DeclaredTypes(context.Background(), Request{Source: FileSource("/work/a.ts")})
		require.NoError(t, err)
		require.Equal(t, []string{"A"}, names)
	})
}
