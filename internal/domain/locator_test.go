package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/tsexpand/internal/adapter"
)

type fakeNode struct {
	kind     string
	text     string
	children []adapter.SyntaxNode
}

func (n *fakeNode) Kind() string                   { return n.kind }
func (n *fakeNode) IsIdentifier() bool             { return n.kind == "Identifier" }
func (n *fakeNode) Text() string                   { return n.text }
func (n *fakeNode) Children() []adapter.SyntaxNode { return n.children }

func ident(text string) *fakeNode {
	return &fakeNode{kind: "Identifier", text: text}
}

func branch(kind string, children ...adapter.SyntaxNode) *fakeNode {
	return &fakeNode{kind: kind, children: children}
}

// resultTree mirrors the parse of "type __EXPAND_MY_TYPE__Result = ...; type A = 1;".
func resultTree() *fakeNode {
	return branch("SourceFile",
		branch("TypeAliasDeclaration",
			ident(IdentifierPrefix+"Result"),
			branch("TypeReference", ident(IdentifierPrefix+"Expand")),
		),
		branch("TypeAliasDeclaration",
			ident("A"),
			&fakeNode{kind: "LiteralType", text: "1"},
		),
		&fakeNode{kind: "EndOfFileToken"},
	)
}

func TestFindResultIdentifier(t *testing.T) {
	t.Run("returns the first identifier leaf", func(t *testing.T) {
		node, err := FindResultIdentifier(resultTree())
		require.NoError(t, err)
		require.Equal(t, IdentifierPrefix+"Result", node.Text())
	})

	t.Run("skips leading non-identifier leaves", func(t *testing.T) {
		root := branch("SourceFile",
			branch("TypeAliasDeclaration",
				&fakeNode{kind: "ExportKeyword"},
				ident("First"),
			),
			ident("Second"),
		)

		node, err := FindResultIdentifier(root)
		require.NoError(t, err)
		require.Equal(t, "First", node.Text())
	})

	t.Run("descends depth first before visiting siblings", func(t *testing.T) {
		root := branch("SourceFile",
			branch("A", branch("B", ident("deep"))),
			ident("shallow"),
		)

		node, err := FindResultIdentifier(root)
		require.NoError(t, err)
		require.Equal(t, "deep", node.Text())
	})

	t.Run("fails without identifiers", func(t *testing.T) {
		root := branch("SourceFile", &fakeNode{kind: "EndOfFileToken"})

		_, err := FindResultIdentifier(root)
		require.ErrorIs(t, err, ErrNoNodeFound)
		require.EqualError(t, err, "No node found!")
	})
}
