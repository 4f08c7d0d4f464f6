package adapter

import (
	"context"

	m "github.com/mouse-blink/tsexpand/internal/model"
)

// TypeEngine builds type-checked programs. It is the only component that
// understands the language; the pipeline drives it through this contract.
type TypeEngine interface {
	// CreateProgram type-checks rootName and everything it imports, loading
	// units through host.
	CreateProgram(ctx context.Context, rootName string, options m.CompilerOptions, host SourceHost) (Program, error)
}

// Program is a type-checked set of units. It must be closed to release the
// engine resources it holds.
type Program interface {
	// SourceFile returns the syntax tree root of the named unit.
	SourceFile(name string) (SyntaxNode, bool)

	// TypeToString renders the resolved type at node without truncation.
	TypeToString(node SyntaxNode) (string, error)

	// DeclaredTypeNames lists the top-level type aliases, interfaces, enums
	// and classes declared by the named unit, in source order.
	DeclaredTypeNames(name string) ([]string, error)

	Close() error
}

// SyntaxNode is a node of an engine syntax tree.
type SyntaxNode interface {
	// Kind is the engine's name for the node kind, e.g. "TypeAliasDeclaration".
	Kind() string
	IsIdentifier() bool
	// Text is the node's source text without leading trivia.
	Text() string
	// Children are the node's child nodes, excluding punctuation tokens.
	Children() []SyntaxNode
}
