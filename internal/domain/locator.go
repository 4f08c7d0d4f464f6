package domain

import (
	"github.com/mouse-blink/tsexpand/internal/adapter"
)

// FindResultIdentifier returns the first identifier leaf of root in
// depth-first pre-order. The injected code sits at the very start of the
// unit, so this is always the result alias, never a user identifier.
func FindResultIdentifier(root adapter.SyntaxNode) (adapter.SyntaxNode, error) {
	if node := firstIdentifierLeaf(root); node != nil {
		return node, nil
	}

	return nil, ErrNoNodeFound
}

func firstIdentifierLeaf(node adapter.SyntaxNode) adapter.SyntaxNode {
	children := node.Children()
	if len(children) == 0 {
		if node.IsIdentifier() {
			return node
		}

		return nil
	}

	for _, child := range children {
		if found := firstIdentifierLeaf(child); found != nil {
			return found
		}
	}

	return nil
}
