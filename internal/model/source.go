package model

import (
	"github.com/pkg/errors"
)

// Path represents a file system path or a storage URL.
type Path string

// SourceRef identifies the program unit a type expression is evaluated in.
// Exactly one of File and Text is set.
type SourceRef struct {
	// File names a unit resolvable by the type engine.
	File Path
	// Text is raw source without a file identity.
	Text *string
}

// FileSource references an existing program unit.
func FileSource(path Path) SourceRef {
	return SourceRef{File: path}
}

// TextSource references raw source text.
func TextSource(text string) SourceRef {
	return SourceRef{Text: &text}
}

// IsText reports whether the reference carries raw source text.
func (s SourceRef) IsText() bool {
	return s.Text != nil
}

// Validate checks that exactly one of File and Text is set.
func (s SourceRef) Validate() error {
	if s.Text != nil && s.File != "" {
		return errors.New("source reference has both a file and raw text")
	}

	if s.Text == nil && s.File == "" {
		return errors.New("source reference has neither a file nor raw text")
	}

	return nil
}

// SourceUnit is the text of a single program unit, ready to be parsed by the
// type engine.
type SourceUnit struct {
	FileName string
	Text     string
}
