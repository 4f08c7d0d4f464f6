package domain

import (
	"path"

	"github.com/mouse-blink/tsexpand/internal/adapter"
	m "github.com/mouse-blink/tsexpand/internal/model"
)

// AugmentedHost wraps a SourceHost so that exactly one designated unit is
// read with injected code prepended. All other units pass through unchanged.
// Overridden operations replace the base behavior for every unit.
type AugmentedHost struct {
	base       adapter.SourceHost
	designated string
	code       string
	overrides  m.HostOverrides
}

var (
	_ adapter.SourceHost         = (*AugmentedHost)(nil)
	_ adapter.SourceFileProvider = (*AugmentedHost)(nil)
)

// NewAugmentedHost derives a host that prepends code to the designated unit.
// designated must be in the engine's unit name form (see
// adapter.NormalizeUnitName).
func NewAugmentedHost(base adapter.SourceHost, designated, code string, overrides m.HostOverrides) *AugmentedHost {
	return &AugmentedHost{
		base:       base,
		designated: designated,
		code:       code,
		overrides:  overrides,
	}
}

// NewOverrideHost applies overrides to base without augmenting any unit.
func NewOverrideHost(base adapter.SourceHost, overrides m.HostOverrides) *AugmentedHost {
	return NewAugmentedHost(base, "", "", overrides)
}

// FileExists checks existence through the override or the base host.
func (h *AugmentedHost) FileExists(name string) bool {
	if h.overrides.FileExists != nil {
		return h.overrides.FileExists(name)
	}

	return h.base.FileExists(name)
}

// ReadFile returns the unit's content, with the injected code first for the
// designated unit. An absent unit stays absent.
func (h *AugmentedHost) ReadFile(name string) (string, bool) {
	content, ok := h.readOriginal(name)
	if !ok {
		return "", false
	}

	if !h.isDesignated(name) {
		return content, true
	}

	return h.augment(content), true
}

// GetSourceFile constructs the unit the engine parses. With a GetSourceFile
// override the override's unit is used and augmented; otherwise the unit is
// built from ReadFile.
func (h *AugmentedHost) GetSourceFile(name string) (*m.SourceUnit, bool) {
	if h.overrides.GetSourceFile == nil {
		content, ok := h.ReadFile(name)
		if !ok {
			return nil, false
		}

		return &m.SourceUnit{FileName: name, Text: content}, true
	}

	unit, ok := h.overrides.GetSourceFile(name)
	if !ok || unit == nil {
		return nil, false
	}

	if !h.isDesignated(name) {
		return unit, true
	}

	return &m.SourceUnit{FileName: unit.FileName, Text: h.augment(unit.Text)}, true
}

// DirectoryExists delegates to the override or the base host.
func (h *AugmentedHost) DirectoryExists(name string) bool {
	if h.overrides.DirectoryExists != nil {
		return h.overrides.DirectoryExists(name)
	}

	return h.base.DirectoryExists(name)
}

// GetDirectories delegates to the override or the base host.
func (h *AugmentedHost) GetDirectories(name string) []string {
	if h.overrides.GetDirectories != nil {
		return h.overrides.GetDirectories(name)
	}

	return h.base.GetDirectories(name)
}

// Realpath delegates to the override or the base host.
func (h *AugmentedHost) Realpath(name string) string {
	if h.overrides.Realpath != nil {
		return h.overrides.Realpath(name)
	}

	return h.base.Realpath(name)
}

// GetCurrentDirectory delegates to the override or the base host.
func (h *AugmentedHost) GetCurrentDirectory() string {
	if h.overrides.GetCurrentDirectory != nil {
		return h.overrides.GetCurrentDirectory()
	}

	return h.base.GetCurrentDirectory()
}

func (h *AugmentedHost) readOriginal(name string) (string, bool) {
	if h.overrides.ReadFile != nil {
		return h.overrides.ReadFile(name)
	}

	return h.base.ReadFile(name)
}

func (h *AugmentedHost) isDesignated(name string) bool {
	return h.designated != "" && path.Clean(name) == path.Clean(h.designated)
}

func (h *AugmentedHost) augment(content string) string {
	return h.code + "\n" + content
}

// RawTextOverrides extends overrides so that the unit whose base name matches
// unit is served from text, ignoring the base host. Every other unit keeps the
// loading behavior of overrides on top of base.
func RawTextOverrides(base adapter.SourceHost, overrides m.HostOverrides, unit, text string) m.HostOverrides {
	name := path.Base(unit)
	host := NewOverrideHost(base, overrides)
	next := overrides.GetSourceFile

	out := overrides
	out.FileExists = func(file string) bool {
		if path.Base(file) == name {
			return true
		}

		return host.FileExists(file)
	}
	out.ReadFile = func(file string) (string, bool) {
		if path.Base(file) == name {
			return text, true
		}

		return host.ReadFile(file)
	}
	out.GetSourceFile = func(file string) (*m.SourceUnit, bool) {
		if path.Base(file) == name {
			return &m.SourceUnit{FileName: file, Text: text}, true
		}

		if next != nil {
			return next(file)
		}

		return host.GetSourceFile(file)
	}

	return out
}
