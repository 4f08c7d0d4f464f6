// Package adapter contains the infrastructure ports the expansion pipeline
// talks to: source loading, the type engine and the output formatter.
package adapter

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/viant/afs"

	m "github.com/mouse-blink/tsexpand/internal/model"
)

// SourceHost is the source loading contract the type engine reads program
// units through. It hides direct storage access so the pipeline can be tested
// without touching the disk.
//
//nolint:interfacebloat // Mirrors the loading operations the engine needs.
type SourceHost interface {
	// FileExists reports whether a unit with the given name can be read.
	FileExists(name string) bool

	// ReadFile returns the unit's text. The boolean is false when the unit
	// is absent.
	ReadFile(name string) (string, bool)

	// DirectoryExists reports whether name is a directory.
	DirectoryExists(name string) bool

	// GetDirectories lists the names of the sub-directories of name.
	GetDirectories(name string) []string

	// Realpath canonicalizes name, resolving symlinks where supported.
	Realpath(name string) string

	// GetCurrentDirectory returns the directory relative names resolve against.
	GetCurrentDirectory() string
}

// SourceFileProvider is implemented by hosts that construct program units
// themselves instead of leaving it to a plain ReadFile.
type SourceFileProvider interface {
	GetSourceFile(name string) (*m.SourceUnit, bool)
}

// LocalSourceHost is the SourceHost backed by an abstract file storage. Plain
// paths resolve to the local disk; URLs (mem://, gs://, s3://...) go through
// the matching storage scheme.
type LocalSourceHost struct {
	fs  afs.Service
	ctx context.Context
}

// NewLocalSourceHost constructs a LocalSourceHost. A nil fs uses afs.New().
func NewLocalSourceHost(fs afs.Service) *LocalSourceHost {
	if fs == nil {
		fs = afs.New()
	}

	return &LocalSourceHost{fs: fs, ctx: context.Background()}
}

// FileExists reports whether name exists and is not a directory.
func (h *LocalSourceHost) FileExists(name string) bool {
	object, err := h.fs.Object(h.ctx, name)
	if err != nil || object == nil {
		return false
	}

	return !object.IsDir()
}

// ReadFile downloads the unit's content.
func (h *LocalSourceHost) ReadFile(name string) (string, bool) {
	if !h.FileExists(name) {
		return "", false
	}

	data, err := h.fs.DownloadWithURL(h.ctx, name)
	if err != nil {
		return "", false
	}

	return string(data), true
}

// DirectoryExists reports whether name exists and is a directory.
func (h *LocalSourceHost) DirectoryExists(name string) bool {
	object, err := h.fs.Object(h.ctx, name)
	if err != nil || object == nil {
		return false
	}

	return object.IsDir()
}

// GetDirectories returns the base names of the directories directly under name.
func (h *LocalSourceHost) GetDirectories(name string) []string {
	objects, err := h.fs.List(h.ctx, name)
	if err != nil {
		return nil
	}

	base := path.Base(strings.TrimSuffix(filepath.ToSlash(name), "/"))

	var dirs []string

	for i, object := range objects {
		if !object.IsDir() {
			continue
		}

		// The listing starts with the directory itself.
		if i == 0 && object.Name() == base {
			continue
		}

		dirs = append(dirs, object.Name())
	}

	return dirs
}

// Realpath resolves symlinks for local paths. URLs are returned unchanged.
func (h *LocalSourceHost) Realpath(name string) string {
	if strings.Contains(name, "://") {
		return name
	}

	resolved, err := filepath.EvalSymlinks(name)
	if err != nil {
		return name
	}

	return filepath.ToSlash(resolved)
}

// GetCurrentDirectory returns the process working directory in slash form.
func (h *LocalSourceHost) GetCurrentDirectory() string {
	wd, err := os.Getwd()
	if err != nil {
		return "/"
	}

	return filepath.ToSlash(wd)
}

// NormalizeUnitName turns name into the absolute slash-separated form the type
// engine uses for unit names. URLs are returned unchanged.
func NormalizeUnitName(name string) (string, error) {
	if strings.Contains(name, "://") {
		return name, nil
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(abs), nil
}
