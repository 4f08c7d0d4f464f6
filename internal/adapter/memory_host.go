package adapter

import (
	"path"
	"sort"
	"strings"
	"sync"
)

// MemorySourceHost serves program units from an in-memory store. Names are
// slash-separated; relative names resolve against the host's working directory.
type MemorySourceHost struct {
	cwd   string
	files map[string]string
	mutex sync.RWMutex
}

// NewMemorySourceHost creates an empty in-memory host rooted at cwd.
func NewMemorySourceHost(cwd string) *MemorySourceHost {
	if cwd == "" {
		cwd = "/"
	}

	return &MemorySourceHost{
		cwd:   path.Clean(cwd),
		files: make(map[string]string),
	}
}

// AddFile stores content under name, replacing any previous content.
func (h *MemorySourceHost) AddFile(name, content string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.files[h.resolve(name)] = content
}

// FileExists reports whether name was added.
func (h *MemorySourceHost) FileExists(name string) bool {
	_, ok := h.ReadFile(name)
	return ok
}

// ReadFile returns the content stored under name.
func (h *MemorySourceHost) ReadFile(name string) (string, bool) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	content, ok := h.files[h.resolve(name)]

	return content, ok
}

// DirectoryExists reports whether any stored file lives below name.
func (h *MemorySourceHost) DirectoryExists(name string) bool {
	prefix := strings.TrimSuffix(h.resolve(name), "/") + "/"

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for file := range h.files {
		if strings.HasPrefix(file, prefix) {
			return true
		}
	}

	return false
}

// GetDirectories lists the immediate sub-directories of name.
func (h *MemorySourceHost) GetDirectories(name string) []string {
	prefix := strings.TrimSuffix(h.resolve(name), "/") + "/"
	seen := make(map[string]struct{})

	h.mutex.RLock()

	for file := range h.files {
		rest, ok := strings.CutPrefix(file, prefix)
		if !ok {
			continue
		}

		if dir, _, nested := strings.Cut(rest, "/"); nested {
			seen[dir] = struct{}{}
		}
	}

	h.mutex.RUnlock()

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}

	sort.Strings(dirs)

	return dirs
}

// Realpath cleans name; the memory store has no links.
func (h *MemorySourceHost) Realpath(name string) string {
	return h.resolve(name)
}

// GetCurrentDirectory returns the directory the host was created with.
func (h *MemorySourceHost) GetCurrentDirectory() string {
	return h.cwd
}

func (h *MemorySourceHost) resolve(name string) string {
	if path.IsAbs(name) {
		return path.Clean(name)
	}

	return path.Join(h.cwd, name)
}
