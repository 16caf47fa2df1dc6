package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
)

// MemorySystem is an in-memory stand-in for the render System.
// Fail* fields inject errors; Files holds every successful write.
type MemorySystem struct {
	mu sync.Mutex

	Files     map[string][]byte
	Modes     map[string]fs.FileMode
	Dirs      []string
	FailMkdir error
	FailWrite error
	FailRead  error
}

// NewMemorySystem returns an empty MemorySystem.
func NewMemorySystem() *MemorySystem {
	return &MemorySystem{Files: map[string][]byte{}, Modes: map[string]fs.FileMode{}}
}

// MkdirAll records path unless FailMkdir is set.
func (m *MemorySystem) MkdirAll(path string, _ os.FileMode) error {
	if m.FailMkdir != nil {
		return m.FailMkdir
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Dirs = append(m.Dirs, path)
	return nil
}

// WriteFileAtomic stores a copy of data unless FailWrite is set.
func (m *MemorySystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	if m.FailWrite != nil {
		return m.FailWrite
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Files[filename] = append([]byte(nil), data...)
	m.Modes[filename] = perm
	return nil
}

// ReadFile returns a previously written file or fs.ErrNotExist.
func (m *MemorySystem) ReadFile(name string) ([]byte, error) {
	if m.FailRead != nil {
		return nil, m.FailRead
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// Written returns the sorted paths of every file written so far.
func (m *MemorySystem) Written() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.Files))
	for p := range m.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// WriteFile writes content to dir/name, creating parent directories, and returns the path.
func WriteFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
