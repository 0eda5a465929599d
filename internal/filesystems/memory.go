package filesystems

import (
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
)

// MemoryFS implements FileSystem for in-memory filesystem operations
type MemoryFS struct {
	files map[string][]byte
	modes map[string]fs.FileMode
}

// NewMemoryFS creates a new MemoryFS instance
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files: make(map[string][]byte),
		modes: make(map[string]fs.FileMode),
	}
}

// AddFile adds a file to the memory filesystem
func (mfs *MemoryFS) AddFile(name string, content []byte) {
	mfs.files[path.Clean(name)] = content
	mfs.modes[path.Clean(name)] = 0o644
}

func (mfs *MemoryFS) ReadFile(name string) ([]byte, error) {
	content, exists := mfs.files[path.Clean(name)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", name, fs.ErrNotExist)
	}
	return slices.Clone(content), nil
}

func (mfs *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	cleanName := path.Clean(name)
	mfs.files[cleanName] = slices.Clone(data)
	mfs.modes[cleanName] = perm
	return nil
}

func (mfs *MemoryFS) Join(elem ...string) string {
	return path.Join(elem...)
}

// Mode returns the permission bits a file was written with.
func (mfs *MemoryFS) Mode(name string) (fs.FileMode, bool) {
	mode, ok := mfs.modes[path.Clean(name)]
	return mode, ok
}

// Files returns the names of all files in sorted order
func (mfs *MemoryFS) Files() []string {
	return slices.Sorted(maps.Keys(mfs.files))
}
