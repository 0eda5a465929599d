package filesystems

import (
	"io/fs"
	"os"
	"path/filepath"
)

// LocalFS implements FileSystem on the local disk. Relative names resolve
// against Root.
type LocalFS struct {
	Root string
}

// NewLocalFS creates a LocalFS rooted at root ("" means the working directory)
func NewLocalFS(root string) *LocalFS {
	return &LocalFS{Root: root}
}

func (lfs *LocalFS) resolve(name string) string {
	if lfs.Root == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(lfs.Root, name)
}

func (lfs *LocalFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(lfs.resolve(name))
}

func (lfs *LocalFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	target := lfs.resolve(name)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, data, perm)
}

func (lfs *LocalFS) Join(elem ...string) string {
	return filepath.Join(elem...)
}
