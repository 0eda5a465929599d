package filesystems

import (
	"io/fs"
)

// FileSystem abstracts the file operations stackgen performs, so artifacts
// can be written to disk or kept in memory for tests and dry runs.
type FileSystem interface {
	// ReadFile reads the named file and returns its contents. Missing files
	// report an error matching fs.ErrNotExist.
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to the named file, replacing any existing content
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Join joins path elements into a single path
	Join(elem ...string) string
}

// Exists reports whether name can be read from filesystem.
func Exists(filesystem FileSystem, name string) bool {
	_, err := filesystem.ReadFile(name)
	return err == nil
}
