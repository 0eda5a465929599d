package artifact

import (
	"fmt"

	"github.com/auditdb/stackgen/internal/filesystems"
	"github.com/auditdb/stackgen/internal/render"
	"github.com/go-logr/logr"
)

const filePerm = 0o644

// Writer persists rendered manifests, replacing existing files.
type Writer struct {
	filesystem filesystems.FileSystem
	log        logr.Logger
}

func NewWriter(filesystem filesystems.FileSystem, log logr.Logger) *Writer {
	return &Writer{filesystem: filesystem, log: log}
}

// Write writes every file of manifest and returns the paths written. The
// manifest is complete by construction, so a render failure can never leave
// a half-written pair behind.
func (w *Writer) Write(manifest render.Manifest) ([]string, error) {
	var written []string
	for _, file := range manifest.Files() {
		if err := w.filesystem.WriteFile(file.Name, file.Content, filePerm); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", file.Name, err)
		}
		w.log.V(1).Info("wrote artifact", "file", file.Name, "bytes", len(file.Content))
		written = append(written, file.Name)
	}
	return written, nil
}
