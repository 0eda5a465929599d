// Package render turns a resolved configuration into the compose file and
// the Dockerfile of the stack.
package render

import (
	"github.com/auditdb/stackgen/internal/catalog"
	"github.com/auditdb/stackgen/internal/config"
)

// Output file names.
const (
	ComposeFile    = "docker-compose.yml"
	DockerfileFile = "Dockerfile"
)

// Manifest holds the rendered artifacts.
type Manifest struct {
	Compose    []byte
	Dockerfile []byte
}

// Files returns the artifacts keyed by output file name, in write order.
func (m Manifest) Files() []File {
	return []File{
		{Name: ComposeFile, Content: m.Compose},
		{Name: DockerfileFile, Content: m.Dockerfile},
	}
}

// File is one rendered artifact.
type File struct {
	Name    string
	Content []byte
}

// Render renders every artifact for cfg. It returns either a complete
// manifest or an error, never a partial manifest.
func Render(cfg config.Config) (Manifest, error) {
	compose, err := Compose(cfg, catalog.Services(cfg))
	if err != nil {
		return Manifest{}, err
	}

	dockerfile, err := Dockerfile(cfg)
	if err != nil {
		return Manifest{}, err
	}

	return Manifest{Compose: compose, Dockerfile: dockerfile}, nil
}
