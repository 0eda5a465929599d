package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/auditdb/stackgen/internal/config"
)

// DockerfileTemplate builds the backend workspace with cargo-chef: the planner
// and cook steps prefetch and compile dependencies, then the workspace itself
// is built and setup.sh starts the services.
const DockerfileTemplate = `FROM rust:bookworm AS chef
RUN cargo install cargo-chef --locked
WORKDIR /app
FROM chef AS planner
COPY . .
RUN cargo chef prepare --recipe-path recipe.json
FROM chef AS builder
COPY --from=planner /app/recipe.json recipe.json
RUN cargo chef cook --release --recipe-path recipe.json
COPY . .
RUN cargo build --release{{if .Features}} --features "{{join .Features " "}}"{{end}}
RUN chmod +x ./setup.sh
CMD ["./setup.sh"]
`

var dockerfileTemplate = template.Must(template.New("Dockerfile").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(DockerfileTemplate))

type dockerfileData struct {
	Features []string
}

// Dockerfile renders the build file for cfg.
func Dockerfile(cfg config.Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := dockerfileTemplate.Execute(&buf, dockerfileData{Features: cfg.Features}); err != nil {
		return nil, fmt.Errorf("failed to render Dockerfile: %w", err)
	}
	return buf.Bytes(), nil
}
