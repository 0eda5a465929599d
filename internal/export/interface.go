package export

import (
	"fmt"

	"github.com/auditdb/stackgen/internal/config"
)

// Exporter defines the interface for printing a resolved configuration
type Exporter interface {
	// Export converts a configuration to the target format
	Export(cfg *config.Config) ([]byte, error)

	// Name returns the exporter name (e.g., "json", "yaml", "dotenv")
	Name() string
}

// Formats lists the accepted values of New.
var Formats = []string{"yaml", "json", "dotenv"}

// New returns the exporter for format.
func New(format string) (Exporter, error) {
	switch format {
	case "yaml", "yml", "":
		return NewYAMLExporter(), nil
	case "json":
		return NewJSONExporter(), nil
	case "dotenv", "env":
		return NewDotEnvExporter(), nil
	default:
		return nil, fmt.Errorf("unknown export format %q (expected one of %v)", format, Formats)
	}
}
