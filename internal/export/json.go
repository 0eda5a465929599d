package export

import (
	"encoding/json"

	"github.com/auditdb/stackgen/internal/config"
)

type JSONExporter struct{}

func (e *JSONExporter) Name() string {
	return "json"
}

func (e *JSONExporter) Export(cfg *config.Config) ([]byte, error) {
	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func NewJSONExporter() Exporter {
	return &JSONExporter{}
}
