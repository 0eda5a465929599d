package export

import (
	"bytes"

	"github.com/auditdb/stackgen/internal/config"
	"gopkg.in/yaml.v3"
)

type YAMLExporter struct{}

func (e *YAMLExporter) Name() string {
	return "yaml"
}

func (e *YAMLExporter) Export(cfg *config.Config) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func NewYAMLExporter() Exporter {
	return &YAMLExporter{}
}
