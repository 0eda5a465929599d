package export

import (
	"github.com/auditdb/stackgen/internal/config"
	"github.com/joho/godotenv"
)

// DotEnvExporter prints the values the rendered compose file interpolates
// from the deploy environment and that the configuration can provide: the
// service URLs, FRONTEND and API_PREFIX. Secrets are never included.
type DotEnvExporter struct{}

func (e *DotEnvExporter) Name() string {
	return "dotenv"
}

func (e *DotEnvExporter) Export(cfg *config.Config) ([]byte, error) {
	values := make(map[string]string, len(cfg.ServiceURLs)+1)
	for name, url := range cfg.ServiceURLs {
		values[name] = url
	}
	values["API_PREFIX"] = cfg.APIPrefix

	out, err := godotenv.Marshal(values)
	if err != nil {
		return nil, err
	}
	return []byte(out + "\n"), nil
}

func NewDotEnvExporter() Exporter {
	return &DotEnvExporter{}
}
