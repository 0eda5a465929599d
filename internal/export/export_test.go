package export_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/auditdb/stackgen/internal/config"
	"github.com/auditdb/stackgen/internal/environment"
	"github.com/auditdb/stackgen/internal/export"
	"github.com/auditdb/stackgen/internal/preset"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

func resolve(t *testing.T, name string) *config.Config {
	t.Helper()
	cfg, err := config.ResolvePreset(preset.Builtin(), name, environment.FromMap(nil))
	if err != nil {
		t.Fatalf("failed to resolve %s: %v", name, err)
	}
	return &cfg
}

func TestNew(t *testing.T) {
	for _, format := range export.Formats {
		exporter, err := export.New(format)
		if err != nil {
			t.Fatalf("expected exporter for %s, got %v", format, err)
		}
		if exporter.Name() != format {
			t.Errorf("expected exporter name '%s', got '%s'", format, exporter.Name())
		}
	}

	if _, err := export.New("xml"); err == nil {
		t.Errorf("expected error for unknown format")
	}
}

func TestJSONExporter(t *testing.T) {
	output, err := export.NewJSONExporter().Export(resolve(t, "test"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var decoded config.Config
	if err := json.Unmarshal(output, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Preset != "test" || !decoded.WithProxy || decoded.Features[0] != "test_server" {
		t.Errorf("unexpected decoded config %+v", decoded)
	}
}

func TestYAMLExporter(t *testing.T) {
	output, err := export.NewYAMLExporter().Export(resolve(t, "dev"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(string(output), "container_namespace: dev") {
		t.Errorf("expected snake_case keys, got:\n%s", output)
	}

	var decoded config.Config
	if err := yaml.Unmarshal(output, &decoded); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if decoded.ServiceURLs["USERS_SERVICE_URL"] != "0.0.0.0:3001" {
		t.Errorf("unexpected service URLs %v", decoded.ServiceURLs)
	}
}

func TestDotEnvExporter(t *testing.T) {
	output, err := export.NewDotEnvExporter().Export(resolve(t, "prod"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	values, err := godotenv.Unmarshal(string(output))
	if err != nil {
		t.Fatalf("invalid dotenv output: %v", err)
	}
	if len(values) != len(config.URLVariables())+1 {
		t.Errorf("expected %d variables, got %d", len(config.URLVariables())+1, len(values))
	}
	if values["FRONTEND"] != "auditdb.io" || values["API_PREFIX"] != "api" {
		t.Errorf("unexpected dotenv values %v", values)
	}
}
