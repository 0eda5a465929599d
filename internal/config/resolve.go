package config

import (
	"strconv"
	"strings"

	"github.com/auditdb/stackgen/internal/environment"
	"github.com/auditdb/stackgen/internal/preset"
)

// Environment variables read by the resolver.
const (
	PresetVariable             = "PRESET"
	OpenDatabaseVariable       = "OPEN_DATABASE"
	WithProxyVariable          = "WITH_PROXY"
	ContainerNamespaceVariable = "CONTAINER_NAMESPACE"
	VolumeNamespaceVariable    = "VOLUME_NAMESPACE"
	NetworkNamespaceVariable   = "NETWORK_NAMESPACE"
	APIPrefixVariable          = "API_PREFIX"
)

// OverrideVariables lists the variables that may override a preset value.
func OverrideVariables() []string {
	return []string{
		OpenDatabaseVariable,
		WithProxyVariable,
		ContainerNamespaceVariable,
		VolumeNamespaceVariable,
		NetworkNamespaceVariable,
		APIPrefixVariable,
	}
}

// Resolve selects the preset named by PRESET in snapshot and resolves it.
func Resolve(table preset.Table, snapshot environment.Snapshot) (Config, error) {
	name, ok := snapshot.Lookup(PresetVariable)
	if !ok {
		return Config{}, &MissingKeyError{Key: PresetVariable}
	}
	return ResolvePreset(table, name, snapshot)
}

// ResolvePreset looks up name, applies environment overrides and validates
// the result.
func ResolvePreset(table preset.Table, name string, snapshot environment.Snapshot) (Config, error) {
	p, err := table.Lookup(name)
	if err != nil {
		return Config{}, err
	}
	return FromPreset(name, ApplyOverrides(p, snapshot))
}

// ApplyOverrides replaces preset values with environment values. An override
// only applies when the preset already defines the key: a nil preset field
// stays nil even if the environment provides a value.
func ApplyOverrides(p preset.Preset, snapshot environment.Snapshot) preset.Preset {
	out := p.Clone()

	overrideBool(&out.OpenDatabase, snapshot, OpenDatabaseVariable)
	overrideBool(&out.WithProxy, snapshot, WithProxyVariable)
	overrideString(&out.ContainerNamespace, snapshot, ContainerNamespaceVariable)
	overrideString(&out.VolumeNamespace, snapshot, VolumeNamespaceVariable)
	overrideString(&out.NetworkNamespace, snapshot, NetworkNamespaceVariable)
	overrideString(&out.APIPrefix, snapshot, APIPrefixVariable)

	return out
}

func overrideBool(field **bool, snapshot environment.Snapshot, variable string) {
	value, ok := snapshot.Lookup(variable)
	if !ok || *field == nil {
		return
	}
	parsed := ParseBool(value)
	*field = &parsed
}

func overrideString(field **string, snapshot environment.Snapshot, variable string) {
	value, ok := snapshot.Lookup(variable)
	if !ok || *field == nil {
		return
	}
	*field = &value
}

// ParseBool interprets a boolean flag variable. Recognised boolean words
// (true, false, 1, 0, ...) parse as such; any other non-empty text is true
// and empty text is false.
func ParseBool(value string) bool {
	trimmed := strings.TrimSpace(value)
	if parsed, err := strconv.ParseBool(trimmed); err == nil {
		return parsed
	}
	return trimmed != ""
}

// FromPreset validates p and flattens it into a Config.
func FromPreset(name string, p preset.Preset) (Config, error) {
	missing := func(key string) error {
		return &MissingKeyError{Preset: name, Key: key}
	}

	cfg := Config{Preset: name}

	if p.OpenDatabase == nil {
		return Config{}, missing("open_database")
	}
	cfg.OpenDatabase = *p.OpenDatabase

	if p.WithProxy == nil {
		return Config{}, missing("with_proxy")
	}
	cfg.WithProxy = *p.WithProxy

	required := []struct {
		key   string
		value *string
		dst   *string
	}{
		{"container_namespace", p.ContainerNamespace, &cfg.ContainerNamespace},
		{"volume_namespace", p.VolumeNamespace, &cfg.VolumeNamespace},
		{"network_namespace", p.NetworkNamespace, &cfg.NetworkNamespace},
		{"api_prefix", p.APIPrefix, &cfg.APIPrefix},
		{"proxy_network", p.ProxyNetwork, &cfg.ProxyNetwork},
		{"project_name", p.ProjectName, &cfg.ProjectName},
	}
	for _, field := range required {
		if field.value == nil {
			return Config{}, missing(field.key)
		}
		if *field.value == "" {
			return Config{}, &MissingKeyError{Preset: name, Key: field.key, Empty: true}
		}
		*field.dst = *field.value
	}

	urlVariables := URLVariables()
	cfg.ServiceURLs = make(map[string]string, len(urlVariables))
	for _, variable := range urlVariables {
		if address, ok := p.Addresses[variable.Address]; ok {
			cfg.ServiceURLs[variable.Name] = address
			continue
		}
		if p.ProxyAddress == nil {
			return Config{}, missing("addresses." + variable.Address)
		}
		cfg.ServiceURLs[variable.Name] = *p.ProxyAddress
	}

	if len(p.Features) > 0 {
		cfg.Features = append([]string{}, p.Features...)
	}

	return cfg, nil
}
