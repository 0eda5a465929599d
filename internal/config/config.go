package config

import (
	"fmt"
	"maps"
	"slices"
)

// Config is a fully resolved deployment configuration. Every field is
// required; FromPreset refuses to build a Config with a key left undefined.
type Config struct {
	Preset string `json:"preset" yaml:"preset"`

	OpenDatabase bool `json:"openDatabase" yaml:"open_database"`
	WithProxy    bool `json:"withProxy" yaml:"with_proxy"`

	ContainerNamespace string `json:"containerNamespace" yaml:"container_namespace"`
	VolumeNamespace    string `json:"volumeNamespace" yaml:"volume_namespace"`
	NetworkNamespace   string `json:"networkNamespace" yaml:"network_namespace"`
	APIPrefix          string `json:"apiPrefix" yaml:"api_prefix"`
	ProxyNetwork       string `json:"proxyNetwork" yaml:"proxy_network"`
	ProjectName        string `json:"projectName" yaml:"project_name"`

	// ServiceURLs maps each URL variable of the compose file (USERS_SERVICE_URL,
	// FRONTEND, ...) to the externally reachable address of that service.
	ServiceURLs map[string]string `json:"serviceUrls" yaml:"service_urls"`

	Features []string `json:"features,omitempty" yaml:"features,omitempty"`
}

// URLVariable ties a compose URL variable to the preset address key that
// provides its value.
type URLVariable struct {
	Name    string
	Address string
}

// URLVariables lists the URL variables in the order they appear in the
// compose file.
func URLVariables() []URLVariable {
	return []URLVariable{
		{Name: "AUDITORS_SERVICE_URL", Address: "auditors"},
		{Name: "AUDITS_SERVICE_URL", Address: "audits"},
		{Name: "CUSTOMERS_SERVICE_URL", Address: "customers"},
		{Name: "FILES_SERVICE_URL", Address: "files"},
		{Name: "MAIL_SERVICE_URL", Address: "mail"},
		{Name: "SEARCH_SERVICE_URL", Address: "search"},
		{Name: "USERS_SERVICE_URL", Address: "users"},
		{Name: "RENDERER_SERVICE_URL", Address: "renderer"},
		{Name: "NOTIFICATIONS_SERVICE_URL", Address: "notification"},
		{Name: "EVENTS_SERVICE_URL", Address: "event"},
		{Name: "FRONTEND", Address: "frontend"},
	}
}

// MissingKeyError reports a configuration key the preset (after overrides)
// leaves undefined, or sets to an empty string when Empty is true.
type MissingKeyError struct {
	Preset string
	Key    string
	Empty  bool
}

func (e *MissingKeyError) Error() string {
	var msg string
	if e.Empty {
		msg = fmt.Sprintf("required configuration key %q is empty", e.Key)
	} else {
		msg = fmt.Sprintf("missing required configuration key %q", e.Key)
	}
	if e.Preset == "" {
		return msg
	}
	return fmt.Sprintf("preset %q: %s", e.Preset, msg)
}

// HasFeatures reports whether the build enables extra cargo features.
func (c Config) HasFeatures() bool {
	return len(c.Features) > 0
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.ServiceURLs = maps.Clone(c.ServiceURLs)
	out.Features = slices.Clone(c.Features)
	return out
}
