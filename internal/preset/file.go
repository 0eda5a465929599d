package preset

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadFile decodes a TOML presets file. Each top-level table is one preset:
//
//	[staging]
//	open_database = false
//	with_proxy = true
//	container_namespace = "staging"
//
//	[staging.addresses]
//	users = "staging.auditdb.io"
//
// Unknown keys are rejected so a typo cannot silently leave a key undefined.
func LoadFile(path string) (Table, error) {
	var table Table
	meta, err := toml.DecodeFile(path, &table)
	if err != nil {
		return nil, fmt.Errorf("failed to decode presets file %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("presets file %s has unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return table, nil
}

// Load returns the built-in presets overlaid by the presets in path. An empty
// path returns the built-in table unchanged.
func Load(path string) (Table, error) {
	builtin := Builtin()
	if path == "" {
		return builtin, nil
	}

	extra, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return builtin.With(extra), nil
}
