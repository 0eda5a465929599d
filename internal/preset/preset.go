package preset

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Preset is a named bundle of deployment defaults. A nil field means the
// preset does not define that key.
type Preset struct {
	OpenDatabase       *bool             `toml:"open_database"`
	WithProxy          *bool             `toml:"with_proxy"`
	ContainerNamespace *string           `toml:"container_namespace"`
	VolumeNamespace    *string           `toml:"volume_namespace"`
	NetworkNamespace   *string           `toml:"network_namespace"`
	APIPrefix          *string           `toml:"api_prefix"`
	ProxyNetwork       *string           `toml:"proxy_network"`
	ProxyAddress       *string           `toml:"proxy_address"`
	ProjectName        *string           `toml:"project_name"`
	Addresses          map[string]string `toml:"addresses"`
	Features           []string          `toml:"features"`
}

// Clone returns a deep copy of the preset.
func (p Preset) Clone() Preset {
	out := Preset{
		OpenDatabase:       cloneBool(p.OpenDatabase),
		WithProxy:          cloneBool(p.WithProxy),
		ContainerNamespace: cloneString(p.ContainerNamespace),
		VolumeNamespace:    cloneString(p.VolumeNamespace),
		NetworkNamespace:   cloneString(p.NetworkNamespace),
		APIPrefix:          cloneString(p.APIPrefix),
		ProxyNetwork:       cloneString(p.ProxyNetwork),
		ProxyAddress:       cloneString(p.ProxyAddress),
		ProjectName:        cloneString(p.ProjectName),
	}
	if p.Addresses != nil {
		out.Addresses = maps.Clone(p.Addresses)
	}
	if p.Features != nil {
		out.Features = slices.Clone(p.Features)
	}
	return out
}

// Table maps preset names to presets.
type Table map[string]Preset

// UnknownPresetError is returned when a preset name is not in the table.
type UnknownPresetError struct {
	Name  string
	Known []string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown preset %q (known presets: %s)", e.Name, strings.Join(e.Known, ", "))
}

// Lookup returns a copy of the named preset.
func (t Table) Lookup(name string) (Preset, error) {
	p, ok := t[name]
	if !ok {
		return Preset{}, &UnknownPresetError{Name: name, Known: t.Names()}
	}
	return p.Clone(), nil
}

// Names returns the preset names in sorted order.
func (t Table) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// With returns a new table holding t's presets overlaid by other's.
func (t Table) With(other Table) Table {
	out := make(Table, len(t)+len(other))
	for name, p := range t {
		out[name] = p.Clone()
	}
	for name, p := range other {
		out[name] = p.Clone()
	}
	return out
}

func cloneBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
