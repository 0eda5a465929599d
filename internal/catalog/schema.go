package catalog

import (
	"fmt"
	"strings"
)

// ExposeMode selects how a service port is published.
type ExposeMode string

const (
	// ExposePorts publishes the port on the host ("ports").
	ExposePorts ExposeMode = "ports"
	// ExposeInternal only advertises the port on the internal network ("expose").
	ExposeInternal ExposeMode = "expose"
)

// PortBinding is a container port and the way it is published.
type PortBinding struct {
	Number int
	Mode   ExposeMode
}

// BindExternally reports whether the port is also bound on the host.
func (p PortBinding) BindExternally() bool {
	return p.Mode == ExposePorts
}

// Declaration returns the compose list entry for the port: "P:P" when bound
// on the host, "P" otherwise.
func (p PortBinding) Declaration() string {
	if p.BindExternally() {
		return fmt.Sprintf("%d:%d", p.Number, p.Number)
	}
	return fmt.Sprintf("%d", p.Number)
}

// RouteGroup is the set of URL path segments a service answers under the API
// prefix.
type RouteGroup struct {
	Prefix string
	Routes []string
}

// Pattern returns the reverse-proxy path pattern for the group, e.g.
// "~^/api/(user|auth)".
func (g RouteGroup) Pattern() string {
	return fmt.Sprintf("~^/%s/(%s)", g.Prefix, strings.Join(g.Routes, "|"))
}

// VolumeMount mounts the named volume at Path.
type VolumeMount struct {
	Name string
	Path string
}

// ServiceDescriptor describes one container of the stack.
type ServiceDescriptor struct {
	Name      string
	Folder    string // build context relative to the compose file
	Port      *PortBinding
	Routes    *RouteGroup
	DependsOn []string
	Volumes   []VolumeMount
	Networks  []string
}

// BuildContext returns the compose build path of the service.
func (s ServiceDescriptor) BuildContext() string {
	if s.Folder == "" {
		return "./"
	}
	return "./" + s.Folder
}
