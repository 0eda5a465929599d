package render

import (
	"bytes"
	"fmt"

	"github.com/auditdb/stackgen/internal/catalog"
	"github.com/auditdb/stackgen/internal/config"
	"gopkg.in/yaml.v3"
)

// CommonVariablesAnchor names the anchored block of variables every service
// merges into its environment.
const CommonVariablesAnchor = "common-variables"

const commonVariablesKey = "x-common-variables"

// passthroughVariables are copied from the deploy environment as "${NAME}".
var passthroughVariables = []string{
	"JWT_SECRET",
	"HELLO_MAIL_ADDRESS",
	"HELLO_MAIL_PASSWORD",
	"ADMIN_CREATION_PASSWORD",
}

var trailingVariables = []string{
	"API_PREFIX",
	"FRONTEND",
	"PROTOCOL",
	"FEEDBACK_EMAIL",
	"GITHUB_CLIENT_SECRET",
	"GITHUB_CLIENT_ID",
}

const (
	rustLog = "actix=info,reqwest=info,search=info,common=info,audits=trace"
	timeout = "60"
)

func interpolated(name string) *yaml.Node {
	return quoted("${" + name + "}")
}

// MongoURI is the connection string services use to reach the database
// container of the given namespace.
func MongoURI(containerNamespace string) string {
	return fmt.Sprintf("mongodb://${MONGO_LOGIN}:${MONGO_PASSWORD}@%s-%s:%d/?authSource=admin",
		containerNamespace, catalog.ServiceDatabase, catalog.DatabasePort)
}

func commonVariables(cfg config.Config) *yaml.Node {
	block := mapping(plain("MONGOURI"), quoted(MongoURI(cfg.ContainerNamespace)))
	for _, name := range passthroughVariables {
		block.Content = append(block.Content, plain(name), interpolated(name))
	}
	for _, variable := range config.URLVariables() {
		if variable.Name == "FRONTEND" {
			continue
		}
		block.Content = append(block.Content, plain(variable.Name), interpolated(variable.Name))
	}
	for _, name := range trailingVariables {
		block.Content = append(block.Content, plain(name), interpolated(name))
	}
	block.Content = append(block.Content,
		plain("RUST_LOG"), plain(rustLog),
		plain("TIMEOUT"), quoted(timeout),
	)
	block.Anchor = CommonVariablesAnchor
	return block
}

func requireValue(cfg config.Config, key, value string) error {
	if value == "" {
		return &config.MissingKeyError{Preset: cfg.Preset, Key: key, Empty: true}
	}
	return nil
}

func checkConfig(cfg config.Config) error {
	checks := []struct{ key, value string }{
		{"container_namespace", cfg.ContainerNamespace},
		{"volume_namespace", cfg.VolumeNamespace},
		{"network_namespace", cfg.NetworkNamespace},
		{"api_prefix", cfg.APIPrefix},
		{"proxy_network", cfg.ProxyNetwork},
	}
	for _, check := range checks {
		if err := requireValue(cfg, check.key, check.value); err != nil {
			return err
		}
	}
	return nil
}

type namer struct {
	cfg config.Config
}

func (n namer) container(name string) string {
	return n.cfg.ContainerNamespace + "-" + name
}

func (n namer) volume(name string) string {
	return n.cfg.VolumeNamespace + "-" + name
}

func (n namer) network(name string) string {
	if name == n.cfg.ProxyNetwork {
		return name
	}
	return n.cfg.NetworkNamespace + "-" + name
}

func serviceNode(n namer, svc catalog.ServiceDescriptor, common *yaml.Node) *yaml.Node {
	node := mapping()

	if len(svc.DependsOn) > 0 {
		deps := sequence()
		for _, dep := range svc.DependsOn {
			deps.Content = append(deps.Content, plain(n.container(dep)))
		}
		node.Content = append(node.Content, plain("depends_on"), deps)
	}

	node.Content = append(node.Content, plain("build"), plain(svc.BuildContext()))

	if svc.Port != nil {
		node.Content = append(node.Content,
			plain(string(svc.Port.Mode)), sequence(quoted(svc.Port.Declaration())))
	}

	if len(svc.Volumes) > 0 {
		volumes := sequence()
		for _, mount := range svc.Volumes {
			volumes.Content = append(volumes.Content, plain(n.volume(mount.Name)+":"+mount.Path))
		}
		node.Content = append(node.Content, plain("volumes"), volumes)
	}

	env := mapping(plain("VIRTUAL_HOST"), interpolated("VIRTUAL_HOST"))
	if svc.Routes != nil {
		env.Content = append(env.Content, plain("VIRTUAL_PATH"), quoted(svc.Routes.Pattern()))
	}
	env.Content = append(env.Content, merge(common)...)
	node.Content = append(node.Content, plain("environment"), env)

	if len(svc.Networks) > 0 {
		networks := sequence()
		for _, network := range svc.Networks {
			networks.Content = append(networks.Content, plain(n.network(network)))
		}
		node.Content = append(node.Content, plain("networks"), networks)
	}

	return node
}

func checkServices(services []catalog.ServiceDescriptor) error {
	known := make(map[string]bool, len(services))
	for _, svc := range services {
		if known[svc.Name] {
			return fmt.Errorf("duplicate service name '%s' in catalog", svc.Name)
		}
		known[svc.Name] = true
	}
	for _, svc := range services {
		for _, dep := range svc.DependsOn {
			if !known[dep] {
				return fmt.Errorf("service '%s' depends on unknown service '%s'", svc.Name, dep)
			}
		}
	}
	return nil
}

// Compose renders the compose file for cfg and services.
func Compose(cfg config.Config, services []catalog.ServiceDescriptor) ([]byte, error) {
	if err := checkConfig(cfg); err != nil {
		return nil, err
	}
	if err := checkServices(services); err != nil {
		return nil, err
	}

	n := namer{cfg: cfg}
	common := commonVariables(cfg)

	servicesNode := mapping()
	for _, svc := range services {
		servicesNode.Content = append(servicesNode.Content, plain(n.container(svc.Name)), serviceNode(n, svc, common))
	}

	volumesNode := mapping()
	for _, volume := range catalog.Volumes() {
		volumesNode.Content = append(volumesNode.Content, plain(n.volume(volume)), emptyMapping())
	}

	networksNode := mapping()
	for _, network := range catalog.Networks() {
		networksNode.Content = append(networksNode.Content, plain(n.network(network)), emptyMapping())
	}
	proxyNetwork := emptyMapping()
	if cfg.WithProxy {
		proxyNetwork = mapping(plain("external"), boolean(true))
	}
	networksNode.Content = append(networksNode.Content, plain(cfg.ProxyNetwork), proxyNetwork)

	root := mapping(
		plain(commonVariablesKey), common,
		plain("services"), servicesNode,
		plain("volumes"), volumesNode,
		plain("networks"), networksNode,
	)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode compose file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode compose file: %w", err)
	}
	return buf.Bytes(), nil
}
