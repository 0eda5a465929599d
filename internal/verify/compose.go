package verify

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/compose-spec/compose-go/v2/loader"
	composeTypes "github.com/compose-spec/compose-go/v2/types"
)

// Service is the deployable view of one compose service after loading.
type Service struct {
	Name         string
	BuildContext string
	Published    []int // host ports
	Exposed      []string
	Dependencies []string
	Networks     []string
	Volumes      []string // "source:target"
	Environment  map[string]string
}

// Project is a loaded compose file.
type Project struct {
	Name     string
	Services []Service
	Networks map[string]bool // network name -> external
	Volumes  []string
}

// Service returns the named service.
func (p *Project) Service(name string) (Service, bool) {
	for _, s := range p.Services {
		if s.Name == name {
			return s, true
		}
	}
	return Service{}, false
}

// Compose loads content with compose-go, the same loader docker compose uses,
// so a file that passes here is accepted by the runtime. env supplies values
// for ${VAR} interpolation.
func Compose(ctx context.Context, projectName string, content []byte, env map[string]string) (*Project, error) {
	configDetails := composeTypes.ConfigDetails{
		WorkingDir: ".",
		ConfigFiles: []composeTypes.ConfigFile{
			{
				Filename: "docker-compose.yml",
				Content:  content,
			},
		},
		Environment: env,
	}

	project, err := loader.LoadWithContext(ctx, configDetails, func(options *loader.Options) {
		options.SetProjectName(projectName, true)
		options.ResolvePaths = false
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load compose project: %w", err)
	}

	result := &Project{
		Name:     project.Name,
		Networks: make(map[string]bool, len(project.Networks)),
	}
	for name, network := range project.Networks {
		result.Networks[name] = bool(network.External)
	}
	for name := range project.Volumes {
		result.Volumes = append(result.Volumes, name)
	}
	slices.Sort(result.Volumes)

	for _, composeService := range project.Services {
		result.Services = append(result.Services, convertService(composeService))
	}
	slices.SortFunc(result.Services, func(a, b Service) int {
		return strings.Compare(a.Name, b.Name)
	})

	return result, nil
}

func convertService(composeService composeTypes.ServiceConfig) Service {
	env := make(map[string]string, len(composeService.Environment))
	for key, value := range composeService.Environment {
		if value == nil {
			continue
		}
		env[key] = *value
	}

	published := make([]int, 0, len(composeService.Ports))
	for _, port := range composeService.Ports {
		if port.Published == "" {
			continue
		}
		portNum, err := strconv.Atoi(port.Published)
		if err != nil {
			continue // ranges are never rendered
		}
		published = append(published, portNum)
	}

	buildContext := ""
	if composeService.Build != nil {
		buildContext = composeService.Build.Context
	}

	dependencies := make([]string, 0, len(composeService.DependsOn))
	for dep := range composeService.DependsOn {
		dependencies = append(dependencies, dep)
	}
	slices.Sort(dependencies)

	networks := make([]string, 0, len(composeService.Networks))
	for network := range composeService.Networks {
		networks = append(networks, network)
	}
	slices.Sort(networks)

	volumes := make([]string, 0, len(composeService.Volumes))
	for _, volume := range composeService.Volumes {
		volumes = append(volumes, volume.Source+":"+volume.Target)
	}

	return Service{
		Name:         composeService.Name,
		BuildContext: buildContext,
		Published:    published,
		Exposed:      slices.Clone([]string(composeService.Expose)),
		Dependencies: dependencies,
		Networks:     networks,
		Volumes:      volumes,
		Environment:  env,
	}
}
