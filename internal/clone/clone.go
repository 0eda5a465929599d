// Package clone copies the contents of an existing volume into the database
// volume of a resolved configuration, using a throwaway container.
package clone

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/auditdb/stackgen/internal/catalog"
	"github.com/auditdb/stackgen/internal/config"
	"github.com/go-logr/logr"
	"github.com/mattn/go-shellwords"
)

const (
	// DefaultRuntime is the container CLI used when none is configured.
	DefaultRuntime = "docker"

	copyImage  = "ubuntu"
	copyScript = "cd /from ; cp -av . /to"
)

// Cloner builds and runs the copy container.
type Cloner struct {
	runtime []string
	runner  Runner
	log     logr.Logger
}

// New returns a Cloner invoking runtime, a shell-style command line such as
// "docker" or "sudo podman".
func New(runtime string, runner Runner, log logr.Logger) (*Cloner, error) {
	if strings.TrimSpace(runtime) == "" {
		runtime = DefaultRuntime
	}
	argv, err := shellwords.Parse(runtime)
	if err != nil {
		return nil, fmt.Errorf("invalid container runtime %q: %w", runtime, err)
	}
	if len(argv) == 0 {
		return nil, errors.New("container runtime command is empty")
	}
	return &Cloner{runtime: argv, runner: runner, log: log}, nil
}

// DestinationVolume is the compose-created database volume of cfg, named
// "<project>_<volume namespace>-database".
func DestinationVolume(cfg config.Config) string {
	return fmt.Sprintf("%s_%s-%s", cfg.ProjectName, cfg.VolumeNamespace, catalog.VolumeDatabase)
}

// Command returns the full command line copying source into the database
// volume of cfg.
func (c *Cloner) Command(source string, cfg config.Config) []string {
	argv := append([]string{}, c.runtime...)
	return append(argv,
		"run", "--rm", "-it",
		"-v", source+":/from",
		"-v", DestinationVolume(cfg)+":/to",
		copyImage, "bash", "-c", copyScript,
	)
}

// Clone copies every file of source into the database volume. The error of
// the copy process is returned unchanged so callers can pass its exit status
// on.
func (c *Cloner) Clone(ctx context.Context, source string, cfg config.Config) error {
	if source == "" {
		return errors.New("clone source is empty")
	}
	argv := c.Command(source, cfg)
	c.log.Info("running copy container", "command", strings.Join(argv, " "))
	return c.runner.Run(ctx, argv[0], argv[1:]...)
}
