package main

import (
	"fmt"
	"os"

	"github.com/auditdb/stackgen/internal/config"
	"github.com/auditdb/stackgen/internal/environment"
	"github.com/auditdb/stackgen/internal/filesystems"
	"github.com/auditdb/stackgen/internal/logging"
	"github.com/auditdb/stackgen/internal/preset"
	"github.com/go-logr/logr"
	"github.com/spf13/viper"
)

// app carries what every command reads once at start-up.
type app struct {
	log       logr.Logger
	table     preset.Table
	snapshot  environment.Snapshot
	output    filesystems.FileSystem
	outputDir string
	runtime   string
}

func setup() (*app, error) {
	log, err := logging.New(viper.GetString("log-level"))
	if err != nil {
		return nil, err
	}

	table, err := preset.Load(viper.GetString("presets"))
	if err != nil {
		return nil, err
	}

	envFile := viper.GetString("env-file")
	snapshot, err := environment.Load(filesystems.NewLocalFS(""), envFile, os.Environ())
	if err != nil {
		return nil, err
	}
	log.V(1).Info("loaded environment", "envFile", envFile, "variables", snapshot.Len())

	outputDir := viper.GetString("output-dir")
	return &app{
		log:       log,
		table:     table,
		snapshot:  snapshot,
		output:    filesystems.NewLocalFS(outputDir),
		outputDir: outputDir,
		runtime:   viper.GetString("runtime"),
	}, nil
}

func (a *app) resolve() (config.Config, error) {
	cfg, err := config.Resolve(a.table, a.snapshot)
	if err != nil {
		return config.Config{}, err
	}
	a.log.Info("resolved preset", "preset", cfg.Preset, "proxy", cfg.WithProxy, "openDatabase", cfg.OpenDatabase)
	return cfg, nil
}

// mustSetup is setup for subcommands, which all stop on the first failure.
func mustSetup() *app {
	a, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Setup failed: %v\n", err)
		os.Exit(1)
	}
	return a
}
