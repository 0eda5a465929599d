package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/auditdb/stackgen/internal/artifact"
	"github.com/auditdb/stackgen/internal/clone"
	"github.com/auditdb/stackgen/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "stackgen [source-volume]",
	Short: "Generate the docker-compose.yml and Dockerfile of the AuditDB backend",
	Long: `Stackgen resolves a deployment preset and produces the container stack:
1. Resolve - Select the preset named by PRESET and apply environment overrides
2. Render - Build the compose file and the Dockerfile in memory
3. Write - Replace docker-compose.yml and Dockerfile in the output directory

Given a source volume, stackgen instead copies that volume into the
database volume of the resolved preset and writes nothing.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustSetup()

		if err := run(cmd.Context(), a, args, clone.NewExecRunner()); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				os.Exit(exitErr.ExitCode())
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.stackgen.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("env-file", ".env", "dotenv file read before the process environment")
	flags.String("output-dir", ".", "directory receiving the generated files")
	flags.String("presets", "", "TOML file with extra or replacement presets")
	flags.String("runtime", clone.DefaultRuntime, "container CLI used to clone volumes")

	for _, name := range []string{"log-level", "env-file", "output-dir", "presets", "runtime"} {
		cobra.CheckErr(viper.BindPFlag(name, flags.Lookup(name)))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".stackgen")
	}

	viper.SetEnvPrefix("stackgen")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// run clones args[0] into the database volume when a source is given and
// otherwise renders and writes the artifacts. Cloning never touches a.output.
func run(ctx context.Context, a *app, args []string, runner clone.Runner) error {
	if len(args) > 0 {
		if err := runClone(ctx, a, args[0], runner); err != nil {
			return fmt.Errorf("clone failed: %w", err)
		}
		return nil
	}

	if err := runGenerate(a); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	return nil
}

func runGenerate(a *app) error {
	cfg, err := a.resolve()
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	manifest, err := render.Render(cfg)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	written, err := artifact.NewWriter(a.output, a.log).Write(manifest)
	if err != nil {
		return err
	}

	for _, name := range written {
		a.log.Info("generated file", "path", a.output.Join(a.outputDir, name))
	}
	return nil
}

func runClone(ctx context.Context, a *app, source string, runner clone.Runner) error {
	cfg, err := a.resolve()
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	cloner, err := clone.New(a.runtime, runner, a.log)
	if err != nil {
		return err
	}
	return cloner.Clone(ctx, source, cfg)
}
