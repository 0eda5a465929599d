package main

import (
	"fmt"
	"os"

	"github.com/auditdb/stackgen/internal/environment"
	"github.com/auditdb/stackgen/internal/environment/types"
	"github.com/auditdb/stackgen/internal/render"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var envStrict bool

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables the generated compose file expects",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustSetup()

		missing, err := runEnvExtraction(cmd, a)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Environment extraction failed: %v\n", err)
			os.Exit(1)
		}
		if envStrict && len(missing) > 0 {
			fmt.Fprintf(os.Stderr, "%d variables are not set: %v\n", len(missing), missing)
			os.Exit(1)
		}
	},
}

func runEnvExtraction(cmd *cobra.Command, a *app) ([]string, error) {
	cfg, err := a.resolve()
	if err != nil {
		return nil, fmt.Errorf("configuration failed: %w", err)
	}

	manifest, err := render.Render(cfg)
	if err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}

	envExtractor := environment.NewExtractor(a.snapshot)
	envVars, err := envExtractor.Extract(cmd.Context(), render.ComposeFile, manifest.Compose)
	if err != nil {
		return nil, err
	}

	fmt.Printf("=== %s (%s) ===\n", render.ComposeFile, cfg.Preset)
	if len(envVars) == 0 {
		fmt.Printf("  No environment variables found\n")
		return nil, nil
	}

	set := color.New(color.FgGreen).SprintFunc()
	unset := color.New(color.FgRed).SprintFunc()
	sensitive := color.New(color.FgYellow).SprintFunc()

	for _, envVar := range envVars {
		sensitiveMarker := ""
		if envVar.Sensitive {
			sensitiveMarker = sensitive(" [SENSITIVE]")
		}

		status := unset("missing")
		switch {
		case envVar.Set:
			status = set("set") + " from " + envVar.Source
		case envVar.Default != "":
			status = "default " + envVar.Default
		}

		fmt.Printf("  %s (%s)%s\n", envVar.VarName, envVar.Type, sensitiveMarker)
		fmt.Printf("    Status: %s\n", status)
		if envVar.Set && !envVar.Sensitive && envVar.Type != types.EnvTypeDatabase {
			fmt.Printf("    Value: %s\n", envVar.Value)
		}
	}
	fmt.Println()

	return environment.Missing(envVars), nil
}

func init() {
	envCmd.Flags().BoolVar(&envStrict, "strict", false, "exit with status 1 when a variable is missing")
	rootCmd.AddCommand(envCmd)
}
