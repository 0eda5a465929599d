package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/auditdb/stackgen/internal/artifact"
	"github.com/auditdb/stackgen/internal/catalog"
	"github.com/auditdb/stackgen/internal/render"
	"github.com/auditdb/stackgen/internal/verify"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the generated files and compare them with the output directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustSetup()

		clean, err := runCheck(cmd.Context(), a)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Check failed: %v\n", err)
			os.Exit(1)
		}
		if !clean {
			os.Exit(1)
		}
	},
}

func runCheck(ctx context.Context, a *app) (bool, error) {
	cfg, err := a.resolve()
	if err != nil {
		return false, fmt.Errorf("configuration failed: %w", err)
	}

	manifest, err := render.Render(cfg)
	if err != nil {
		return false, fmt.Errorf("render failed: %w", err)
	}

	project, err := verify.Compose(ctx, cfg.ProjectName, manifest.Compose, a.snapshot.Mapping())
	if err != nil {
		return false, err
	}
	fmt.Printf("%s: %d services, %d networks, %d volumes\n",
		render.ComposeFile, len(project.Services), len(project.Networks), len(project.Volumes))

	build, err := verify.Dockerfile(manifest.Dockerfile)
	if err != nil {
		return false, err
	}
	fmt.Printf("%s: %d stages, CMD %v\n", render.DockerfileFile, len(build.Stages), build.Cmd)

	for _, buildContext := range verify.BuildContexts(a.output, catalog.Services(cfg)) {
		color.Yellow("warning: build context %s has no Dockerfile\n", buildContext)
	}

	drifts, err := artifact.Check(a.output, manifest)
	if err != nil {
		return false, err
	}

	clean := true
	for _, drift := range drifts {
		switch {
		case drift.Missing:
			clean = false
			color.Yellow("%s is missing from %s\n", drift.File, a.outputDir)
		case drift.Changed():
			clean = false
			color.Yellow("%s is out of date\n", drift.File)
			printDiff(drift.Diff)
		default:
			color.Green("%s is up to date\n", drift.File)
		}
	}
	return clean, nil
}

func printDiff(diff string) {
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	hunk := color.New(color.FgCyan)

	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			fmt.Print(line)
		case strings.HasPrefix(line, "+"):
			added.Print(line)
		case strings.HasPrefix(line, "-"):
			removed.Print(line)
		case strings.HasPrefix(line, "@@"):
			hunk.Print(line)
		default:
			fmt.Print(line)
		}
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
