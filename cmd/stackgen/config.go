package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/auditdb/stackgen/internal/export"
	"github.com/spf13/cobra"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exporter, err := export.New(configFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}

		a := mustSetup()
		cfg, err := a.resolve()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Configuration failed: %v\n", err)
			os.Exit(1)
		}

		output, err := exporter.Export(&cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s export failed: %v\n", exporter.Name(), err)
			os.Exit(1)
		}
		os.Stdout.Write(output)
	},
}

func init() {
	configCmd.Flags().StringVarP(&configFormat, "format", "f", "yaml",
		fmt.Sprintf("output format (%s)", strings.Join(export.Formats, ", ")))
	rootCmd.AddCommand(configCmd)
}
