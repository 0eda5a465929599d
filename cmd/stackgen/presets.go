package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/auditdb/stackgen/internal/config"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the available presets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustSetup()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPROXY\tOPEN DATABASE\tNAMESPACE\tSTATUS")
		for _, name := range a.table.Names() {
			// Resolved without overrides so the listing shows the preset itself.
			cfg, err := config.FromPreset(name, a.table[name])
			if err != nil {
				fmt.Fprintf(w, "%s\t-\t-\t-\tinvalid: %v\n", name, err)
				continue
			}
			fmt.Fprintf(w, "%s\t%t\t%t\t%s\tok\n", name, cfg.WithProxy, cfg.OpenDatabase, cfg.ContainerNamespace)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
