package main

import (
	"fmt"
	"os"

	staticcatalog "emberwild/internal/adapter/catalog/static"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "simctl",
		Short:         "Offline driver for the discovery progression engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCmd(), newRunCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	var catalogDir string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load a catalog directory and report authoring errors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider := staticcatalog.Provider{Root: catalogDir}
			templates, err := provider.Templates(cmd.Context())
			if err != nil {
				return err
			}
			for _, tpl := range templates {
				cmd.Printf("%-24s tier=%-8s threshold=%-6.1f activity=%s\n",
					tpl.ID, tpl.Tier, tpl.ObservationThreshold, tpl.RequiredActivity)
			}
			cmd.Printf("%d templates ok\n", len(templates))
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogDir, "catalog", "./catalog", "catalog directory")
	return cmd
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay a YAML scenario against an in-memory engine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScenario(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.CatalogDir, "catalog", "./catalog", "catalog directory")
	cmd.Flags().StringVar(&opts.PopulationFile, "population", "./catalog/population.yaml", "population roster file")
	cmd.Flags().StringVar(&opts.ScriptFile, "script", "", "scenario file (required)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "random seed for experiment rolls")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}
