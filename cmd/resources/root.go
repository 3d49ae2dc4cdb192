package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	cfg := configFromEnv()

	rootCmd := &cobra.Command{
		Use:           "resources",
		Short:         "Video resource catalog with category filtering and overlay playback",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfg.CatalogSource, "source", cfg.CatalogSource, "Catalog source: static, file, s3, postgres or sqlite")
	rootCmd.PersistentFlags().StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "Catalog file for the file and sqlite sources")

	rootCmd.AddCommand(newServeCommand(&cfg))
	rootCmd.AddCommand(newListCommand(&cfg))
	rootCmd.AddCommand(newCategoriesCommand(&cfg))
	rootCmd.AddCommand(newCheckCommand(&cfg))
	rootCmd.AddCommand(newExportCommand(&cfg))
	rootCmd.AddCommand(newPlaybackURLCommand())

	return rootCmd
}
