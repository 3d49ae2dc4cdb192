package main

import (
	"github.com/sendrec/resources/internal/catalog"
	"github.com/spf13/cobra"
)

func newExportCommand(cfg *appConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the loaded catalog as a TOML document",
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadCatalogWithTimeout(*cfg)
			if err != nil {
				return err
			}
			defer loaded.close()

			data, err := catalog.MarshalTOML(loaded.catalog.Entries())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
