package main

import (
	"fmt"

	"github.com/sendrec/resources/internal/validate"
	"github.com/spf13/cobra"
)

func newCheckCommand(cfg *appConfig) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report catalog entries that will render poorly",
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadCatalogWithTimeout(*cfg)
			if err != nil {
				return err
			}
			defer loaded.close()

			issues := validate.Catalog(loaded.catalog.Entries())
			if len(issues) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d entries, no issues\n", loaded.catalog.Len())
				return nil
			}

			rows := make([][]string, 0, len(issues))
			for _, issue := range issues {
				rows = append(rows, []string{fmt.Sprint(issue.Index), issue.EntryID, issue.Field, issue.Message})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"#", "ID", "Field", "Issue"}, rows, alignRight))

			if strict {
				return fmt.Errorf("%d catalog issues found", len(issues))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when issues are found")
	return cmd
}
