package main

import (
	"fmt"
	"strings"

	"github.com/sendrec/resources/internal/filter"
	"github.com/sendrec/resources/internal/playback"
	"github.com/sendrec/resources/internal/resources"
	"github.com/spf13/cobra"
)

func newListCommand(cfg *appConfig) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the videos visible under a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadCatalogWithTimeout(*cfg)
			if err != nil {
				return err
			}
			defer loaded.close()

			view := resources.NewView(loaded.catalog)
			view.SelectCategory(category)

			cards := view.Cards()
			if len(cards) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No videos in category %q\n", category)
				return nil
			}

			rows := make([][]string, 0, len(cards))
			for _, card := range cards {
				rows = append(rows, []string{card.ID, card.Title, card.Category, resolvedPlaybackURL(view, card)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Title", "Category", "Playback URL"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", filter.All, "Category to show")
	return cmd
}

// resolvedPlaybackURL runs the card's play callback and reads back the overlay,
// leaving the view closed again.
func resolvedPlaybackURL(view *resources.View, card resources.Card) string {
	card.Play()
	defer view.Close()
	overlay, _ := view.Overlay()
	return overlay.PlaybackURL
}

func newCategoriesCommand(cfg *appConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the selectable categories in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadCatalogWithTimeout(*cfg)
			if err != nil {
				return err
			}
			defer loaded.close()

			view := resources.NewView(loaded.catalog)
			counts := make(map[string]int)
			for _, e := range loaded.catalog.Entries() {
				counts[e.Category]++
			}

			var rows [][]string
			for _, c := range view.Categories() {
				count := loaded.catalog.Len()
				if c != filter.All {
					count = counts[c]
				}
				rows = append(rows, []string{c, fmt.Sprint(count)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Category", "Videos"}, rows, alignLeft, alignRight))
			return nil
		},
	}
}

func newPlaybackURLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "playback-url [embed-url]",
		Short: "Print the autoplaying, muted frame source for an embed URL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), playback.BuildURL(strings.Join(args, "")))
			return nil
		},
	}
}
