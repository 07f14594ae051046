package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nanambeah/MedPrep-Ghana/internal/practice"
)

func newSavedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List bookmarked questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !app.Account.Active() {
				return practice.ErrUnauthenticated
			}

			ids, err := app.Bookmarks.Load(cmd.Context(), "")
			if err != nil {
				return err
			}
			bookmarks := practice.NewBookmarks(ids...)
			if bookmarks.Len() == 0 {
				fmt.Fprintln(out, "No saved questions yet")
				return nil
			}

			fmt.Fprintf(out, "📚 %d saved questions:\n", bookmarks.Len())
			for _, id := range bookmarks.IDs() {
				q, ok := app.Catalog.Get(id)
				if !ok {
					continue
				}
				fmt.Fprintf(out, "- #%d %s · %s (%s)\n", q.ID, q.Discipline, q.Topic, q.Difficulty)
			}
			return nil
		},
	}
}
