package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nanambeah/MedPrep-Ghana/internal/practice"
	"github.com/nanambeah/MedPrep-Ghana/internal/results"
)

func newResultsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "results",
		Short: "Show performance per discipline",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Account.Active() {
				return practice.ErrUnauthenticated
			}

			s, err := results.Aggregate(results.Dashboard())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "📊 Performance")
			fmt.Fprintln(out, "--------------")
			fmt.Fprintf(out, "Overall accuracy: %d%%\n", s.AccuracyPercent)
			fmt.Fprintf(out, "Questions done:   %d\n", s.TotalQuestions)
			fmt.Fprintf(out, "Correct answers:  %d\n", s.TotalCorrect)
			fmt.Fprintln(out)
			for _, d := range s.PerDiscipline {
				fmt.Fprintf(out, "%-26s %3d%%  (%d/%d)\n", d.Discipline, d.AccuracyPercent, d.Correct, d.Total)
			}

			counts, err := app.History.Counts(cmd.Context(), app.Account.Current().ID)
			if err != nil {
				return err
			}
			mine, err := results.Aggregate(counts)
			if errors.Is(err, results.ErrNoQuestions) {
				fmt.Fprintln(out, "\nNo practice sessions finished yet")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "\n📝 Your practice")
			fmt.Fprintln(out, "----------------")
			fmt.Fprintf(out, "Accuracy: %d%% (%d/%d)\n", mine.AccuracyPercent, mine.TotalCorrect, mine.TotalQuestions)
			for _, d := range mine.PerDiscipline {
				fmt.Fprintf(out, "%-26s %3d%%  (%d/%d)\n", d.Discipline, d.AccuracyPercent, d.Correct, d.Total)
			}
			return nil
		},
	}
}
