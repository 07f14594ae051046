package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nanambeah/MedPrep-Ghana/internal/access"
	"github.com/nanambeah/MedPrep-Ghana/internal/practice"
	"github.com/nanambeah/MedPrep-Ghana/internal/question"
	"github.com/nanambeah/MedPrep-Ghana/internal/results"
)

func newPracticeCmd(app *App) *cobra.Command {
	var f question.Filter

	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Start an interactive practice session",
		Long: `Answer questions one at a time. Type a letter (A-E) to answer,
"s" to save (bookmark) the current question and "q" to stop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			u := app.Account.Current()
			ids, err := app.Bookmarks.Load(ctx, "")
			if err != nil {
				return err
			}
			bookmarks := practice.NewBookmarks(ids...)

			sess, err := practice.Start(u, app.Catalog, f, bookmarks)
			if err != nil {
				return err
			}
			full := access.CanAccessFull(u)
			if !full {
				fmt.Fprintln(out, "🔒 Preview mode: subscribe to submit answers (medprep subscribe)")
			}

			in := bufio.NewReader(cmd.InOrStdin())
			for sess.State() != practice.StateComplete {
				printQuestion(out, sess)

				line, err := prompt(in, out, "Answer [A-E], s = save, q = quit: ")
				if err != nil {
					return nil
				}

				switch line {
				case "q":
					fmt.Fprintln(out, "Session ended early")
					return nil
				case "s", "save":
					on := sess.ToggleBookmark(sess.Current().ID)
					if err := app.Bookmarks.Save(ctx, "", bookmarks.IDs()); err != nil {
						return err
					}
					if on {
						fmt.Fprintln(out, "🔖 Bookmarked")
					} else {
						fmt.Fprintln(out, "Bookmark removed")
					}
					continue
				}

				option, ok := parseOption(line)
				if !ok || sess.SelectOption(option) != nil {
					fmt.Fprintln(out, "⚠️ Pick one of A-E")
					continue
				}
				if !full {
					fmt.Fprintln(out, "🔒", practice.ErrSubscriptionRequired)
					return nil
				}

				reveal, err := sess.Submit()
				if err != nil {
					return err
				}
				printReveal(out, sess.Current(), reveal)

				if _, err := prompt(in, out, "Press Enter to continue..."); err != nil {
					return nil
				}
				if err := sess.Advance(); err != nil {
					return err
				}
			}

			summary, err := sess.Summary()
			if err != nil {
				return err
			}
			err = app.History.Add(ctx, u.ID, results.Record{
				SessionID:   sess.ID,
				CompletedAt: time.Now(),
				Summary:     summary,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "\n🎉 Session complete!")
			fmt.Fprintf(out, "Score: %d/%d (%d%%)\n", summary.TotalCorrect, summary.TotalQuestions, summary.AccuracyPercent)
			for _, d := range summary.PerDiscipline {
				fmt.Fprintf(out, "  %-26s %d/%d (%d%%)\n", d.Discipline, d.Correct, d.Total, d.AccuracyPercent)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.Discipline, "discipline", "d", question.All, "Discipline to practise")
	cmd.Flags().StringVarP(&f.Difficulty, "difficulty", "l", question.All, "Easy, Medium or Hard")
	return cmd
}

func printQuestion(out io.Writer, sess *practice.Session) {
	q := sess.Current()
	fmt.Fprintln(out, "\n========================================")
	fmt.Fprintf(out, "Question %d/%d · %s · %s · %s\n", sess.Index()+1, sess.Len(), q.Discipline, q.Topic, q.Difficulty)
	if sess.IsBookmarked(q.ID) {
		fmt.Fprintln(out, "🔖 Bookmarked")
	}
	fmt.Fprintln(out, "========================================")
	fmt.Fprintln(out, q.Vignette)
	fmt.Fprintln(out)
	for _, opt := range q.Options {
		fmt.Fprintln(out, "  "+opt)
	}
}

func printReveal(out io.Writer, q question.Question, r practice.Reveal) {
	if r.Correct {
		fmt.Fprintln(out, "✅ Correct!")
	} else {
		fmt.Fprintf(out, "❌ Incorrect. The answer is %s\n", q.Options[r.CorrectAnswerIndex])
		if r.WrongExplanation != "" {
			fmt.Fprintln(out, "Why not your choice:", r.WrongExplanation)
		}
	}
	fmt.Fprintln(out, "Explanation:", r.Explanation)
}

func prompt(in *bufio.Reader, out io.Writer, msg string) (string, error) {
	fmt.Fprint(out, msg)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

// parseOption accepts a letter (a-e) or a 1-based number.
func parseOption(s string) (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := s[0]
	switch {
	case c >= 'a' && c < 'a'+question.OptionCount:
		return int(c - 'a'), true
	case c >= '1' && c < '1'+question.OptionCount:
		return int(c - '1'), true
	}
	return 0, false
}
