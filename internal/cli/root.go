package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nanambeah/MedPrep-Ghana/internal/config"
	"github.com/nanambeah/MedPrep-Ghana/internal/practice"
	"github.com/nanambeah/MedPrep-Ghana/internal/question"
	"github.com/nanambeah/MedPrep-Ghana/internal/results"
	"github.com/nanambeah/MedPrep-Ghana/internal/user"
)

// App is what every command works against. The account is opened once when
// the client starts.
type App struct {
	Account   *user.Account
	Users     user.UserService
	Catalog   *question.Catalog
	Bookmarks practice.BookmarkStore
	History   *results.History
}

// NewApp keeps the signed-in user, bookmarks and finished sessions under home.
func NewApp(ctx context.Context, home string, catalog *question.Catalog, adminPassHash string) (*App, error) {
	account, err := user.OpenAccount(ctx, user.NewFileStore(filepath.Join(home, "user.json")))
	if err != nil {
		return nil, fmt.Errorf("open account: %w", err)
	}

	return &App{
		Account:   account,
		Users:     user.NewService(user.NewMemoryRepository(), adminPassHash),
		Catalog:   catalog,
		Bookmarks: practice.NewFileStore(filepath.Join(home, "bookmarks.json")),
		History:   results.NewHistory(results.NewFileRepository(filepath.Join(home, "history.json"))),
	}, nil
}

func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "medprep",
		Short: "Practice exam questions for Ghanaian medical licensing exams",
		Long: `MedPrep runs clinical vignette practice sessions in the terminal.
Sign in, pick a discipline and difficulty, and answer one question at a time.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	root.AddCommand(
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newSubscribeCmd(app),
		newPracticeCmd(app),
		newSavedCmd(app),
		newResultsCmd(app),
	)
	return root
}

// Setup reads configuration (.env first, then the environment) and opens the
// client's App.
func Setup(ctx context.Context) (*App, error) {
	cfg := config.Load()

	config.Init()
	if os.Getenv("LOG_LEVEL") == "" {
		config.Logger.SetLevel(logrus.WarnLevel)
	}
	config.Logger.SetOutput(os.Stderr)
	if os.Getenv("CRYPTO_KEY") != "" {
		config.InitCrypto()
	}

	catalog, err := question.Open(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("question bank: %w", err)
	}
	return NewApp(ctx, cfg.Home, catalog, cfg.AdminPassHash)
}

func Execute() {
	app, err := Setup(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}

	if err := NewRootCmd(app).Execute(); err != nil {
		os.Exit(1)
	}
}
