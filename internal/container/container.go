package container

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/nanambeah/MedPrep-Ghana/internal/auth"
	"github.com/nanambeah/MedPrep-Ghana/internal/config"
	"github.com/nanambeah/MedPrep-Ghana/internal/practice"
	"github.com/nanambeah/MedPrep-Ghana/internal/question"
	"github.com/nanambeah/MedPrep-Ghana/internal/results"
	"github.com/nanambeah/MedPrep-Ghana/internal/router"
	"github.com/nanambeah/MedPrep-Ghana/internal/user"
	"gorm.io/gorm"
)

type Container struct {
	Config            config.Config
	UserContainer     *user.UserContainer
	QuestionContainer *question.QuestionContainer
	PracticeContainer *practice.PracticeContainer
	ResultsContainer  *results.ResultsContainer
}

// New loads configuration before anything reads it, so values from .env
// reach the logger, the token signer and the crypto key.
func New() *Container {
	cfg := config.Load()

	config.Init()
	auth.Init()
	if os.Getenv("CRYPTO_KEY") != "" {
		config.InitCrypto()
	}

	var db *gorm.DB
	if cfg.DatabaseDSN != "" {
		if err := config.Connect(context.Background(), cfg.DatabaseDSN); err != nil {
			log.Fatalf("failed to connect to DB: %v", err)
		}
		if err := config.DB.AutoMigrate(&user.User{}, &practice.BookmarkRecord{}, &results.Attempt{}); err != nil {
			log.Fatalf("failed to migrate DB: %v", err)
		}
		db = config.DB
	}

	catalog, err := question.Open(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("failed to load question catalog: %v", err)
	}
	config.Logger.Infof("Loaded %d questions", catalog.Len())

	userContainer := user.NewUserContainer(db, cfg.AdminPassHash, cfg.TokenTTL)
	questionContainer := question.NewQuestionContainer(catalog)
	resultsContainer := results.NewResultsContainer(db)
	practiceContainer := practice.NewPracticeContainer(
		db,
		catalog,
		resultsContainer.History,
		userContainer.Service,
	)

	return &Container{
		Config:            cfg,
		UserContainer:     userContainer,
		QuestionContainer: questionContainer,
		PracticeContainer: practiceContainer,
		ResultsContainer:  resultsContainer,
	}
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		CORSOrigins:     c.Config.CORSOrigins,
		UserHandler:     c.UserContainer.Handler,
		QuestionHandler: c.QuestionContainer.Handler,
		PracticeHandler: c.PracticeContainer.Handler,
		ResultsHandler:  c.ResultsContainer.Handler,
	})
}
