package practice

import (
	"github.com/nanambeah/MedPrep-Ghana/internal/question"
	"github.com/nanambeah/MedPrep-Ghana/internal/results"
	"github.com/nanambeah/MedPrep-Ghana/internal/user"
	"gorm.io/gorm"
)

type PracticeContainer struct {
	Store   BookmarkStore
	Service PracticeService
	Handler *Handler
}

// NewPracticeContainer keeps bookmarks in the database when one is connected
// and in process memory otherwise.
func NewPracticeContainer(db *gorm.DB, c *question.Catalog, history *results.History, users user.UserService) *PracticeContainer {
	var store BookmarkStore
	if db != nil {
		store = NewRepository(db)
	} else {
		store = NewMemoryStore()
	}
	service := NewService(c, store, history)
	handler := NewHandler(service, users)

	return &PracticeContainer{
		Store:   store,
		Service: service,
		Handler: handler,
	}
}
