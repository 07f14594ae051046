package results

import "gorm.io/gorm"

type ResultsContainer struct {
	Repo    HistoryRepository
	History *History
	Handler *Handler
}

func NewResultsContainer(db *gorm.DB) *ResultsContainer {
	var repo HistoryRepository
	if db != nil {
		repo = NewRepository(db)
	} else {
		repo = NewMemoryRepository()
	}
	history := NewHistory(repo)

	return &ResultsContainer{
		Repo:    repo,
		History: history,
		Handler: NewHandler(history),
	}
}
