package user

import (
	"time"

	"gorm.io/gorm"
)

type UserContainer struct {
	Repo    UserRepository
	Service UserService
	Handler *Handler
}

// NewUserContainer uses the database when one is connected and process
// memory otherwise.
func NewUserContainer(db *gorm.DB, adminPassHash string, tokenTTL time.Duration) *UserContainer {
	var repo UserRepository
	if db != nil {
		repo = NewRepository(db)
	} else {
		repo = NewMemoryRepository()
	}
	service := NewService(repo, adminPassHash)
	handler := NewHandler(service, tokenTTL)

	return &UserContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
