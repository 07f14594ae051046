package practice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookmarkStore persists bookmark sets. Writes replace the whole set; the
// last writer wins.
type BookmarkStore interface {
	Load(ctx context.Context, userID string) ([]int, error)
	Save(ctx context.Context, userID string, ids []int) error
}

type memoryStore struct {
	mu  sync.RWMutex
	ids map[string][]int
}

func NewMemoryStore() BookmarkStore {
	return &memoryStore{ids: make(map[string][]int)}
}

func (s *memoryStore) Load(_ context.Context, userID string) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int(nil), s.ids[userID]...), nil
}

func (s *memoryStore) Save(_ context.Context, userID string, ids []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[userID] = append([]int(nil), ids...)
	return nil
}

type fileStore struct {
	path string
}

// NewFileStore keeps a single JSON array of ids at path. The file belongs to
// whoever is signed in on this machine, so userID is ignored.
func NewFileStore(path string) BookmarkStore {
	return &fileStore{path: path}
}

func (s *fileStore) Load(_ context.Context, _ string) ([]int, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("decode bookmarks: %w", err)
	}
	return ids, nil
}

func (s *fileStore) Save(_ context.Context, _ string, ids []int) error {
	if ids == nil {
		ids = []int{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// BookmarkRecord is one row per user holding the id array as JSON.
type BookmarkRecord struct {
	UserID      string         `gorm:"type:text;primaryKey"`
	QuestionIDs datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt   time.Time
}

type gormStore struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) BookmarkStore {
	return &gormStore{db: db}
}

func (s *gormStore) Load(ctx context.Context, userID string) ([]int, error) {
	var rec BookmarkRecord
	if err := s.db.WithContext(ctx).First(&rec, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var ids []int
	if err := json.Unmarshal(rec.QuestionIDs, &ids); err != nil {
		return nil, fmt.Errorf("decode bookmarks for %s: %w", userID, err)
	}
	return ids, nil
}

func (s *gormStore) Save(ctx context.Context, userID string, ids []int) error {
	if ids == nil {
		ids = []int{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	rec := BookmarkRecord{UserID: userID, QuestionIDs: datatypes.JSON(raw)}
	return s.db.WithContext(ctx).Save(&rec).Error
}
