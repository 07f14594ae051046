package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type fileRepository struct {
	mu   sync.Mutex
	path string
}

// NewFileRepository keeps every user's records in one JSON object at path,
// keyed by user id.
func NewFileRepository(path string) HistoryRepository {
	return &fileRepository{path: path}
}

func (r *fileRepository) Create(_ context.Context, userID string, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.read()
	if err != nil {
		return err
	}
	all[userID] = append(all[userID], rec)

	raw, err := json.Marshal(all)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(r.path, raw, 0o600)
}

func (r *fileRepository) ListByUser(_ context.Context, userID string) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.read()
	if err != nil {
		return nil, err
	}
	return all[userID], nil
}

func (r *fileRepository) read() (map[string][]Record, error) {
	all := make(map[string][]Record)

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return all, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return all, nil
}
