package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nanambeah/MedPrep-Ghana/internal/config"
)

// Store persists the last signed-in user on the client side.
type Store interface {
	Load(ctx context.Context) (*User, error)
	Save(ctx context.Context, u *User) error
	Clear(ctx context.Context) error
}

type fileStore struct {
	path string
}

// NewFileStore keeps the user blob at path. When crypto is configured the
// blob is written AES-GCM encrypted.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Load(ctx context.Context) (*User, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	if config.CryptoEnabled() {
		plain, err := config.Decrypt(string(raw))
		if err != nil {
			config.WithContext(ctx).WithError(err).Warn("Stored user blob could not be decrypted, ignoring it")
			return nil, nil
		}
		raw = []byte(plain)
	}

	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	if u.ID == "" {
		return nil, nil
	}
	return &u, nil
}

func (s *fileStore) Save(_ context.Context, u *User) error {
	if u == nil {
		return ErrInvalidInput
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}

	if config.CryptoEnabled() {
		enc, err := config.Encrypt(string(raw))
		if err != nil {
			return err
		}
		raw = []byte(enc)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *fileStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
