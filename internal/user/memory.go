package user

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	users []*User
}

// NewMemoryRepository keeps users in process memory, in insertion order.
func NewMemoryRepository() UserRepository {
	return &memoryRepository{}
}

func (m *memoryRepository) Create(_ context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.ID == u.ID || existing.Email == u.Email {
			return ErrUserExists
		}
	}
	cp := *u
	m.users = append(m.users, &cp)
	return nil
}

func (m *memoryRepository) GetByID(_ context.Context, id string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memoryRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	email = normalizeEmail(email)
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memoryRepository) Update(_ context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.users {
		if existing.ID == u.ID {
			cp := *u
			m.users[i] = &cp
			return nil
		}
	}
	return ErrUserNotFound
}

func (m *memoryRepository) List(_ context.Context) ([]*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*User, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}
