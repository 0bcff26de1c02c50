package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/Tehl/bank-api/internal/core"
)

// UserStore is an in-memory, append-only implementation of
// core.UserRepository. Identities are 1-based and assigned under the write
// lock, so concurrent creates never share an id. Reads work on snapshots.
type UserStore struct {
	mu    sync.RWMutex
	users []core.AppUser
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) CreateUser(_ context.Context, username string) (core.AppUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return core.AppUser{}, fmt.Errorf("%w: %s", core.ErrUserExists, username)
		}
	}

	user := core.AppUser{
		ID:       int64(len(s.users) + 1),
		Username: username,
	}
	s.users = append(s.users, user)

	return user, nil
}

func (s *UserStore) GetUserByID(_ context.Context, userID int64) (*core.AppUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == userID {
			found := user
			return &found, nil
		}
	}

	return nil, nil
}

func (s *UserStore) GetUserByUsername(_ context.Context, username string) (*core.AppUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}

	return nil, nil
}

func (s *UserStore) GetAllUsers(_ context.Context) ([]core.AppUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]core.AppUser, len(s.users))
	copy(snapshot, s.users)

	return snapshot, nil
}
