package memstore

import (
	"context"
	"sync"

	"github.com/next-trace/scg-mediator/user"
)

// Store is a thread-safe in-memory implementation of user.Repository.
// Visibility is "next call on the same process"; there is no transactional
// guarantee and no serialization of independent callers beyond the mutex.
type Store struct {
	mu    sync.RWMutex
	users map[string]user.Snapshot
}

// Ensure Store implements the repository port.
var _ user.Repository = (*Store)(nil)

// New creates an empty Store.
func New() *Store {
	return &Store{users: make(map[string]user.Snapshot)}
}

func (s *Store) Save(ctx context.Context, u user.Snapshot) (user.Snapshot, error) {
	_ = ctx

	s.mu.Lock()
	s.users[u.ID] = u
	s.mu.Unlock()

	return u, nil
}

func (s *Store) FindByID(ctx context.Context, id string) (user.Snapshot, bool, error) {
	_ = ctx

	s.mu.RLock()
	u, ok := s.users[id]
	s.mu.RUnlock()

	return u, ok, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (user.Snapshot, bool, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true, nil
		}
	}

	return user.Snapshot{}, false, nil
}

func (s *Store) FindAll(ctx context.Context) ([]user.Snapshot, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]user.Snapshot, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}

	return all, nil
}

func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false, nil
	}

	delete(s.users, id)

	return true, nil
}
