// Package memory is a process-local implementation of the repository
// interfaces. It mirrors the postgres constraints (unique email, foreign
// keys with cascade, one request per sender/receiver pair) and is used for
// STORAGE=memory development runs and tests.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nirmalvora/padosee-server/internal/domain"
)

type Store struct {
	mu       sync.RWMutex
	users    map[string]*domain.User
	requests map[string]*domain.Request
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]*domain.User),
		requests: make(map[string]*domain.Request),
		now:      time.Now,
	}
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{s: s}
}

func (s *Store) Requests() *RequestRepository {
	return &RequestRepository{s: s}
}

// canonicalID returns the normalized form of id, or "" if it is not a UUID.
func canonicalID(id string) string {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return ""
	}
	return parsed.String()
}
