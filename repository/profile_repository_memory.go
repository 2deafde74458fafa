package repository

import (
	"context"
	"sync"

	"fund-selector/domain"
)

// ProfileRepositoryMemory is an in-memory implementation of ProfileRepository.
type ProfileRepositoryMemory struct {
	mu   sync.RWMutex
	data map[string]domain.Profile
}

// NewProfileRepositoryMemory creates a new in-memory profile repository.
func NewProfileRepositoryMemory() *ProfileRepositoryMemory {
	return &ProfileRepositoryMemory{
		data: make(map[string]domain.Profile),
	}
}

// Save stores the profile in memory, replacing any profile with the same ID.
func (r *ProfileRepositoryMemory) Save(_ context.Context, profile domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[profile.ID] = profile
	return nil
}

func (r *ProfileRepositoryMemory) Get(_ context.Context, id string) (domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[id]
	if !ok {
		return domain.Profile{}, ErrProfileNotFound
	}
	return p, nil
}

func (r *ProfileRepositoryMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}
