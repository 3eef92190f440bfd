package credentials

import (
	"context"
	"sync"
)

// MemoryRepository keeps the token pair in process memory. Used by tests and
// when no database path is configured.
type MemoryRepository struct {
	mu      sync.RWMutex
	access  string
	refresh string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) AccessToken(context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.access, nil
}

func (r *MemoryRepository) RefreshToken(context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.refresh, nil
}

func (r *MemoryRepository) Save(_ context.Context, accessToken, refreshToken string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.access, r.refresh = accessToken, refreshToken
	return nil
}

func (r *MemoryRepository) Clear(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.access, r.refresh = "", ""
	return nil
}
