package kvrepo

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("kv: key not found")

// Repo is the local persistence medium the stores serialize into.
type Repo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type memRepo struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemory() Repo { return &memRepo{m: map[string]string{}} }

func (r *memRepo) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.m[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (r *memRepo) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	r.m[key] = value
	r.mu.Unlock()
	return nil
}
