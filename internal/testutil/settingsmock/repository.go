package settingsmock

import (
	"context"
	"time"

	domain "dealer-finance-api/internal/domain/settings"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByKeyFn func(ctx context.Context, key string) (*domain.Setting, error)
	UpsertFn   func(ctx context.Context, s *domain.Setting) error
}

func (m *Repo) GetByKey(ctx context.Context, key string) (*domain.Setting, error) {
	if m.GetByKeyFn != nil {
		return m.GetByKeyFn(ctx, key)
	}
	return nil, context.Canceled
}

func (m *Repo) Upsert(ctx context.Context, s *domain.Setting) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, s)
	}
	return nil
}

// Cache is an in-memory stand-in for the redis store used by the settings
// usecase. Entries never expire; staleness is the policy's concern.
type Cache struct {
	GetErr  error
	SetErr  error
	Entries map[string][]byte
	SetTTLs map[string]time.Duration
}

func NewCache() *Cache {
	return &Cache{Entries: map[string][]byte{}, SetTTLs: map[string]time.Duration{}}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.GetErr != nil {
		return nil, false, c.GetErr
	}
	v, ok := c.Entries[key]
	return v, ok, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.SetErr != nil {
		return c.SetErr
	}
	c.Entries[key] = value
	c.SetTTLs[key] = ttl
	return nil
}
