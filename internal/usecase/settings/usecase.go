package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	domain "dealer-finance-api/internal/domain/settings"

	"gorm.io/gorm"
)

// Cache is the key-value capability the usecase reads through. A miss is
// (nil, false, nil); ttl == 0 means no store-level expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// StalePolicy decides when a cached setting stops being fresh. Entries are
// stored without store-level expiry so that a stale copy survives to back
// the staleness fallback: when the database is unreachable, a stale entry
// is served instead of failing the request.
type StalePolicy struct {
	TTL time.Duration
}

func (p StalePolicy) Fresh(cachedAt, now time.Time) bool {
	return now.Sub(cachedAt) < p.TTL
}

type cacheEnvelope struct {
	Value    string    `json:"value"`
	CachedAt time.Time `json:"cached_at"`
}

type SettingDTO struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Cached bool   `json:"cached"`
}

type Usecase struct {
	repo   domain.Repository
	cache  Cache
	policy StalePolicy
	now    func() time.Time
}

func NewUsecase(r domain.Repository, c Cache, p StalePolicy) *Usecase {
	return &Usecase{repo: r, cache: c, policy: p, now: func() time.Time { return time.Now().UTC() }}
}

func cacheKey(key string) string { return "settings:" + key }

// Get serves a setting from cache while fresh, refreshes it from the
// database otherwise, and falls back to the stale copy when the refresh
// fails. A genuine not-found is authoritative and is never masked by a
// stale entry.
func (u *Usecase) Get(ctx context.Context, key string) (*SettingDTO, error) {
	var env cacheEnvelope
	haveCached := false

	raw, ok, err := u.cache.Get(ctx, cacheKey(key))
	if err != nil {
		// A broken cache degrades to a plain database read.
		log.Printf("settings cache get %q: %v", key, err)
	} else if ok {
		if err := json.Unmarshal(raw, &env); err == nil {
			haveCached = true
		}
	}

	if haveCached && u.policy.Fresh(env.CachedAt, u.now()) {
		return &SettingDTO{Key: key, Value: env.Value, Cached: true}, nil
	}

	s, err := u.repo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		if haveCached {
			log.Printf("settings %q: serving stale cache, fetch failed: %v", key, err)
			return &SettingDTO{Key: key, Value: env.Value, Cached: true}, nil
		}
		return nil, fmt.Errorf("load setting %q: %w", key, err)
	}

	u.recache(ctx, key, s.Value)
	return &SettingDTO{Key: key, Value: s.Value, Cached: false}, nil
}

// Put upserts a setting and refreshes the cache so readers see the new
// value immediately.
func (u *Usecase) Put(ctx context.Context, key, value string) (*SettingDTO, error) {
	s := &domain.Setting{Key: key, Value: value}
	if err := u.repo.Upsert(ctx, s); err != nil {
		return nil, fmt.Errorf("upsert setting %q: %w", key, err)
	}
	u.recache(ctx, key, value)
	return &SettingDTO{Key: key, Value: value, Cached: false}, nil
}

func (u *Usecase) recache(ctx context.Context, key, value string) {
	payload, _ := json.Marshal(cacheEnvelope{Value: value, CachedAt: u.now()})
	if err := u.cache.Set(ctx, cacheKey(key), payload, 0); err != nil {
		log.Printf("settings cache set %q: %v", key, err)
	}
}
