package settings

import "context"

type Repository interface {
	GetByKey(ctx context.Context, key string) (*Setting, error)
	Upsert(ctx context.Context, s *Setting) error
}
