package ratereqmock

import (
	"context"

	domain "dealer-finance-api/internal/domain/raterequest"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, r *domain.RateRequest) error
	GetByRequestIDFn  func(ctx context.Context, requestID string) (*domain.RateRequest, error)
	ListNewestFirstFn func(ctx context.Context) ([]domain.RateRequest, error)
	SaveFn            func(ctx context.Context, r *domain.RateRequest) error
	DeleteFn          func(ctx context.Context, requestID string) (int64, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.RateRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.RateRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListNewestFirst(ctx context.Context) ([]domain.RateRequest, error) {
	if m.ListNewestFirstFn != nil {
		return m.ListNewestFirstFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, r *domain.RateRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, requestID string) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, requestID)
	}
	return 0, nil
}
