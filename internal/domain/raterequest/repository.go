package raterequest

import "context"

type Repository interface {
	Create(ctx context.Context, r *RateRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*RateRequest, error)
	// ListNewestFirst returns every request ordered by created_at descending.
	ListNewestFirst(ctx context.Context) ([]RateRequest, error)
	Save(ctx context.Context, r *RateRequest) error
	// Delete hard-deletes and reports how many rows were removed.
	Delete(ctx context.Context, requestID string) (int64, error)
}
