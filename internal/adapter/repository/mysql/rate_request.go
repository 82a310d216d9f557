package mysql

import (
	"context"

	domain "dealer-finance-api/internal/domain/raterequest"

	"gorm.io/gorm"
)

type RateRequestRepository struct{ db *gorm.DB }

func NewRateRequestRepository(db *gorm.DB) *RateRequestRepository {
	return &RateRequestRepository{db: db}
}

// Tx runs fn in a db transaction, passing a repo bound to the tx
func (r *RateRequestRepository) Tx(ctx context.Context, fn func(repo domain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&RateRequestRepository{db: tx})
	})
}

func (r *RateRequestRepository) Create(ctx context.Context, req *domain.RateRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *RateRequestRepository) Save(ctx context.Context, req *domain.RateRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *RateRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*domain.RateRequest, error) {
	var out domain.RateRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *RateRequestRepository) ListNewestFirst(ctx context.Context) ([]domain.RateRequest, error) {
	var out []domain.RateRequest
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *RateRequestRepository) Delete(ctx context.Context, requestID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).Delete(&domain.RateRequest{})
	return res.RowsAffected, res.Error
}
