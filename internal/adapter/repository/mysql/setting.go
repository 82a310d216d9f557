package mysql

import (
	"context"

	domain "dealer-finance-api/internal/domain/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct{ db *gorm.DB }

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) GetByKey(ctx context.Context, key string) (*domain.Setting, error) {
	var out domain.Setting
	res := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&out)
	return &out, res.Error
}

func (r *SettingRepository) Upsert(ctx context.Context, s *domain.Setting) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(s).Error
}
