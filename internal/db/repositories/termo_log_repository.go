package repositories

import (
	"context"

	"ellp/voluntariado/internal/apperrors"
	gormModels "ellp/voluntariado/internal/models/gorm"

	"gorm.io/gorm"
)

type TermoLogRepository struct {
	db *gorm.DB
}

// NewTermoLogRepository creates a new GORM-based term-log repository
func NewTermoLogRepository(db *gorm.DB) *TermoLogRepository {
	return &TermoLogRepository{db: db}
}

func (r *TermoLogRepository) Create(ctx context.Context, log *gormModels.TermoLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (r *TermoLogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&gormModels.TermoLog{}).Count(&count).Error; err != nil {
		return 0, apperrors.Internal(err)
	}
	return count, nil
}
