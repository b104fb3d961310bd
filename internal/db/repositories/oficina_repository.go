package repositories

import (
	"context"
	"errors"

	"ellp/voluntariado/internal/apperrors"
	"ellp/voluntariado/internal/constants"
	gormModels "ellp/voluntariado/internal/models/gorm"

	"gorm.io/gorm"
)

type OficinaRepository struct {
	db *gorm.DB
}

// NewOficinaRepository creates a new GORM-based workshop repository
func NewOficinaRepository(db *gorm.DB) *OficinaRepository {
	return &OficinaRepository{db: db}
}

func (r *OficinaRepository) Create(ctx context.Context, o *gormModels.Oficina) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (r *OficinaRepository) GetByID(ctx context.Context, id string) (*gormModels.Oficina, error) {
	var o gormModels.Oficina

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound(constants.MsgOficinaNotFound)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &o, nil
}

func (r *OficinaRepository) List(ctx context.Context) ([]gormModels.Oficina, error) {
	var list []gormModels.Oficina
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return list, nil
}

func (r *OficinaRepository) Update(ctx context.Context, o *gormModels.Oficina) error {
	if err := r.db.WithContext(ctx).Save(o).Error; err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// Delete removes the workshop only. Association rows that reference it are
// kept as historical fact; read-time population skips the dangling ones.
func (r *OficinaRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gormModels.Oficina{})
	if res.Error != nil {
		return apperrors.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound(constants.MsgOficinaNotFound)
	}
	return nil
}

func (r *OficinaRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&gormModels.Oficina{}).Count(&count).Error; err != nil {
		return 0, apperrors.Internal(err)
	}
	return count, nil
}
