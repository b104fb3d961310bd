package repositories

import (
	"context"
	"errors"
	"strings"

	"ellp/voluntariado/internal/apperrors"
	"ellp/voluntariado/internal/constants"
	gormModels "ellp/voluntariado/internal/models/gorm"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new GORM-based user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *gormModels.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict(constants.MsgEmailTaken)
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*gormModels.User, error) {
	var user gormModels.User

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound(constants.MsgUserNotFound)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &user, nil
}

// GetByEmail resolves a user by email, case-insensitively.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*gormModels.User, error) {
	var user gormModels.User

	err := r.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound(constants.MsgUserNotFound)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *gormModels.User) error {
	err := r.db.WithContext(ctx).Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict(constants.MsgEmailTaken)
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// EmailTaken reports whether another user already claims the email.
func (r *UserRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	var count int64

	q := r.db.WithContext(ctx).Model(&gormModels.User{}).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, apperrors.Internal(err)
	}
	return count > 0, nil
}
