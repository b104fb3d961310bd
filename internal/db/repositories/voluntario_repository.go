package repositories

import (
	"context"
	"errors"
	"strings"

	"ellp/voluntariado/internal/apperrors"
	"ellp/voluntariado/internal/constants"
	"ellp/voluntariado/internal/models/dtos"
	gormModels "ellp/voluntariado/internal/models/gorm"

	"gorm.io/gorm"
)

type VoluntarioRepository struct {
	db *gorm.DB
}

// NewVoluntarioRepository creates a new GORM-based volunteer repository
func NewVoluntarioRepository(db *gorm.DB) *VoluntarioRepository {
	return &VoluntarioRepository{db: db}
}

// withAssociacoes preloads the association history in append order plus the
// referenced workshops. Workshops deleted after association stay as rows
// with a nil Oficina; projections skip them, history keeps them.
func withAssociacoes(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Associacoes", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("data_associacao ASC")
		}).
		Preload("Associacoes.Oficina")
}

func (r *VoluntarioRepository) Create(ctx context.Context, v *gormModels.Voluntario) error {
	err := r.db.WithContext(ctx).Create(v).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict(constants.MsgCPFTaken)
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (r *VoluntarioRepository) GetByID(ctx context.Context, id string) (*gormModels.Voluntario, error) {
	var v gormModels.Voluntario

	err := withAssociacoes(r.db.WithContext(ctx)).Where("id = ?", id).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound(constants.MsgVoluntarioNotFound)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &v, nil
}

// List applies the composable filters (AND semantics) and returns volunteers
// newest first, with association history and workshops populated.
func (r *VoluntarioRepository) List(ctx context.Context, filter dtos.VoluntarioFilter) ([]gormModels.Voluntario, error) {
	q := withAssociacoes(r.db.WithContext(ctx)).Model(&gormModels.Voluntario{})

	if nome := strings.TrimSpace(filter.Nome); nome != "" {
		q = q.Where("lower(nome_completo) LIKE ?", "%"+strings.ToLower(nome)+"%")
	}

	if cpf := strings.TrimSpace(filter.CPF); cpf != "" {
		clean := strings.NewReplacer(".", "", "-", "").Replace(cpf)
		q = q.Where("cpf LIKE ?", "%"+clean+"%")
	}

	if oficina := strings.TrimSpace(filter.Oficina); oficina != "" {
		q = q.Where(
			"EXISTS (SELECT 1 FROM associacoes a WHERE a.voluntario_id = voluntarios.id AND a.oficina_id = ?)",
			oficina,
		)
	}

	var list []gormModels.Voluntario
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return list, nil
}

func (r *VoluntarioRepository) Update(ctx context.Context, v *gormModels.Voluntario) error {
	err := r.db.WithContext(ctx).Save(v).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict(constants.MsgCPFTaken)
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// Delete removes the volunteer and the association rows it owns in one
// transaction. History rows do not survive their volunteer.
func (r *VoluntarioRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("voluntario_id = ?", id).Delete(&gormModels.Associacao{}).Error; err != nil {
			return apperrors.Internal(err)
		}

		res := tx.Where("id = ?", id).Delete(&gormModels.Voluntario{})
		if res.Error != nil {
			return apperrors.Internal(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.NotFound(constants.MsgVoluntarioNotFound)
		}
		return nil
	})
}

// CPFTaken reports whether another volunteer already claims the cpf. This is
// the fast-path check; the unique index remains the authority under races.
func (r *VoluntarioRepository) CPFTaken(ctx context.Context, cpf, excludeID string) (bool, error) {
	var count int64

	q := r.db.WithContext(ctx).Model(&gormModels.Voluntario{}).Where("cpf = ?", cpf)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, apperrors.Internal(err)
	}
	return count > 0, nil
}

// Associate appends one association row. The duplicate check and the insert
// run in the same transaction; a concurrent duplicate insert still fails on
// the composite unique index and is reported as the same conflict.
func (r *VoluntarioRepository) Associate(ctx context.Context, voluntarioID, oficinaID string) (*gormModels.Associacao, error) {
	var assoc *gormModels.Associacao

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&gormModels.Voluntario{}).Where("id = ?", voluntarioID).Count(&count).Error; err != nil {
			return apperrors.Internal(err)
		}
		if count == 0 {
			return apperrors.NotFound(constants.MsgVoluntarioNotFound)
		}

		if err := tx.Model(&gormModels.Associacao{}).
			Where("voluntario_id = ? AND oficina_id = ?", voluntarioID, oficinaID).
			Count(&count).Error; err != nil {
			return apperrors.Internal(err)
		}
		if count > 0 {
			return apperrors.Conflict(constants.MsgAlreadyAssociated)
		}

		assoc = &gormModels.Associacao{VoluntarioID: voluntarioID, OficinaID: oficinaID}
		if err := tx.Create(assoc).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict(constants.MsgAlreadyAssociated)
			}
			return apperrors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assoc, nil
}

// CountByAtivo counts volunteers by lifecycle state.
func (r *VoluntarioRepository) CountByAtivo(ctx context.Context, ativo bool) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Voluntario{}).Where("ativo = ?", ativo).Count(&count).Error
	if err != nil {
		return 0, apperrors.Internal(err)
	}
	return count, nil
}
