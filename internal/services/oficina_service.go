package services

import (
	"context"
	"strings"

	"ellp/voluntariado/internal/apperrors"
	"ellp/voluntariado/internal/db/repositories"
	"ellp/voluntariado/internal/models/dtos"
	gormModels "ellp/voluntariado/internal/models/gorm"
)

// OficinaService owns workshop CRUD. Workshops never own volunteers; the
// relation lives on the association side.
type OficinaService struct {
	repo *repositories.OficinaRepository
}

func NewOficinaService(repo *repositories.OficinaRepository) *OficinaService {
	return &OficinaService{repo: repo}
}

func (s *OficinaService) Create(ctx context.Context, req dtos.CreateOficinaRequest) (*dtos.OficinaResponse, error) {
	titulo := strings.TrimSpace(req.Titulo)
	if titulo == "" {
		return nil, apperrors.Validation("titulo", "Título é obrigatório")
	}

	o := &gormModels.Oficina{
		Titulo:      titulo,
		Descricao:   strings.TrimSpace(req.Descricao),
		Local:       strings.TrimSpace(req.Local),
		Responsavel: strings.TrimSpace(req.Responsavel),
	}
	if req.Data != nil {
		t := req.Data.Time
		o.Data = &t
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	resp := toOficinaResponse(o)
	return &resp, nil
}

func (s *OficinaService) Get(ctx context.Context, id string) (*dtos.OficinaResponse, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toOficinaResponse(o)
	return &resp, nil
}

func (s *OficinaService) List(ctx context.Context) ([]dtos.OficinaResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.OficinaResponse, 0, len(list))
	for i := range list {
		out = append(out, toOficinaResponse(&list[i]))
	}
	return out, nil
}

func (s *OficinaService) Update(ctx context.Context, id string, req dtos.UpdateOficinaRequest) (*dtos.OficinaResponse, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Titulo != nil {
		titulo := strings.TrimSpace(*req.Titulo)
		if titulo == "" {
			return nil, apperrors.Validation("titulo", "Título é obrigatório")
		}
		o.Titulo = titulo
	}
	if req.Descricao != nil {
		o.Descricao = strings.TrimSpace(*req.Descricao)
	}
	if req.Data != nil {
		t := req.Data.Time
		o.Data = &t
	}
	if req.Local != nil {
		o.Local = strings.TrimSpace(*req.Local)
	}
	if req.Responsavel != nil {
		o.Responsavel = strings.TrimSpace(*req.Responsavel)
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	resp := toOficinaResponse(o)
	return &resp, nil
}

func (s *OficinaService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func toOficinaResponse(o *gormModels.Oficina) dtos.OficinaResponse {
	return dtos.OficinaResponse{
		ID:          o.ID,
		Titulo:      o.Titulo,
		Descricao:   o.Descricao,
		Data:        o.Data,
		Local:       o.Local,
		Responsavel: o.Responsavel,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
