package services

import (
	"context"
	"strings"

	"ellp/voluntariado/internal/apperrors"
	"ellp/voluntariado/internal/constants"
	"ellp/voluntariado/internal/db/repositories"
	"ellp/voluntariado/internal/models/dtos"
	gormModels "ellp/voluntariado/internal/models/gorm"
)

// VoluntarioService owns the volunteer lifecycle: creation, merge updates
// with the exit-date deactivation rule, deletion, filtered listing, the
// association append and both association views.
type VoluntarioService struct {
	repo *repositories.VoluntarioRepository
}

func NewVoluntarioService(repo *repositories.VoluntarioRepository) *VoluntarioService {
	return &VoluntarioService{repo: repo}
}

func (s *VoluntarioService) Create(ctx context.Context, req dtos.CreateVoluntarioRequest) (*dtos.VoluntarioResponse, error) {
	nome := strings.TrimSpace(req.NomeCompleto)
	if nome == "" {
		return nil, apperrors.Validation("nomeCompleto", "Nome completo é obrigatório")
	}

	v := &gormModels.Voluntario{
		NomeCompleto: nome,
		RG:           strings.TrimSpace(req.RG),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Telefone:     strings.TrimSpace(req.Telefone),
		Endereco:     strings.TrimSpace(req.Endereco),
		Ativo:        true,
	}

	if req.CPF != nil {
		if cpf := strings.TrimSpace(*req.CPF); cpf != "" {
			taken, err := s.repo.CPFTaken(ctx, cpf, "")
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, apperrors.Conflict(constants.MsgCPFTaken)
			}
			v.CPF = &cpf
		}
	}

	if req.DataEntrada != nil {
		t := req.DataEntrada.Time
		v.DataEntrada = &t
	}
	if req.DataSaida != nil {
		t := req.DataSaida.Time
		v.DataSaida = &t
		// Exit date implies inactive from the very first write.
		v.Ativo = false
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	resp := toVoluntarioResponse(v)
	return &resp, nil
}

func (s *VoluntarioService) Get(ctx context.Context, id string) (*dtos.VoluntarioResponse, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toVoluntarioResponse(v)
	return &resp, nil
}

func (s *VoluntarioService) List(ctx context.Context, filter dtos.VoluntarioFilter) ([]dtos.VoluntarioResponse, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.VoluntarioResponse, 0, len(list))
	for i := range list {
		out = append(out, toVoluntarioResponse(&list[i]))
	}
	return out, nil
}

// Update merges the payload field by field onto the stored record. The
// dataSaida rule triggers on key presence: any payload carrying the key,
// whatever its value, leaves the volunteer inactive.
func (s *VoluntarioService) Update(ctx context.Context, id string, req dtos.UpdateVoluntarioRequest) (*dtos.VoluntarioResponse, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.NomeCompleto != nil {
		nome := strings.TrimSpace(*req.NomeCompleto)
		if nome == "" {
			return nil, apperrors.Validation("nomeCompleto", "Nome completo é obrigatório")
		}
		v.NomeCompleto = nome
	}

	if req.CPF != nil {
		cpf := strings.TrimSpace(*req.CPF)
		if cpf == "" {
			v.CPF = nil
		} else if v.CPF == nil || *v.CPF != cpf {
			taken, err := s.repo.CPFTaken(ctx, cpf, v.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, apperrors.Conflict(constants.MsgCPFTaken)
			}
			v.CPF = &cpf
		}
	}

	if req.RG != nil {
		v.RG = strings.TrimSpace(*req.RG)
	}
	if req.Email != nil {
		v.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Telefone != nil {
		v.Telefone = strings.TrimSpace(*req.Telefone)
	}
	if req.Endereco != nil {
		v.Endereco = strings.TrimSpace(*req.Endereco)
	}
	if req.DataEntrada != nil {
		t := req.DataEntrada.Time
		v.DataEntrada = &t
	}
	if req.Ativo != nil {
		v.Ativo = *req.Ativo
	}

	if req.DataSaida.Set {
		v.DataSaida = req.DataSaida.Value
		v.Ativo = false
	}
	// Write-time invariant: a stored exit date always means inactive.
	if v.DataSaida != nil {
		v.Ativo = false
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}

	resp := toVoluntarioResponse(v)
	return &resp, nil
}

func (s *VoluntarioService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Associate appends one association. A duplicate pair is a conflict, never
// a silent no-op, and the history stays untouched.
func (s *VoluntarioService) Associate(ctx context.Context, voluntarioID, oficinaID string) (*dtos.AssociarOficinaResponse, error) {
	if strings.TrimSpace(oficinaID) == "" {
		return nil, apperrors.Validation("oficinaId", constants.MsgOficinaRequired)
	}

	if _, err := s.repo.Associate(ctx, voluntarioID, strings.TrimSpace(oficinaID)); err != nil {
		return nil, err
	}

	v, err := s.repo.GetByID(ctx, voluntarioID)
	if err != nil {
		return nil, err
	}
	return &dtos.AssociarOficinaResponse{Voluntario: toVoluntarioResponse(v)}, nil
}

// History returns the current membership snapshot: identity fields plus the
// de-referenced workshops and their count. The timestamped audit trail
// stays on the volunteer response itself.
func (s *VoluntarioService) History(ctx context.Context, id string) (*dtos.HistoricoResponse, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oficinas := membershipProjection(v)
	return &dtos.HistoricoResponse{
		VoluntarioID: v.ID,
		NomeCompleto: v.NomeCompleto,
		DataEntrada:  v.DataEntrada,
		DataSaida:    v.DataSaida,
		Ativo:        v.Ativo,
		Oficinas:     oficinas,
		Total:        len(oficinas),
	}, nil
}

// membershipProjection derives the current membership list from the
// association rows. Associations whose workshop no longer resolves are
// skipped here but stay visible in the history view.
func membershipProjection(v *gormModels.Voluntario) []dtos.OficinaSnapshot {
	out := make([]dtos.OficinaSnapshot, 0, len(v.Associacoes))
	for _, a := range v.Associacoes {
		if a.Oficina == nil {
			continue
		}
		out = append(out, toOficinaSnapshot(a.Oficina))
	}
	return out
}

func toOficinaSnapshot(o *gormModels.Oficina) dtos.OficinaSnapshot {
	return dtos.OficinaSnapshot{
		ID:          o.ID,
		Titulo:      o.Titulo,
		Descricao:   o.Descricao,
		Data:        o.Data,
		Local:       o.Local,
		Responsavel: o.Responsavel,
	}
}

func toVoluntarioResponse(v *gormModels.Voluntario) dtos.VoluntarioResponse {
	historia := make([]dtos.AssociacaoView, 0, len(v.Associacoes))
	for _, a := range v.Associacoes {
		view := dtos.AssociacaoView{
			OficinaID:      a.OficinaID,
			DataAssociacao: a.DataAssociacao,
		}
		if a.Oficina != nil {
			snap := toOficinaSnapshot(a.Oficina)
			view.Oficina = &snap
		}
		historia = append(historia, view)
	}

	cpf := ""
	if v.CPF != nil {
		cpf = *v.CPF
	}

	return dtos.VoluntarioResponse{
		ID:           v.ID,
		NomeCompleto: v.NomeCompleto,
		CPF:          cpf,
		RG:           v.RG,
		Email:        v.Email,
		Telefone:     v.Telefone,
		Endereco:     v.Endereco,
		DataEntrada:  v.DataEntrada,
		DataSaida:    v.DataSaida,
		Ativo:        v.Ativo,
		Oficinas:     membershipProjection(v),
		Associacoes:  historia,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
