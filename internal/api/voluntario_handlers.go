package api

import (
	"net/http"
	"time"

	"ellp/voluntariado/internal/common"
	"ellp/voluntariado/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// CreateVoluntario handles POST /api/v1/voluntarios
func (h *Handlers) CreateVoluntario() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateVoluntarioRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		v, err := h.deps.Services.Voluntarios.Create(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Voluntário criado com sucesso", v, http.StatusCreated)
	}
}

// ListVoluntarios handles GET /api/v1/voluntarios
// Query filters: nome (substring, case-insensitive), cpf (digits only
// compared), oficina (workshop id).
func (h *Handlers) ListVoluntarios() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		filter := dtos.VoluntarioFilter{
			Nome:    r.URL.Query().Get("nome"),
			CPF:     r.URL.Query().Get("cpf"),
			Oficina: r.URL.Query().Get("oficina"),
		}

		list, err := h.deps.Services.Voluntarios.List(r.Context(), filter)
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Voluntários listados", list)
	}
}

// GetVoluntario handles GET /api/v1/voluntarios/{id}
func (h *Handlers) GetVoluntario() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		v, err := h.deps.Services.Voluntarios.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Voluntário encontrado", v)
	}
}

// UpdateVoluntario handles PUT /api/v1/voluntarios/{id}
func (h *Handlers) UpdateVoluntario() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.UpdateVoluntarioRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		v, err := h.deps.Services.Voluntarios.Update(r.Context(), chi.URLParam(r, "id"), req)
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Voluntário atualizado", v)
	}
}

// DeleteVoluntario handles DELETE /api/v1/voluntarios/{id}
func (h *Handlers) DeleteVoluntario() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Voluntarios.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Voluntário removido", nil)
	}
}

// AssociarOficina handles POST /api/v1/voluntarios/{id}/assign
func (h *Handlers) AssociarOficina() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AssociarOficinaRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		resp, err := h.deps.Services.Voluntarios.Associate(r.Context(), chi.URLParam(r, "id"), req.OficinaID)
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		h.deps.Metrics.AssociacoesTotal.Inc()
		common.RespondSuccess(w, initTime, "Oficina associada com sucesso", resp)
	}
}

// HistoricoVoluntario handles GET /api/v1/voluntarios/{id}/historico
func (h *Handlers) HistoricoVoluntario() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		hist, err := h.deps.Services.Voluntarios.History(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Histórico carregado", hist)
	}
}
