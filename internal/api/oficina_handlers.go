package api

import (
	"net/http"
	"time"

	"ellp/voluntariado/internal/common"
	"ellp/voluntariado/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// CreateOficina handles POST /api/v1/oficinas
func (h *Handlers) CreateOficina() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateOficinaRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		o, err := h.deps.Services.Oficinas.Create(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Oficina criada com sucesso", o, http.StatusCreated)
	}
}

// ListOficinas handles GET /api/v1/oficinas
func (h *Handlers) ListOficinas() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		list, err := h.deps.Services.Oficinas.List(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Oficinas listadas", list)
	}
}

// GetOficina handles GET /api/v1/oficinas/{id}
func (h *Handlers) GetOficina() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		o, err := h.deps.Services.Oficinas.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Oficina encontrada", o)
	}
}

// UpdateOficina handles PUT /api/v1/oficinas/{id}
func (h *Handlers) UpdateOficina() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.UpdateOficinaRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		o, err := h.deps.Services.Oficinas.Update(r.Context(), chi.URLParam(r, "id"), req)
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Oficina atualizada", o)
	}
}

// DeleteOficina handles DELETE /api/v1/oficinas/{id}
func (h *Handlers) DeleteOficina() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Oficinas.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Oficina removida", nil)
	}
}
