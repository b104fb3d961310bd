package api

import (
	"fmt"
	"net/http"
	"time"

	"ellp/voluntariado/internal/common"

	"github.com/go-chi/chi/v5"
)

// ExportVoluntariosCSV handles GET /api/v1/voluntarios/export/csv
func (h *Handlers) ExportVoluntariosCSV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		data, err := h.deps.Services.Exports.VolunteersCSV(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		h.deps.Metrics.ExportacoesTotal.WithLabelValues("csv").Inc()

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="voluntarios.csv"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// ExportHistoricoCSV handles GET /api/v1/voluntarios/{id}/historico/csv
func (h *Handlers) ExportHistoricoCSV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id := chi.URLParam(r, "id")
		data, err := h.deps.Services.Exports.HistoryCSV(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		h.deps.Metrics.ExportacoesTotal.WithLabelValues("csv").Inc()

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="historico-%s.csv"`, id))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// ExportTermoPDF handles GET /api/v1/voluntarios/{id}/termo
func (h *Handlers) ExportTermoPDF() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		data, fileName, err := h.deps.Services.Exports.TermoPDF(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		h.deps.Metrics.ExportacoesTotal.WithLabelValues("pdf").Inc()
		h.deps.Metrics.TermosGeradosTotal.Inc()

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
