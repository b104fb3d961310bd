package api

import (
	"net/http"
	"time"

	"ellp/voluntariado/internal/common"
)

// Dashboard handles GET /api/v1/dashboard
func (h *Handlers) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		resp, err := h.deps.Services.Dashboard.Indicators(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		h.deps.Metrics.VoluntariosAtivos.Set(float64(resp.TotalVoluntariosAtivos))

		common.RespondSuccess(w, initTime, "Indicadores carregados", resp)
	}
}
