package api

import (
	"encoding/json"
	"net/http"

	"ellp/voluntariado/internal/apperrors"
)

// Handlers groups all HTTP handlers over the shared dependencies.
type Handlers struct {
	deps *Dependencies
}

func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{deps: deps}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.Validation("body", "JSON inválido")
	}
	return nil
}
