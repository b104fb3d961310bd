package api

import (
	"errors"
	"net/http"
	"time"

	"ellp/voluntariado/internal/apperrors"
	"ellp/voluntariado/internal/auth"
	"ellp/voluntariado/internal/common"
	"ellp/voluntariado/internal/constants"
	"ellp/voluntariado/internal/models/dtos"
)

// Login handles POST /api/v1/auth/login
func (h *Handlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		resp, err := h.deps.Services.Auth.Login(r.Context(), req)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) {
				reason := "invalid_credentials"
				var appErr *apperrors.AppError
				if errors.As(err, &appErr) && appErr.Message == constants.MsgUserDisabled {
					reason = "user_disabled"
				}
				h.deps.Metrics.LoginFailuresTotal.WithLabelValues(reason).Inc()
			}
			common.RespondError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Login realizado com sucesso", resp)
	}
}

// Register handles POST /api/v1/auth/register
func (h *Handlers) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RegisterRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		user, err := h.deps.Services.Auth.Register(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Usuário registrado com sucesso", user, http.StatusCreated)
	}
}

// Me handles GET /api/v1/auth/me
func (h *Handlers) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, apperrors.Unauthorized(constants.MsgTokenMissing))
			return
		}

		me, err := h.deps.Services.Auth.Me(r.Context(), claims.UserID())
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Perfil carregado", me)
	}
}

// UpdateMe handles PUT /api/v1/auth/me
func (h *Handlers) UpdateMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, apperrors.Unauthorized(constants.MsgTokenMissing))
			return
		}

		var req dtos.UpdateMeRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		user, err := h.deps.Services.Auth.UpdateMe(r.Context(), claims.UserID(), req)
		if err != nil {
			common.RespondError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Perfil atualizado", user)
	}
}
