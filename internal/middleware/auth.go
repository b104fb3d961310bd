package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"ellp/voluntariado/internal/apperrors"
	"ellp/voluntariado/internal/auth"
	"ellp/voluntariado/internal/common"
	"ellp/voluntariado/internal/constants"
	"ellp/voluntariado/internal/db/repositories"
)

// AuthMiddleware authenticates the bearer token and loads the subject from
// the store. The token only identifies; role and active state are always
// re-read so a role change or deactivation takes effect on the next request.
func AuthMiddleware(userRepo *repositories.UserRepository, issuer *auth.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				common.RespondError(w, initTime, apperrors.Unauthorized(constants.MsgTokenMissing))
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				common.RespondError(w, initTime, apperrors.Unauthorized(constants.MsgTokenMalformed))
				return
			}

			tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			claims, err := issuer.Validate(tokenString)
			if err != nil {
				msg := constants.MsgTokenInvalid
				if errors.Is(err, auth.ErrTokenExpired) {
					msg = constants.MsgTokenExpired
				}
				common.RespondError(w, initTime, apperrors.Unauthorized(msg))
				return
			}

			user, err := userRepo.GetByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					common.RespondError(w, initTime, apperrors.Unauthorized(constants.MsgUserNotFound))
					return
				}
				common.RespondError(w, initTime, err)
				return
			}

			if !user.Ativo {
				common.RespondError(w, initTime, apperrors.Unauthorized(constants.MsgUserDisabled))
				return
			}

			subject := &auth.SubjectClaims{
				UserUUID:  user.ID,
				RoleValue: user.Role,
			}

			ctx := auth.SetUserClaims(r.Context(), subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
