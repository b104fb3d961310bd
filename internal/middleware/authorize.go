package middleware

import (
	"net/http"
	"time"

	"ellp/voluntariado/internal/apperrors"
	"ellp/voluntariado/internal/auth"
	"ellp/voluntariado/internal/common"
	"ellp/voluntariado/internal/constants"
)

// RequireOperation gates a route on the declared allow-list for one
// operation. It runs after AuthMiddleware; a request without claims is a
// pipeline bug and is denied.
func RequireOperation(op auth.Operation) func(http.Handler) http.Handler {
	required := auth.RequiredRoles(op)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			claims := auth.GetUserClaims(r.Context())
			if claims == nil {
				common.RespondError(w, initTime, apperrors.Unauthorized(constants.MsgTokenMissing))
				return
			}

			if !auth.Allowed(claims.Role(), required) {
				common.RespondError(w, initTime, apperrors.Forbidden(constants.MsgForbidden))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
