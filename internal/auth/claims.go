package auth

import (
	"context"

	"ellp/voluntariado/internal/constants"
)

// UserClaims is what the rest of the request pipeline sees after
// authentication. The role here is always the one re-resolved from the
// store, never the one embedded in the token.
type UserClaims interface {
	UserID() string
	Role() string
	Source() string
}

type SubjectClaims struct {
	UserUUID  string
	RoleValue constants.Role
}

func (c *SubjectClaims) UserID() string { return c.UserUUID }
func (c *SubjectClaims) Role() string   { return string(c.RoleValue) }
func (c *SubjectClaims) Source() string { return "JWT" }

type contextKey string

var userClaimsKey contextKey = "user_claims"

func SetUserClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

func GetUserClaims(ctx context.Context) UserClaims {
	val := ctx.Value(userClaimsKey)
	if claims, ok := val.(UserClaims); ok {
		return claims
	}
	return nil
}
