package auth

import (
	"strings"

	"ellp/voluntariado/internal/constants"
)

// Operation names a guarded capability of the API.
type Operation string

const (
	OpVoluntarioCreate   Operation = "voluntario:create"
	OpVoluntarioRead     Operation = "voluntario:read"
	OpVoluntarioUpdate   Operation = "voluntario:update"
	OpVoluntarioDelete   Operation = "voluntario:delete"
	OpVoluntarioAssociar Operation = "voluntario:associar"
	OpVoluntarioExport   Operation = "voluntario:export"

	OpOficinaCreate Operation = "oficina:create"
	OpOficinaRead   Operation = "oficina:read"
	OpOficinaUpdate Operation = "oficina:update"
	OpOficinaDelete Operation = "oficina:delete"

	OpDashboardRead Operation = "dashboard:read"
)

// policy is the single source of truth for authorization. Each operation
// lists its allowed roles explicitly; admin is never implied.
var policy = map[Operation][]constants.Role{
	OpVoluntarioCreate:   {constants.RoleAdmin, constants.RoleCoordenador},
	OpVoluntarioRead:     {constants.RoleAdmin, constants.RoleCoordenador, constants.RoleVisitante},
	OpVoluntarioUpdate:   {constants.RoleAdmin, constants.RoleCoordenador},
	OpVoluntarioDelete:   {constants.RoleAdmin},
	OpVoluntarioAssociar: {constants.RoleAdmin, constants.RoleCoordenador},
	OpVoluntarioExport:   {constants.RoleAdmin, constants.RoleCoordenador, constants.RoleVisitante},

	OpOficinaCreate: {constants.RoleAdmin, constants.RoleCoordenador},
	OpOficinaRead:   {constants.RoleAdmin, constants.RoleCoordenador, constants.RoleVisitante},
	OpOficinaUpdate: {constants.RoleAdmin, constants.RoleCoordenador},
	OpOficinaDelete: {constants.RoleAdmin},

	OpDashboardRead: {constants.RoleAdmin, constants.RoleCoordenador},
}

// RequiredRoles returns the allow-list declared for an operation. Unknown
// operations return nil, which Allowed treats as deny-all.
func RequiredRoles(op Operation) []constants.Role {
	return policy[op]
}

// Allowed is a pure function of the role and the allow-list. Role names
// compare case-insensitively.
func Allowed(role string, required []constants.Role) bool {
	for _, r := range required {
		if strings.EqualFold(role, string(r)) {
			return true
		}
	}
	return false
}
