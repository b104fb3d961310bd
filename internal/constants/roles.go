package constants

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Role mirrors the closed role set of the platform.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleCoordenador Role = "coordenador"
	RoleVisitante   Role = "visitante"
)

// String makes Role convenient for fmt and logs.
func (r Role) String() string { return string(r) }

// ParseRole normalizes arbitrary input into a member of the role set.
// Comparison is case-insensitive; unknown values are rejected.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleCoordenador:
		return RoleCoordenador, true
	case RoleVisitante:
		return RoleVisitante, true
	}
	return "", false
}

/* ---------- DB adapters so gorm (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *Role) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	default:
		return fmt.Errorf("Role: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r Role) Value() (driver.Value, error) { return string(r), nil }
