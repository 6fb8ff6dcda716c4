package domain

import (
	"fmt"
	"strings"
)

// Role is the access-control key stored on a User and checked by the
// authorization filter. The numeric values are stable and persisted.
type Role int

const (
	RoleAdmin Role = 1
	RoleUser  Role = 2
	RoleHR    Role = 3
)

// AllRoles lists every role in id order.
var AllRoles = []Role{RoleAdmin, RoleUser, RoleHR}

// String returns the role name as stored in the roles table.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleUser:
		return "user"
	case RoleHR:
		return "hr"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser || r == RoleHR
}

// ParseRole accepts either a role name or its numeric id.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin", "1":
		return RoleAdmin, nil
	case "user", "2":
		return RoleUser, nil
	case "hr", "3":
		return RoleHR, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// RoleInfo is the listing shape of a role.
type RoleInfo struct {
	ID   Role   `json:"id"`
	Name string `json:"role"`
}

// RoleInfos returns the listing of every known role.
func RoleInfos() []RoleInfo {
	out := make([]RoleInfo, 0, len(AllRoles))
	for _, r := range AllRoles {
		out = append(out, RoleInfo{ID: r, Name: r.String()})
	}
	return out
}
