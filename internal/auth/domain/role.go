package domain

import "time"

// Privileged role names. Callers holding either bypass the permission
// table entirely.
const (
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "SuperAdmin"
)

type Role struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"` // unique
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
