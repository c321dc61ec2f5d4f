package domain

import "time"

// WildcardSuffix is the two-character marker that turns an endpoint
// pattern into a prefix grant, e.g. "/api/articles/*".
const WildcardSuffix = "/*"

// Permission is one row of the dynamic (role, endpoint, method) table.
// The triple (RoleName, Endpoint, HTTPMethod) is unique; duplicates are
// rejected at write time by the database constraint.
type Permission struct {
	ID          string    `json:"id"`
	RoleName    string    `json:"role_name"`
	Endpoint    string    `json:"endpoint"`    // exact path or a pattern ending in WildcardSuffix
	HTTPMethod  string    `json:"http_method"` // normalized to upper-case on write
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	IsDeleted   bool      `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EndpointMethod is the projection returned to clients at sign-in so the
// UI can discover which APIs the caller's roles reach.
type EndpointMethod struct {
	Endpoint   string `json:"endpoint"`
	HTTPMethod string `json:"http_method"`
}
