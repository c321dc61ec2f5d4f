package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/permitd/permitd/internal/auth/domain"
	"github.com/permitd/permitd/internal/auth/store"
	"github.com/permitd/permitd/pkg/slogx"
)

// Denial messages, verbatim on the wire.
const (
	MsgAuthRequired  = "Unauthorized: Authentication required."
	MsgUserIDMissing = "Unauthorized: User ID not found in token."
	MsgUserNotFound  = "Unauthorized: User not found."
	MsgForbidden     = "Forbidden: You do not have permission to access this resource."
)

// Decision is the terminal outcome of an authorization check. Either the
// request passes through (Allowed, with the resolved identity attached)
// or it stops with a status and message.
type Decision struct {
	Allowed bool
	Status  int
	Message string

	UserID string
	Roles  []string
}

func allowDecision(userID string, roles []string) Decision {
	return Decision{Allowed: true, UserID: userID, Roles: roles}
}

func denyDecision(status int, msg string) Decision {
	return Decision{Status: status, Message: msg}
}

// AuthzService decides whether an authenticated user may touch a given
// path and method. Checks run strictly in order and short-circuit on the
// first conclusive outcome. Roles and permissions are always read live
// from the store, so a revoked grant takes effect on the very next
// request.
type AuthzService struct {
	Store store.Store
}

// Authorize runs the per-request checks for a verified token subject.
// Store failures resolve to a denial, never a pass-through.
func (s *AuthzService) Authorize(ctx context.Context, userID, path, method string) Decision {
	l := slogx.FromContext(ctx)

	if userID == "" {
		return denyDecision(http.StatusUnauthorized, MsgUserIDMissing)
	}

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			l.Error("authorize: user lookup failed", slog.Any("error", err))
		}
		return denyDecision(http.StatusUnauthorized, MsgUserNotFound)
	}
	if !u.IsActive {
		return denyDecision(http.StatusUnauthorized, MsgUserNotFound)
	}

	roles, err := s.Store.Roles().RolesForUser(ctx, u.ID)
	if err != nil {
		l.Error("authorize: role lookup failed", slog.Any("error", err))
		return denyDecision(http.StatusForbidden, MsgForbidden)
	}

	// Administrators bypass the permission table entirely.
	if slices.Contains(roles, domain.RoleAdmin) || slices.Contains(roles, domain.RoleSuperAdmin) {
		return allowDecision(u.ID, roles)
	}

	ok, err := s.Store.Permissions().HasExact(ctx, roles, path, method)
	if err != nil {
		l.Error("authorize: exact permission lookup failed", slog.Any("error", err))
		return denyDecision(http.StatusForbidden, MsgForbidden)
	}
	if ok {
		return allowDecision(u.ID, roles)
	}

	ok, err = s.Store.Permissions().HasWildcard(ctx, roles, path, method)
	if err != nil {
		l.Error("authorize: wildcard permission lookup failed", slog.Any("error", err))
		return denyDecision(http.StatusForbidden, MsgForbidden)
	}
	if ok {
		return allowDecision(u.ID, roles)
	}

	return denyDecision(http.StatusForbidden, MsgForbidden)
}
