package service

import (
	"context"
	"errors"
	"strings"

	"github.com/permitd/permitd/internal/auth/domain"
	"github.com/permitd/permitd/internal/auth/store"
	"github.com/permitd/permitd/pkg/idx"
)

var (
	ErrRoleExists       = errors.New("role_already_exists")
	ErrRoleNotFound     = errors.New("role_not_found")
	ErrUserNotFound     = errors.New("user_not_found")
	ErrPermissionExists = errors.New("permission_already_exists")
)

// RolesService is the administrative surface for roles, role
// assignments, and the permission table. Edits here take effect on the
// next request; nothing is cached.
type RolesService struct {
	Store store.Store
}

// CreateRole adds a new role by name.
func (s *RolesService) CreateRole(ctx context.Context, name string) (domain.Role, error) {
	r := domain.Role{
		ID:   idx.New().String(),
		Name: strings.TrimSpace(name),
	}
	if err := s.Store.Roles().CreateRole(ctx, r); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Role{}, ErrRoleExists
		}
		return domain.Role{}, err
	}
	return r, nil
}

// ListRoles returns all roles in the system.
func (s *RolesService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListAll(ctx)
}

// AssignRole grants a role to the user with the given email. Granting a
// role the user already holds is a no-op.
func (s *RolesService) AssignRole(ctx context.Context, email, roleName string) error {
	u, role, err := s.resolveUserAndRole(ctx, email, roleName)
	if err != nil {
		return err
	}
	return s.Store.Roles().AddToRole(ctx, u.ID, role.ID)
}

// RemoveRole revokes a role from the user with the given email.
func (s *RolesService) RemoveRole(ctx context.Context, email, roleName string) error {
	u, role, err := s.resolveUserAndRole(ctx, email, roleName)
	if err != nil {
		return err
	}
	return s.Store.Roles().RemoveFromRole(ctx, u.ID, role.ID)
}

// RolesForUser lists the role names currently held by the user with the
// given email.
func (s *RolesService) RolesForUser(ctx context.Context, email string) ([]string, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.Store.Roles().RolesForUser(ctx, u.ID)
}

// AddPermission inserts a permission row for a role. The method is
// normalized to upper case on write so lookups can compare
// case-insensitively from a known shape. A duplicate (role, endpoint,
// method) triple is rejected.
func (s *RolesService) AddPermission(
	ctx context.Context,
	roleName, endpoint, method, description string,
) (domain.Permission, error) {
	if _, err := s.Store.Roles().GetRoleByName(ctx, roleName); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Permission{}, ErrRoleNotFound
		}
		return domain.Permission{}, err
	}

	p := domain.Permission{
		ID:          idx.New().String(),
		RoleName:    roleName,
		Endpoint:    strings.TrimSpace(endpoint),
		HTTPMethod:  strings.ToUpper(strings.TrimSpace(method)),
		Description: strings.TrimSpace(description),
		IsActive:    true,
	}
	if err := s.Store.Permissions().CreatePermission(ctx, p); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Permission{}, ErrPermissionExists
		}
		return domain.Permission{}, err
	}
	return p, nil
}

// DeletePermission removes a permission row by id. The revocation is
// effective immediately since every request re-reads the table.
func (s *RolesService) DeletePermission(ctx context.Context, id string) error {
	return s.Store.Permissions().DeletePermission(ctx, id)
}

// PermissionsForRole lists all permission rows attached to a role.
func (s *RolesService) PermissionsForRole(ctx context.Context, roleName string) ([]domain.Permission, error) {
	return s.Store.Permissions().ListByRole(ctx, roleName)
}

func (s *RolesService) resolveUserAndRole(
	ctx context.Context,
	email, roleName string,
) (domain.User, domain.Role, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.Role{}, ErrUserNotFound
		}
		return domain.User{}, domain.Role{}, err
	}
	role, err := s.Store.Roles().GetRoleByName(ctx, roleName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.Role{}, ErrRoleNotFound
		}
		return domain.User{}, domain.Role{}, err
	}
	return u, role, nil
}
