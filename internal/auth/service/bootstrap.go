package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/permitd/permitd/internal/auth/domain"
	"github.com/permitd/permitd/internal/auth/store"
	"github.com/permitd/permitd/pkg/cryptox"
	"github.com/permitd/permitd/pkg/idx"
	"github.com/permitd/permitd/pkg/slogx"
)

// Default administrator credentials seeded on first start. The password
// is a documented development default; deployments override it through
// configuration.
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "Admin@123"
)

// BootstrapService seeds the Admin role and the initial administrator
// account. It runs on every start and is idempotent, so restarts never
// duplicate rows or clobber an existing admin's password.
type BootstrapService struct {
	Store         store.Store
	AdminEmail    string
	AdminPassword string
}

func (s *BootstrapService) EnsureDefaults(ctx context.Context) error {
	l := slogx.FromContext(ctx)

	email := s.AdminEmail
	if email == "" {
		email = DefaultAdminEmail
	}
	password := s.AdminPassword
	if password == "" {
		password = DefaultAdminPassword
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		role, err := tx.Roles().GetRoleByName(ctx, domain.RoleAdmin)
		if errors.Is(err, store.ErrNotFound) {
			role = domain.Role{ID: idx.New().String(), Name: domain.RoleAdmin}
			if err := tx.Roles().CreateRole(ctx, role); err != nil {
				return err
			}
			l.Info("seeded admin role", slog.String("role_id", role.ID))
		} else if err != nil {
			return err
		}

		admin, err := tx.Users().GetUserByEmail(ctx, email)
		if errors.Is(err, store.ErrNotFound) {
			hash, err := cryptox.HashPassword(password)
			if err != nil {
				return err
			}
			admin = domain.User{
				ID:           idx.New().String(),
				Email:        email,
				UserName:     email,
				FullName:     "System Administrator",
				PasswordHash: hash,
				IsActive:     true,
			}
			if err := tx.Users().CreateUser(ctx, admin); err != nil {
				return err
			}
			l.Info("seeded admin user", slog.String("user_id", admin.ID))
		} else if err != nil {
			return err
		}

		// AddToRole is a no-op when the assignment already exists.
		return tx.Roles().AddToRole(ctx, admin.ID, role.ID)
	})
}
