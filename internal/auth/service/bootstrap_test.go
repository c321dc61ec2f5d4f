package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/permitd/permitd/internal/auth/domain"
	"github.com/permitd/permitd/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestEnsureDefaultsSeedsAdmin(t *testing.T) {
	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))
	st := newTestStore(t)
	svc := &BootstrapService{Store: st}
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaults(ctx))

	u, err := st.Users().GetUserByEmail(ctx, DefaultAdminEmail)
	require.NoError(t, err)
	require.True(t, u.IsActive)
	require.NoError(t, cryptox.VerifyPassword(DefaultAdminPassword, u.PasswordHash))

	roles, err := st.Roles().RolesForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []string{domain.RoleAdmin}, roles)
}

func TestEnsureDefaultsIsIdempotent(t *testing.T) {
	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))
	st := newTestStore(t)
	svc := &BootstrapService{Store: st}
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaults(ctx))
	before, err := st.Users().GetUserByEmail(ctx, DefaultAdminEmail)
	require.NoError(t, err)

	// A second run must not duplicate rows or rewrite the password hash.
	require.NoError(t, svc.EnsureDefaults(ctx))
	after, err := st.Users().GetUserByEmail(ctx, DefaultAdminEmail)
	require.NoError(t, err)
	require.Equal(t, before.ID, after.ID)
	require.Equal(t, before.PasswordHash, after.PasswordHash)

	all, err := st.Roles().ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestEnsureDefaultsHonorsConfiguredCredentials(t *testing.T) {
	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))
	st := newTestStore(t)
	svc := &BootstrapService{
		Store:         st,
		AdminEmail:    "ops@internal.example",
		AdminPassword: "OverrideMe1",
	}
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaults(ctx))

	u, err := st.Users().GetUserByEmail(ctx, "ops@internal.example")
	require.NoError(t, err)
	require.NoError(t, cryptox.VerifyPassword("OverrideMe1", u.PasswordHash))
}
