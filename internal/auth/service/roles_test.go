package service

import (
	"context"
	"testing"

	"github.com/permitd/permitd/internal/auth/store"
	"github.com/stretchr/testify/require"
)

func TestCreateRoleDuplicate(t *testing.T) {
	svc := &RolesService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := svc.CreateRole(ctx, "Editor")
	require.NoError(t, err)

	_, err = svc.CreateRole(ctx, "Editor")
	require.ErrorIs(t, err, ErrRoleExists)
}

func TestAssignAndRemoveRoleByEmail(t *testing.T) {
	st := newTestStore(t)
	svc := &RolesService{Store: st}
	ctx := context.Background()

	seedUser(t, st, "dev@example.com", true)
	seedRole(t, st, "Developer")

	require.NoError(t, svc.AssignRole(ctx, "dev@example.com", "Developer"))

	// Re-assigning the same role is a no-op, not an error.
	require.NoError(t, svc.AssignRole(ctx, "dev@example.com", "Developer"))

	roles, err := svc.RolesForUser(ctx, "dev@example.com")
	require.NoError(t, err)
	require.Equal(t, []string{"Developer"}, roles)

	require.NoError(t, svc.RemoveRole(ctx, "dev@example.com", "Developer"))

	roles, err = svc.RolesForUser(ctx, "dev@example.com")
	require.NoError(t, err)
	require.Empty(t, roles)

	// Removing a role the user does not hold reports not found.
	err = svc.RemoveRole(ctx, "dev@example.com", "Developer")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAssignRoleUnknownTargets(t *testing.T) {
	st := newTestStore(t)
	svc := &RolesService{Store: st}
	ctx := context.Background()

	seedRole(t, st, "Editor")
	require.ErrorIs(t, svc.AssignRole(ctx, "ghost@example.com", "Editor"), ErrUserNotFound)

	seedUser(t, st, "real@example.com", true)
	require.ErrorIs(t, svc.AssignRole(ctx, "real@example.com", "NoSuchRole"), ErrRoleNotFound)
}

func TestAddPermissionNormalizesMethod(t *testing.T) {
	st := newTestStore(t)
	svc := &RolesService{Store: st}
	ctx := context.Background()

	seedRole(t, st, "Editor")

	p, err := svc.AddPermission(ctx, "Editor", "/api/product/getproducts", "get", "list products")
	require.NoError(t, err)
	require.Equal(t, "GET", p.HTTPMethod)

	listed, err := svc.PermissionsForRole(ctx, "Editor")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "GET", listed[0].HTTPMethod)
}

func TestAddPermissionDuplicateTriple(t *testing.T) {
	st := newTestStore(t)
	svc := &RolesService{Store: st}
	ctx := context.Background()

	seedRole(t, st, "Editor")

	_, err := svc.AddPermission(ctx, "Editor", "/api/product/getproducts", "GET", "")
	require.NoError(t, err)

	// Same triple again, even with a differently-cased method.
	_, err = svc.AddPermission(ctx, "Editor", "/api/product/getproducts", "get", "")
	require.ErrorIs(t, err, ErrPermissionExists)
}

func TestAddPermissionUnknownRole(t *testing.T) {
	svc := &RolesService{Store: newTestStore(t)}

	_, err := svc.AddPermission(context.Background(), "Missing", "/api/x", "GET", "")
	require.ErrorIs(t, err, ErrRoleNotFound)
}

func TestDeletePermission(t *testing.T) {
	st := newTestStore(t)
	svc := &RolesService{Store: st}
	ctx := context.Background()

	seedRole(t, st, "Editor")
	p, err := svc.AddPermission(ctx, "Editor", "/api/product/getproducts", "GET", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeletePermission(ctx, p.ID))
	require.ErrorIs(t, svc.DeletePermission(ctx, p.ID), store.ErrNotFound)
}
