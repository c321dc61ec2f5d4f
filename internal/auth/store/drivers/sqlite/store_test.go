package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/permitd/permitd/internal/auth/domain"
	"github.com/permitd/permitd/internal/auth/store"
	"github.com/permitd/permitd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(context.Background()))
}

func TestUserEmailUniqueCaseInsensitive(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	u := domain.User{ID: idx.New().String(), Email: "a@example.com", UserName: "a@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, st.Users().CreateUser(ctx, u))

	dup := domain.User{ID: idx.New().String(), Email: "A@EXAMPLE.COM", UserName: "a2", PasswordHash: "x", IsActive: true}
	require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	got, err := st.Users().GetUserByEmail(ctx, "A@Example.Com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}

func TestSoftDeletedUserIsInvisible(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	u := domain.User{ID: idx.New().String(), Email: "gone@example.com", UserName: "gone", PasswordHash: "x", IsActive: true}
	require.NoError(t, st.Users().CreateUser(ctx, u))
	require.NoError(t, st.Users().SoftDeleteUser(ctx, u.ID))

	_, err := st.Users().GetUserByID(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Users().GetUserByEmail(ctx, "gone@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, st.Users().SoftDeleteUser(ctx, u.ID), store.ErrNotFound)
}

func TestPermissionUniqueTriple(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	p := domain.Permission{
		ID:         idx.New().String(),
		RoleName:   "Editor",
		Endpoint:   "/api/product/getproducts",
		HTTPMethod: "GET",
		IsActive:   true,
	}
	require.NoError(t, st.Permissions().CreatePermission(ctx, p))

	p2 := p
	p2.ID = idx.New().String()
	require.ErrorIs(t, st.Permissions().CreatePermission(ctx, p2), store.ErrAlreadyExists)

	// Endpoints match case-insensitively at lookup, so a re-cased
	// endpoint is the same grant and must be rejected too.
	recased := p
	recased.ID = idx.New().String()
	recased.Endpoint = "/API/Product/GetProducts"
	require.ErrorIs(t, st.Permissions().CreatePermission(ctx, recased), store.ErrAlreadyExists)

	// A different method for the same endpoint is a distinct row.
	p3 := p
	p3.ID = idx.New().String()
	p3.HTTPMethod = "POST"
	require.NoError(t, st.Permissions().CreatePermission(ctx, p3))
}

func TestHasExactAndWildcard(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	mustCreate := func(endpoint, method string) {
		require.NoError(t, st.Permissions().CreatePermission(ctx, domain.Permission{
			ID:         idx.New().String(),
			RoleName:   "Editor",
			Endpoint:   endpoint,
			HTTPMethod: method,
			IsActive:   true,
		}))
	}
	mustCreate("/api/product/getproducts", "GET")
	mustCreate("/api/articles/*", "POST")

	ok, err := st.Permissions().HasExact(ctx, []string{"Editor"}, "/API/Product/GetProducts", "get")
	require.NoError(t, err)
	require.True(t, ok, "exact match is case-insensitive")

	ok, err = st.Permissions().HasExact(ctx, []string{"Viewer"}, "/api/product/getproducts", "GET")
	require.NoError(t, err)
	require.False(t, ok, "role must be in the caller's set")

	ok, err = st.Permissions().HasWildcard(ctx, []string{"Editor"}, "/api/articles/5/publish", "POST")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = st.Permissions().HasWildcard(ctx, []string{"Editor"}, "/api/other/5", "POST")
	require.NoError(t, err)
	require.False(t, ok)

	// Empty role sets can never match anything.
	ok, err = st.Permissions().HasExact(ctx, nil, "/api/product/getproducts", "GET")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestListEndpointsForRolesIsDistinct(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	for _, role := range []string{"Editor", "Viewer"} {
		require.NoError(t, st.Permissions().CreatePermission(ctx, domain.Permission{
			ID:         idx.New().String(),
			RoleName:   role,
			Endpoint:   "/api/product/getproducts",
			HTTPMethod: "GET",
			IsActive:   true,
		}))
	}

	pairs, err := st.Permissions().ListEndpointsForRoles(ctx, []string{"Editor", "Viewer"})
	require.NoError(t, err)
	require.Equal(t, []domain.EndpointMethod{
		{Endpoint: "/api/product/getproducts", HTTPMethod: "GET"},
	}, pairs)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	errBoom := errors.New("boom")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Roles().CreateRole(ctx, domain.Role{ID: idx.New().String(), Name: "Ghost"}); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	_, err = st.Roles().GetRoleByName(ctx, "Ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
}
