package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/permitd/permitd/internal/auth/domain"
	"github.com/permitd/permitd/internal/auth/store"
	"github.com/permitd/permitd/internal/auth/store/drivers/sqlite"
	"github.com/permitd/permitd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st store.Store, email string, active bool) domain.User {
	t.Helper()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		UserName:     email,
		FullName:     "Test User",
		PasswordHash: "x",
		IsActive:     active,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func seedRole(t *testing.T, st store.Store, name string) domain.Role {
	t.Helper()
	r := domain.Role{ID: idx.New().String(), Name: name}
	require.NoError(t, st.Roles().CreateRole(context.Background(), r))
	return r
}

func grantRole(t *testing.T, st store.Store, u domain.User, r domain.Role) {
	t.Helper()
	require.NoError(t, st.Roles().AddToRole(context.Background(), u.ID, r.ID))
}

func seedPermission(t *testing.T, st store.Store, roleName, endpoint, method string) domain.Permission {
	t.Helper()
	p := domain.Permission{
		ID:         idx.New().String(),
		RoleName:   roleName,
		Endpoint:   endpoint,
		HTTPMethod: method,
		IsActive:   true,
	}
	require.NoError(t, st.Permissions().CreatePermission(context.Background(), p))
	return p
}

func TestAuthorizeMissingUserID(t *testing.T) {
	svc := &AuthzService{Store: newTestStore(t)}

	d := svc.Authorize(context.Background(), "", "/api/product/getproducts", "GET")
	require.False(t, d.Allowed)
	require.Equal(t, http.StatusUnauthorized, d.Status)
	require.Equal(t, MsgUserIDMissing, d.Message)
}

func TestAuthorizeUnknownUser(t *testing.T) {
	svc := &AuthzService{Store: newTestStore(t)}

	d := svc.Authorize(context.Background(), idx.New().String(), "/api/product/getproducts", "GET")
	require.False(t, d.Allowed)
	require.Equal(t, http.StatusUnauthorized, d.Status)
	require.Equal(t, MsgUserNotFound, d.Message)
}

func TestAuthorizeInactiveUserDenied(t *testing.T) {
	st := newTestStore(t)
	svc := &AuthzService{Store: st}

	u := seedUser(t, st, "inactive@example.com", false)

	d := svc.Authorize(context.Background(), u.ID, "/api/product/getproducts", "GET")
	require.False(t, d.Allowed)
	require.Equal(t, http.StatusUnauthorized, d.Status)
	require.Equal(t, MsgUserNotFound, d.Message)
}

func TestAuthorizeAdminBypassesPermissionTable(t *testing.T) {
	st := newTestStore(t)
	svc := &AuthzService{Store: st}

	u := seedUser(t, st, "root@example.com", true)
	grantRole(t, st, u, seedRole(t, st, domain.RoleAdmin))

	// No permission rows exist at all; the role alone is enough.
	d := svc.Authorize(context.Background(), u.ID, "/api/anything/at/all", "DELETE")
	require.True(t, d.Allowed)
	require.Equal(t, u.ID, d.UserID)
	require.Contains(t, d.Roles, domain.RoleAdmin)
}

func TestAuthorizeExactMatch(t *testing.T) {
	st := newTestStore(t)
	svc := &AuthzService{Store: st}

	u := seedUser(t, st, "editor@example.com", true)
	grantRole(t, st, u, seedRole(t, st, "Editor"))
	seedPermission(t, st, "Editor", "/api/product/getproducts", "GET")

	ctx := context.Background()

	d := svc.Authorize(ctx, u.ID, "/api/product/getproducts", "GET")
	require.True(t, d.Allowed)

	// Path and method compare case-insensitively.
	d = svc.Authorize(ctx, u.ID, "/API/Product/GetProducts", "get")
	require.True(t, d.Allowed)

	// Same path with a different method is not covered.
	d = svc.Authorize(ctx, u.ID, "/api/product/getproducts", "POST")
	require.False(t, d.Allowed)
	require.Equal(t, http.StatusForbidden, d.Status)
	require.Equal(t, MsgForbidden, d.Message)
}

func TestAuthorizeWildcardMatch(t *testing.T) {
	st := newTestStore(t)
	svc := &AuthzService{Store: st}

	u := seedUser(t, st, "author@example.com", true)
	grantRole(t, st, u, seedRole(t, st, "Author"))
	seedPermission(t, st, "Author", "/api/articles/*", "POST")

	ctx := context.Background()

	d := svc.Authorize(ctx, u.ID, "/api/articles/5/publish", "POST")
	require.True(t, d.Allowed)

	d = svc.Authorize(ctx, u.ID, "/api/articles/5/publish", "GET")
	require.False(t, d.Allowed, "wildcard is method-specific")

	d = svc.Authorize(ctx, u.ID, "/api/other/5", "POST")
	require.False(t, d.Allowed, "wildcard prefix must match")
}

func TestAuthorizeNoRolesDenied(t *testing.T) {
	st := newTestStore(t)
	svc := &AuthzService{Store: st}

	u := seedUser(t, st, "nobody@example.com", true)

	d := svc.Authorize(context.Background(), u.ID, "/api/product/getproducts", "GET")
	require.False(t, d.Allowed)
	require.Equal(t, http.StatusForbidden, d.Status)
}

func TestAuthorizeRevocationIsImmediate(t *testing.T) {
	st := newTestStore(t)
	svc := &AuthzService{Store: st}

	u := seedUser(t, st, "temp@example.com", true)
	grantRole(t, st, u, seedRole(t, st, "Temp"))
	p := seedPermission(t, st, "Temp", "/api/product/getproducts", "GET")

	ctx := context.Background()

	require.True(t, svc.Authorize(ctx, u.ID, "/api/product/getproducts", "GET").Allowed)

	require.NoError(t, st.Permissions().DeletePermission(ctx, p.ID))

	d := svc.Authorize(ctx, u.ID, "/api/product/getproducts", "GET")
	require.False(t, d.Allowed, "deleted grant must stop working on the next request")
}
