package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/permitd/permitd/internal/auth/domain"
	"github.com/permitd/permitd/pkg/cryptox"
	"github.com/permitd/permitd/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	signer, err := jwtx.NewSignerHS256([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	return &TokenService{
		Signer:    signer,
		Issuer:    "permitd-test",
		AccessTTL: time.Hour,
	}
}

func newAccountService(t *testing.T) *AccountService {
	t.Helper()
	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))
	return &AccountService{
		Store:  newTestStore(t),
		Tokens: newTestTokenService(t),
	}
}

func TestSignUpRejectsShortPassword(t *testing.T) {
	svc := newAccountService(t)

	_, err := svc.SignUp(context.Background(), SignUpData{
		FullName: "Short Pass",
		Email:    "short@example.com",
		Password: "12345",
	})
	require.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	data := SignUpData{FullName: "First", Email: "dupe@example.com", Password: "secret1"}
	_, err := svc.SignUp(ctx, data)
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, data)
	require.ErrorIs(t, err, ErrEmailExists)

	// Email uniqueness is case-insensitive.
	data.Email = "DUPE@example.com"
	_, err = svc.SignUp(ctx, data)
	require.ErrorIs(t, err, ErrEmailExists)
}

func TestSignUpThenSignIn(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	u, err := svc.SignUp(ctx, SignUpData{
		FullName:    "Alice Example",
		Email:       "alice@example.com",
		PhoneNumber: "555-0100",
		Password:    "Str0ngPass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, "alice@example.com", u.UserName, "email doubles as user name")

	res, err := svc.SignIn(ctx, "alice@example.com", "Str0ngPass")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, u.ID, res.User.ID)
	require.Empty(t, res.Roles, "new users hold no roles")
	require.Empty(t, res.AccessibleAPIs)
}

func TestSignInBadCredentials(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, SignUpData{FullName: "Bob", Email: "bob@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, "bob@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, "nobody@example.com", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInIncludesRolesAndAccessibleAPIs(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	u, err := svc.SignUp(ctx, SignUpData{FullName: "Carol", Email: "carol@example.com", Password: "secret1"})
	require.NoError(t, err)

	role := seedRole(t, svc.Store, "Editor")
	grantRole(t, svc.Store, u, role)
	seedPermission(t, svc.Store, "Editor", "/api/product/getproducts", "GET")
	seedPermission(t, svc.Store, "Editor", "/api/product/addproduct", "POST")

	res, err := svc.SignIn(ctx, "carol@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, []string{"Editor"}, res.Roles)
	require.ElementsMatch(t, []domain.EndpointMethod{
		{Endpoint: "/api/product/getproducts", HTTPMethod: "GET"},
		{Endpoint: "/api/product/addproduct", HTTPMethod: "POST"},
	}, res.AccessibleAPIs)

	// The issued token carries the role snapshot.
	verifier := jwtx.NewVerifierHS256([]byte("0123456789abcdef0123456789abcdef"), "permitd-test", nil)
	claims, err := verifier.Verify(res.Token)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.Subject)
	require.Equal(t, []string{"Editor"}, claims.Roles)
}
