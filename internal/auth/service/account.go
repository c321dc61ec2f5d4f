package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/permitd/permitd/internal/auth/domain"
	"github.com/permitd/permitd/internal/auth/store"
	"github.com/permitd/permitd/pkg/cryptox"
	"github.com/permitd/permitd/pkg/idx"
	"github.com/permitd/permitd/pkg/slogx"
)

// MinPasswordLength is the minimum accepted sign-up password length.
const MinPasswordLength = 6

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailExists        = errors.New("email_already_exists")
	ErrPasswordTooShort   = errors.New("password_too_short")
)

type AccountService struct {
	Store  store.Store
	Tokens *TokenService
}

type SignUpData struct {
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
}

// SignInResult carries everything the sign-in response needs: the signed
// token, the user, their current roles, and the distinct endpoints those
// roles can reach.
type SignInResult struct {
	Token          string
	User           domain.User
	Roles          []string
	AccessibleAPIs []domain.EndpointMethod
}

// SignUp registers a new user. The email doubles as the login user name.
// New users hold no roles until an administrator assigns one.
func (s *AccountService) SignUp(ctx context.Context, data SignUpData) (domain.User, error) {
	l := slogx.FromContext(ctx)

	if len(data.Password) < MinPasswordLength {
		return domain.User{}, ErrPasswordTooShort
	}

	email := strings.TrimSpace(data.Email)

	hash, err := cryptox.HashPassword(data.Password)
	if err != nil {
		l.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		UserName:     email,
		FullName:     strings.TrimSpace(data.FullName),
		PhoneNumber:  strings.TrimSpace(data.PhoneNumber),
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailExists
		}
		l.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	l.Info("user registered", slog.String("user_id", u.ID))
	return u, nil
}

// SignIn verifies credentials and issues an access token. Lookup misses
// and bad passwords collapse into the same error so responses don't leak
// which part failed.
func (s *AccountService) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("sign-in password verification failed", slog.String("user_id", u.ID))
		return nil, ErrInvalidCredentials
	}

	roles, err := s.Store.Roles().RolesForUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	token, err := s.Tokens.Issue(u, roles)
	if err != nil {
		l.Error("failed to sign access token", slog.Any("error", err))
		return nil, err
	}

	apis, err := s.Store.Permissions().ListEndpointsForRoles(ctx, roles)
	if err != nil {
		return nil, err
	}

	return &SignInResult{
		Token:          token,
		User:           u,
		Roles:          roles,
		AccessibleAPIs: apis,
	}, nil
}
