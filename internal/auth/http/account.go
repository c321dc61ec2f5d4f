package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/permitd/permitd/internal/auth/domain"
	"github.com/permitd/permitd/internal/auth/service"
	"github.com/permitd/permitd/pkg/slogx"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type AccountHandler struct {
	AccountService *service.AccountService
}

type signUpRequest struct {
	FullName    string `json:"full_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password" validate:"required"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userInfo struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	UserName string   `json:"user_name"`
	Roles    []string `json:"roles"`
}

type signInData struct {
	Token          string                  `json:"token"`
	User           userInfo                `json:"user"`
	AccessibleAPIs []domain.EndpointMethod `json:"accessible_apis"`
}

// HandleSignUp registers a new account
//
//	@Summary		Register a new user
//	@Description	Creates an account from email and password. The email doubles as the user name. New accounts hold no roles until an administrator assigns one.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		signUpRequest	true	"Registration data"
//	@Success		200		{object}	envelope		"status_code 1 on success, 0 on any validation failure"
//	@Router			/api/account/signup [post].
func (h *AccountHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalid(w, []string{"malformed JSON body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeInvalid(w, validationMessages(err))
		return
	}

	u, err := h.AccountService.SignUp(ctx, service.SignUpData{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	switch {
	case errors.Is(err, service.ErrPasswordTooShort):
		writeFailure(w, "Password must be at least 6 characters long.")
	case errors.Is(err, service.ErrEmailExists):
		writeFailure(w, "Email already exists.")
	case err != nil:
		log.Error("sign-up failed", slog.Any("error", err))
		writeFailure(w, MsgInternal)
	default:
		writeResult(w, "User Registered Successfully", userInfo{
			ID:       u.ID,
			Email:    u.Email,
			FullName: u.FullName,
			UserName: u.UserName,
			Roles:    []string{},
		})
	}
}

// HandleSignIn authenticates and issues a token
//
//	@Summary		Sign in
//	@Description	Verifies credentials and returns a signed access token plus the distinct endpoints the account's roles can reach. Bad credentials return status_code 0 with HTTP 200.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		signInRequest	true	"Credentials"
//	@Success		200		{object}	envelope
//	@Failure		400		{object}	envelope	"Invalid input data"
//	@Router			/api/account/signin [post].
func (h *AccountHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalid(w, []string{"malformed JSON body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeInvalid(w, validationMessages(err))
		return
	}

	res, err := h.AccountService.SignIn(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		writeFailure(w, "Invalid email or password")
	case err != nil:
		log.Error("sign-in failed", slog.Any("error", err))
		writeFailure(w, MsgInternal)
	default:
		writeResult(w, "Login successful", signInData{
			Token: res.Token,
			User: userInfo{
				ID:       res.User.ID,
				Email:    res.User.Email,
				FullName: res.User.FullName,
				UserName: res.User.UserName,
				Roles:    res.Roles,
			},
			AccessibleAPIs: res.AccessibleAPIs,
		})
	}
}

func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Field()+" failed on "+fe.Tag())
	}
	return out
}
