package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/dungeonkeeper/internal/client/models"
	"github.com/dmitrijs2005/dungeonkeeper/internal/client/session"
	"github.com/dmitrijs2005/dungeonkeeper/internal/common"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

var (
	// ErrInvalidCredentials is returned by SignIn whenever the backend refuses
	// or fails the credential exchange. The underlying cause is wrapped.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordMismatch   = fmt.Errorf("%w: passwords do not match", common.ErrorValidation)
	ErrPasswordTooShort   = fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, MinPasswordLength)
)

// AuthAPI is the subset of the backend client used for authentication.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, in models.UserCreate) (models.UserBase, error)
}

// SessionManager is the subset of the session store driven by sign-in/out.
type SessionManager interface {
	Login(ctx context.Context, credential string) (session.Identity, error)
	Logout(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - SignIn: exchange username/password for a credential and start a session.
//   - SignUp: validate the form locally, then create the account.
//   - SignOut: end the session.
type AuthService interface {
	SignIn(ctx context.Context, username, password string) (session.Identity, error)
	SignUp(ctx context.Context, form SignUpForm) (models.UserBase, error)
	SignOut(ctx context.Context) error
}

// SignUpForm is what the register command collects.
type SignUpForm struct {
	Username string
	Email    string
	Password string
	Confirm  string
}

type authService struct {
	api   AuthAPI
	store SessionManager
}

// NewAuthService constructs an AuthService bound to the API client and store.
func NewAuthService(api AuthAPI, store SessionManager) AuthService {
	return &authService{api: api, store: store}
}

// SignIn leaves the session untouched when the backend call fails. A
// credential the backend issued but the client cannot decode is reported
// as is, since retrying with other credentials will not help.
func (a *authService) SignIn(ctx context.Context, username, password string) (session.Identity, error) {
	cred, err := a.api.Login(ctx, username, password)
	if err != nil {
		return session.Identity{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	id, err := a.store.Login(ctx, cred)
	if err != nil {
		return session.Identity{}, fmt.Errorf("login error: %w", err)
	}
	return id, nil
}

func (a *authService) SignUp(ctx context.Context, form SignUpForm) (models.UserBase, error) {
	if err := form.Validate(); err != nil {
		return models.UserBase{}, err
	}

	user, err := a.api.Register(ctx, models.UserCreate{
		Username: strings.TrimSpace(form.Username),
		Email:    strings.TrimSpace(form.Email),
		Password: form.Password,
	})
	if err != nil {
		return models.UserBase{}, fmt.Errorf("register error: %w", err)
	}
	return user, nil
}

func (a *authService) SignOut(ctx context.Context) error {
	return a.store.Logout(ctx)
}

// Validate runs the checks done before anything is sent to the backend.
func (f SignUpForm) Validate() error {
	if strings.TrimSpace(f.Username) == "" {
		return fmt.Errorf("%w: username is required", common.ErrorValidation)
	}
	if strings.TrimSpace(f.Email) == "" {
		return fmt.Errorf("%w: email is required", common.ErrorValidation)
	}
	if f.Password != f.Confirm {
		return ErrPasswordMismatch
	}
	if utf8.RuneCountInString(f.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
