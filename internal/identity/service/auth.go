package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campfirehq/identity/internal/identity/domain"
	"github.com/campfirehq/identity/internal/identity/store"
	"github.com/campfirehq/identity/pkg/cryptox"
	"github.com/campfirehq/identity/pkg/idx"
	"github.com/campfirehq/identity/pkg/jwtx"
	"github.com/campfirehq/identity/pkg/slogx"
)

var (
	// ErrEmailTaken reports a sign-up against an already registered email.
	ErrEmailTaken = errors.New("service: email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers must surface the two identically so account existence never
	// leaks through error messages or status codes.
	ErrInvalidCredentials = errors.New("service: invalid credentials")
)

// SignOutMessage is the acknowledgement returned by the stateless sign-out.
const SignOutMessage = "Successfully signed out"

// AuthService orchestrates sign-up, sign-in, and sign-out against the
// credential store and the token issuer. Collaborators are supplied at
// construction; the service holds no mutable state of its own.
type AuthService struct {
	Store  store.Store
	Tokens jwtx.Issuer
}

// SignUp validates the credentials, hashes the password, and creates the
// identity record. The store's unique email constraint is the authority on
// duplicates: even if the pre-check races with a concurrent sign-up, the
// losing insert maps to ErrEmailTaken and nothing is mutated.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (domain.PublicUser, error) {
	if err := validateCredentials(email, password); err != nil {
		return domain.PublicUser{}, err
	}

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		return domain.PublicUser{}, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.PublicUser{}, fmt.Errorf("lookup user by email: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.PublicUser{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         "",
		PasswordHash: hash,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.PublicUser{}, ErrEmailTaken
		}
		return domain.PublicUser{}, fmt.Errorf("create user: %w", err)
	}

	slogx.FromContext(ctx).Info("identity created", "user_id", user.ID)
	return user.Public(), nil
}

// SignIn verifies the credentials and mints the token pair. Unknown email
// and wrong password both return ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (domain.PublicUser, domain.TokenPair, error) {
	if err := validateCredentials(email, password); err != nil {
		return domain.PublicUser{}, domain.TokenPair{}, err
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PublicUser{}, domain.TokenPair{}, ErrInvalidCredentials
		}
		return domain.PublicUser{}, domain.TokenPair{}, fmt.Errorf("lookup user by email: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.PublicUser{}, domain.TokenPair{}, ErrInvalidCredentials
	}

	access, err := s.Tokens.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		return domain.PublicUser{}, domain.TokenPair{}, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.Tokens.IssueRefreshToken(user.ID, user.Email)
	if err != nil {
		return domain.PublicUser{}, domain.TokenPair{}, fmt.Errorf("issue refresh token: %w", err)
	}

	slogx.FromContext(ctx).Info("sign-in succeeded", "user_id", user.ID)
	return user.Public(), domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// SignOut is stateless: tokens are not revocable, so signing out is a
// client-side discard. It always succeeds and mutates nothing, which also
// makes it trivially idempotent.
func (s *AuthService) SignOut(_ context.Context) string {
	return SignOutMessage
}
