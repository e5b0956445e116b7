package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campfirehq/identity/internal/identity/domain"
	"github.com/campfirehq/identity/internal/identity/store"
	"github.com/campfirehq/identity/pkg/cryptox"
	"github.com/campfirehq/identity/pkg/idx"
	"github.com/campfirehq/identity/pkg/slogx"
)

// DefaultSeedPassword is the placeholder credential assigned to users created
// through the admin endpoint. A real deployment would replace this with an
// invitation flow; the constant keeps the seeded accounts obviously unusable
// for interactive sign-in until reset.
const DefaultSeedPassword = "default-password"

// ErrUserNotFound reports a lookup for an identity that does not exist.
var ErrUserNotFound = errors.New("service: user not found")

// UserService implements the administrative user operations: seeding users
// by name and email, paginated listing, and lookup by id.
type UserService struct {
	Store store.Store
}

// Create inserts a user with the default seed password. Duplicate emails map
// to ErrEmailTaken via the store's unique constraint.
func (s *UserService) Create(ctx context.Context, name, email string) (domain.PublicUser, error) {
	if err := validateNewUser(name, email); err != nil {
		return domain.PublicUser{}, err
	}

	hash, err := cryptox.HashPassword(DefaultSeedPassword)
	if err != nil {
		return domain.PublicUser{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.PublicUser{}, ErrEmailTaken
		}
		return domain.PublicUser{}, fmt.Errorf("create user: %w", err)
	}

	slogx.FromContext(ctx).Info("user seeded", "user_id", user.ID)
	return user.Public(), nil
}

// List returns one page of users, newest first, with the page metadata the
// clients need to drive pagination. Zero page or limit pick the defaults.
func (s *UserService) List(ctx context.Context, page, limit int) (domain.UserPage, error) {
	page, limit, err := validatePagination(page, limit)
	if err != nil {
		return domain.UserPage{}, err
	}

	total, err := s.Store.Users().CountUsers(ctx)
	if err != nil {
		return domain.UserPage{}, fmt.Errorf("count users: %w", err)
	}

	users, err := s.Store.Users().ListUsers(ctx, limit, (page-1)*limit)
	if err != nil {
		return domain.UserPage{}, fmt.Errorf("list users: %w", err)
	}

	public := make([]domain.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return domain.UserPage{
		Users:      public,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// GetByID looks a single identity up by its ULID.
func (s *UserService) GetByID(ctx context.Context, id string) (domain.PublicUser, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PublicUser{}, ErrUserNotFound
		}
		return domain.PublicUser{}, fmt.Errorf("get user: %w", err)
	}
	return user.Public(), nil
}
