package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nativoenglish/lingo/internal/auth/domain"
	"github.com/nativoenglish/lingo/internal/auth/store"
	"github.com/nativoenglish/lingo/pkg/cryptox"
	"github.com/nativoenglish/lingo/pkg/idx"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// UserService covers self-service registration and the admin user CRUD.
type UserService struct {
	Store store.Store
}

// RegisterInput carries the fields accepted by self-registration and by the
// admin create-user endpoint.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Role      domain.Role
	FirstName string
	LastName  string
}

// Register creates a user. Self-registration may pick teacher or student;
// the admin role can only be granted through the admin endpoints
// (allowAdmin).
func (s *UserService) Register(ctx context.Context, in RegisterInput, allowAdmin bool) (domain.User, error) {
	if in.Role == "" {
		in.Role = domain.RoleStudent
	}
	if !in.Role.Valid() {
		return domain.User{}, fmt.Errorf("%w: %q", domain.ErrUnknownRole, in.Role)
	}
	if in.Role == domain.RoleAdmin && !allowAdmin {
		return domain.User{}, ErrRoleNotAllowed
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		Role:         in.Role,
		IsActive:     true,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUserAlreadyExists
		}
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUser returns a single user by id.
func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UserPage is one page of the admin user listing.
type UserPage struct {
	Users    []domain.User
	Total    int
	Page     int
	PageSize int
}

// ListUsers returns a page of users. Page numbers start at 1; page sizes are
// clamped to MaxPageSize.
func (s *UserService) ListUsers(ctx context.Context, page, pageSize int) (UserPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	users, total, err := s.Store.Users().ListUsers(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return UserPage{}, fmt.Errorf("failed to list users: %w", err)
	}

	return UserPage{Users: users, Total: total, Page: page, PageSize: pageSize}, nil
}

// UpdateUserInput carries the mutable profile fields.
type UpdateUserInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// UpdateUser replaces the profile fields of an existing user.
func (s *UserService) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (domain.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if in.Username != "" {
		user.Username = strings.TrimSpace(in.Username)
	}
	if in.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}

	if err := s.Store.Users().UpdateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUserAlreadyExists
		}
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return s.GetUser(ctx, id)
}

// UpdateRole changes a user's role.
func (s *UserService) UpdateRole(ctx context.Context, id string, role domain.Role) (domain.User, error) {
	if !role.Valid() {
		return domain.User{}, fmt.Errorf("%w: %q", domain.ErrUnknownRole, role)
	}

	if err := s.Store.Users().UpdateUserRole(ctx, id, role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("failed to update role: %w", err)
	}

	return s.GetUser(ctx, id)
}

// SetActive activates or suspends an account. Suspension is the platform's
// soft delete; rows are never removed.
func (s *UserService) SetActive(ctx context.Context, id string, active bool) (domain.User, error) {
	if err := s.Store.Users().SetUserActive(ctx, id, active); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("failed to set active: %w", err)
	}

	return s.GetUser(ctx, id)
}
