package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tutorbook/internal/common"
)

// Service implements the user directory operations. Role-based authorization
// is deliberately absent: any caller may register, update, or delete any
// user.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// UpdateParams carries the optional fields of a partial update. A nil field
// is left untouched, not cleared.
type UpdateParams struct {
	Username *string
	Email    *string
	Role     *string
}

// Register creates a user. The email is normalized before the duplicate
// check and the write; the role defaults to student when absent.
func (s *Service) Register(ctx context.Context, username, email, role string) (*User, error) {

	email = NormalizeEmail(email)
	if username == "" || email == "" {
		return nil, ErrUsernameAndEmailRequired
	}

	if role == "" {
		role = RoleStudent
	} else if !ValidRole(role) {
		return nil, fmt.Errorf("%q %w", role, ErrInvalidRole)
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking existing email: %w", err)
	}

	user := &User{
		Username: username,
		Email:    email,
		Role:     role,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		// The unique index remains the authoritative guard against a
		// concurrent registration with the same email.
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Update applies the supplied fields to an existing user and re-validates
// the record. Omitted fields keep their current values.
func (s *Service) Update(ctx context.Context, id string, params UpdateParams) (*User, error) {

	if params.Username == nil && params.Email == nil && params.Role == nil {
		return nil, ErrNoFieldsToUpdate
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if params.Username != nil {
		if *params.Username == "" {
			return nil, ErrUsernameAndEmailRequired
		}
		user.Username = *params.Username
	}

	if params.Email != nil {
		email := NormalizeEmail(*params.Email)
		if email == "" {
			return nil, ErrUsernameAndEmailRequired
		}
		if email != user.Email {
			if _, err := s.repo.GetByEmail(ctx, email); err == nil {
				return nil, ErrEmailExists
			} else if !errors.Is(err, common.ErrorNotFound) {
				return nil, fmt.Errorf("error checking existing email: %w", err)
			}
		}
		user.Email = email
	}

	if params.Role != nil {
		if !ValidRole(*params.Role) {
			return nil, fmt.Errorf("%q %w", *params.Role, ErrInvalidRole)
		}
		user.Role = *params.Role
	}

	user, err = s.repo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, ErrEmailExists
		}
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return user, nil
}

// Delete removes a user by id and returns the record's prior state.
// Sessions referencing the user are left untouched; a dangling reference is
// accepted.
func (s *Service) Delete(ctx context.Context, id string) (*User, error) {

	user, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error deleting user: %w", err)
	}

	return user, nil
}
