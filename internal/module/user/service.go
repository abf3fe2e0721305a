package user

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/dealerdesk/dealerdesk/internal/domain"
)

// userService implements domain.UserService.
type userService struct {
	repo domain.UserRepository
}

// NewService creates a new UserService with the given repository.
func NewService(repo domain.UserRepository) domain.UserService {
	return &userService{repo: repo}
}

// CreateUser validates input and persists the user. Accounts created this
// way have no password; they log in only after a password is set through
// the auth registration flow.
func (s *userService) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validateUser(name, email); err != nil {
		return nil, err
	}

	user := &domain.User{Name: name, Email: email}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a user by ID.
func (s *userService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// ListUsers returns a paginated list of users.
func (s *userService) ListUsers(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.User], error) {
	return s.repo.List(ctx, req)
}

// UpdateUser loads the existing user, applies changes, and persists them.
func (s *userService) UpdateUser(ctx context.Context, id uint, name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validateUser(name, email); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Email = email

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user by ID.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func validateUser(name, email string) error {
	if name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if utf8.RuneCountInString(name) < 2 || utf8.RuneCountInString(name) > 100 {
		return domain.NewAppError(domain.CodeValidation, "name must be between 2 and 100 characters", nil)
	}
	if email == "" {
		return domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
	}
	return nil
}
