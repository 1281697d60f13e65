package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/jorism/userapi/internal/core/domain"
	"github.com/jorism/userapi/internal/core/repository"
)

// emailPattern is deliberately loose: it accepts some invalid addresses
// and rejects dotless domains. Kept as-is for compatibility with data
// validated by earlier versions.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService validates input and orchestrates repository calls. It owns
// its repository for the lifetime of the service.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFoundError("User not found")
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, input domain.UserInput) (*domain.User, error) {
	if err := validateUserInput(input); err != nil {
		return nil, err
	}
	return s.users.Create(ctx, input)
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	if patch.Empty() {
		return nil, domain.ValidationError("No data provided for update")
	}

	user, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFoundError("User not found")
	}
	return user, nil
}

// DeleteUser removes the user and returns a confirmation message.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (string, error) {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	if !deleted {
		return "", domain.NotFoundError("User not found")
	}
	return "User deleted successfully", nil
}

// validateUserInput applies the create rules in order; the first
// violation wins. Updates are not validated beyond the empty-patch check.
func validateUserInput(input domain.UserInput) error {
	if len(strings.TrimSpace(input.Username)) < 3 {
		return domain.ValidationError("Username must be at least 3 characters long")
	}
	if input.Email == "" || !emailPattern.MatchString(input.Email) {
		return domain.ValidationError("Valid email address is required")
	}
	if len(input.Password) < 6 {
		return domain.ValidationError("Password must be at least 6 characters long")
	}
	return nil
}
