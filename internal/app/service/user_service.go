package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
	now            func() time.Time
	newID          func() string
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{
		userRepository: userRepository,
		now:            time.Now,
		newID:          uuid.NewString,
	}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return domain.User{}, domain.NewValidationError("username", "required")
	}
	if strings.ContainsAny(username, " \t\r\n") {
		return domain.User{}, domain.NewValidationError("username", "must not contain whitespace")
	}

	_, err := s.userRepository.FindByUsername(ctx, username)
	if err == nil {
		return domain.User{}, domain.ErrUsernameTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	user := domain.User{
		ID:        s.newID(),
		Username:  username,
		Email:     normalizeOptional(input.Email),
		FullName:  normalizeOptional(input.FullName),
		CreatedAt: s.now().UTC(),
	}
	if err := s.userRepository.Create(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Login resolves a user by username alone; there is no credential check.
func (s *UserService) Login(ctx context.Context, username string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.User{}, domain.NewValidationError("username", "required")
	}
	return s.userRepository.FindByUsername(ctx, username)
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	return s.userRepository.Get(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.ListAll(ctx)
}

// SeedDemoUsers creates the "demo" and "john" accounts when no user exists.
// It reports whether anything was created.
func (s *UserService) SeedDemoUsers(ctx context.Context) (bool, error) {
	users, err := s.userRepository.ListAll(ctx)
	if err != nil {
		return false, err
	}
	if len(users) > 0 {
		return false, nil
	}

	for _, demo := range []domain.RegisterUserInput{
		{Username: "demo", Email: ptr("demo@example.com"), FullName: ptr("Demo User")},
		{Username: "john", Email: ptr("john@example.com"), FullName: ptr("John Doe")},
	} {
		if _, err := s.Register(ctx, demo); err != nil {
			return false, err
		}
	}
	zap.L().Info("seeded demo users", zap.Strings("usernames", []string{"demo", "john"}))
	return true, nil
}

func ptr(value string) *string {
	return &value
}

var _ ports.UserService = (*UserService)(nil)
