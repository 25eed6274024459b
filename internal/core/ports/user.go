package ports

import (
	"context"

	"taskdesk/internal/core/domain"
)

type UserRepository interface {
	ListAll(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	Create(ctx context.Context, user domain.User) error
}

type UserService interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, error)
	Login(ctx context.Context, username string) (domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	SeedDemoUsers(ctx context.Context) (bool, error)
}
