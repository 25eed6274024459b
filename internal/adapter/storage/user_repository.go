package storage

import (
	"context"
	"fmt"
	"strings"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

type UserRepository struct {
	manager *Manager
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(manager *Manager) *UserRepository {
	return &UserRepository{manager: manager}
}

func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	var rows []userRecord
	if err := r.manager.read(ctx, usersKey, &rows); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRecordToDomainUser(row))
	}
	return users, nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (domain.User, error) {
	return r.find(ctx, func(row userRecord) bool { return row.ID == id })
}

// FindByUsername matches usernames case-insensitively.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.find(ctx, func(row userRecord) bool { return strings.EqualFold(row.Username, username) })
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	var rows []userRecord
	return r.manager.mutate(ctx, usersKey, &rows, func() error {
		for _, row := range rows {
			if strings.EqualFold(row.Username, user.Username) {
				return domain.ErrUsernameTaken
			}
			if row.ID == user.ID {
				return fmt.Errorf("user %q already exists", user.ID)
			}
		}
		rows = append(rows, toUserRecord(user))
		return nil
	})
}

func (r *UserRepository) find(ctx context.Context, match func(userRecord) bool) (domain.User, error) {
	var rows []userRecord
	if err := r.manager.read(ctx, usersKey, &rows); err != nil {
		return domain.User{}, err
	}
	for _, row := range rows {
		if match(row) {
			return mapUserRecordToDomainUser(row), nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}
