package service

import (
	"context"
	"testing"

	"taskdesk/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestUserService_SeedDemoUsersIsIdempotent(t *testing.T) {
	f := newFixture(t)

	created, err := f.users.SeedDemoUsers(context.Background())
	require.NoError(t, err)
	require.False(t, created)

	users, err := f.users.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "demo", users[0].Username)
	require.Equal(t, "Demo User", users[0].DisplayName())
	require.Equal(t, "john", users[1].Username)
}

func TestUserService_Register(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.Register(ctx, domain.RegisterUserInput{Username: " alice ", Email: strPtr("alice@example.com")})
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "alice", user.DisplayName())
	require.Nil(t, user.FullName)

	got, err := f.users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user, got)
}

func TestUserService_Register_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Register(ctx, domain.RegisterUserInput{Username: "  "})
	require.True(t, domain.IsValidationError(err))

	_, err = f.users.Register(ctx, domain.RegisterUserInput{Username: "two words"})
	require.True(t, domain.IsValidationError(err))

	_, err = f.users.Register(ctx, domain.RegisterUserInput{Username: "DEMO"})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_Login(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.Login(ctx, "  John ")
	require.NoError(t, err)
	require.Equal(t, f.john.ID, user.ID)

	_, err = f.users.Login(ctx, "")
	require.True(t, domain.IsValidationError(err))

	_, err = f.users.Login(ctx, "nobody")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
