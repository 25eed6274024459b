package domain

import "time"

type User struct {
	ID        string
	Username  string
	Email     *string
	FullName  *string
	CreatedAt time.Time
}

// DisplayName prefers the full name and falls back to the username.
func (u User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Username
}

type RegisterUserInput struct {
	Username string
	Email    *string
	FullName *string
}
