package mapper

import (
	"time"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/core/domain"
)

func ToUserItem(user domain.User, currentUserID string) dto.UserItem {
	item := dto.UserItem{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName(),
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
		IsCurrent:   user.ID == currentUserID,
	}
	if user.Email != nil {
		value := *user.Email
		item.Email = &value
	}
	if user.FullName != nil {
		value := *user.FullName
		item.FullName = &value
	}
	return item
}

func ToUserItems(users []domain.User, currentUserID string) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user, currentUserID))
	}
	return items
}
