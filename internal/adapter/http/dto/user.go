package dto

type UserItem struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Email       *string `json:"email,omitempty"`
	FullName    *string `json:"full_name,omitempty"`
	DisplayName string  `json:"display_name"`
	CreatedAt   string  `json:"created_at"`
	IsCurrent   bool    `json:"is_current"`
}

type RegisterRequest struct {
	Username string  `json:"username" binding:"required,max=64"`
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName *string `json:"full_name" binding:"omitempty,max=255"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
}

type LoginResponse struct {
	User      UserItem `json:"user"`
	Token     string   `json:"token"`
	ExpiresAt string   `json:"expires_at"`
}
