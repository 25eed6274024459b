package dto

type TaskItem struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	Priority      string  `json:"priority"`
	PriorityLabel string  `json:"priority_label"`
	PriorityClass string  `json:"priority_class"`
	Category      string  `json:"category"`
	CategoryLabel string  `json:"category_label"`
	CategoryClass string  `json:"category_class"`
	Completed     bool    `json:"completed"`
	Overdue       bool    `json:"overdue"`
	DueDate       *string `json:"due_date,omitempty"`
	CompletedAt   *string `json:"completed_at,omitempty"`
	OwnerID       string  `json:"owner_id"`
	AssigneeID    *string `json:"assignee_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type TaskList struct {
	Items        []TaskItem `json:"items"`
	Count        int        `json:"count"`
	Filter       string     `json:"filter"`
	Value        string     `json:"value,omitempty"`
	EmptyMessage string     `json:"empty_message,omitempty"`
}

type DeadlineList struct {
	Items   []TaskItem `json:"items"`
	Count   int        `json:"count"`
	Message string     `json:"message"`
}

type CategoryStatItem struct {
	Category  string `json:"category"`
	Label     string `json:"label"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

type CategoryStatList struct {
	Items        []CategoryStatItem `json:"items"`
	EmptyMessage string             `json:"empty_message,omitempty"`
}

type TaskStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	Overdue        int `json:"overdue"`
	CompletionRate int `json:"completion_rate"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Category    *string `json:"category" binding:"omitempty,oneof=work personal study health finance shopping other"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	AssigneeID  *string `json:"assignee_id" binding:"omitempty,max=64"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Category    *string `json:"category" binding:"omitempty,oneof=work personal study health finance shopping other"`
	Completed   *bool   `json:"completed"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	AssigneeID  *string `json:"assignee_id" binding:"omitempty,max=64"`
}
