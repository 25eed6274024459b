package dto

// Result is the success envelope. Failures use apierrors.JsonErr.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
