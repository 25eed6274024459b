package apierrors

import (
	"fmt"

	"taskdesk/pkg/translator"
)

// JsonErr represents the JSON structure for apierrors.
type JsonErr struct {
	Success    bool `json:"success"`
	ErrDetails Err  `json:"error"`
}

// Err represents the error with a code and message.
type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return CreateErrorWithData(code, msgKey, lang, nil)
}

// CreateErrorWithData is CreateError with template data for the message.
func CreateErrorWithData(code int, msgKey string, lang string, data map[string]any) JsonErr {
	message := translator.Translate(lang, msgKey, data)
	return JsonErr{ErrDetails: Err{code, message}}
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	return translator.Translate(lang, msgKey, nil)
}
