package apierrors_test

import (
	"os"
	"testing"

	"taskdesk/pkg/apierrors"
	"taskdesk/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	// Initialize minimal translator for tests
	translator.Translator = i18n.NewBundle(language.English)
	err := translator.Translator.AddMessages(language.English,
		&i18n.Message{ID: "test_key", Other: "Test message"},
		&i18n.Message{ID: "field_key", Other: "Invalid {{.Field}}"},
	)
	if err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError(400, "test_key", "en")
	assert.False(t, err.Success)
	assert.Equal(t, 400, err.ErrDetails.Code)
	assert.Equal(t, "Test message", err.ErrDetails.Message)
}

func TestCreateErrorWithData_FillsTemplate(t *testing.T) {
	err := apierrors.CreateErrorWithData(400, "field_key", "id", map[string]any{"Field": "title"})
	assert.Equal(t, "Invalid title", err.ErrDetails.Message)
}

func TestGetTransErrorMsg_ReturnsTranslation(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("test_key", "en")
	assert.Equal(t, "Test message", msg)
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("unknown_key", "en")
	assert.Equal(t, "unknown_key", msg)
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apierrors.CreateError(500, "test_key", "en")
	assert.Equal(t, "Code: 500, Message: Test message", err.Error())
}
