package handlers

import (
	"errors"
	"net/http"

	"taskdesk/internal/adapter/http/middleware"
	"taskdesk/internal/core/domain"
	"taskdesk/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service error to its HTTP status. Unexpected errors are
// logged as logMsg and answered with failKey.
func respondError(c *gin.Context, err error, failKey, logMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateErrorWithData(http.StatusBadRequest, apierrors.MsgValidationFailed, lang, map[string]any{
				"Field":  validationErr.Field,
				"Reason": validationErr.Reason,
			}),
		)
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
		)
	case errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(
			http.StatusConflict,
			apierrors.CreateError(http.StatusConflict, apierrors.MsgUsernameTaken, lang),
		)
	case errors.Is(err, domain.ErrIncompatibleBackup):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgIncompatibleBackup, lang),
		)
	default:
		zap.L().Error(logMsg, append(fields, zap.Error(err))...)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failKey, lang),
		)
	}
}

func badRequest(c *gin.Context, msgKey string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)),
	)
}
