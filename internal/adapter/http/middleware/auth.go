package middleware

import (
	"errors"
	"net/http"
	"strings"

	"taskdesk/internal/app/session"
	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
	"taskdesk/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const currentUserKey = "current_user"

// RequireSession resolves the bearer token to a user and stores it on the
// context. Requests without a valid session are rejected with 401.
func RequireSession(issuer *session.Issuer, users ports.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingSession, lang),
			)
			return
		}

		claims, err := issuer.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidSession, lang),
			)
			return
		}

		user, err := users.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidSession, lang),
				)
				return
			}

			zap.L().Error("failed to load session user", zap.String("user_id", claims.UserID), zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang),
			)
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

func SetCurrentUser(c *gin.Context, user domain.User) {
	c.Set(currentUserKey, user)
}

// CurrentUser returns the user stored by RequireSession.
func CurrentUser(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
