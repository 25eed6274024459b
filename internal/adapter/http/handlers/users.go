package handlers

import (
	"net/http"
	"time"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/adapter/http/mapper"
	"taskdesk/internal/adapter/http/middleware"
	"taskdesk/internal/app/session"
	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
	"taskdesk/pkg/apierrors"
	"taskdesk/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService ports.UserService
	sessions    *session.Issuer
}

func NewUserHandler(userService ports.UserService, sessions *session.Issuer) *UserHandler {
	return &UserHandler{userService: userService, sessions: sessions}
}

func (h *UserHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidUserPayload)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
	})
	if err != nil {
		respondError(c, err, apierrors.MsgFailRegister, "failed to register user", zap.String("username", req.Username))
		return
	}

	c.JSON(http.StatusCreated, dto.Result{
		Success: true,
		Message: translator.Translate(lang, "registerSuccess", nil),
		Data:    mapper.ToUserItem(user, ""),
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidUserPayload)
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Username)
	if err != nil {
		respondError(c, err, apierrors.MsgFailLogin, "failed to login", zap.String("username", req.Username))
		return
	}

	token, expiresAt, err := h.sessions.Issue(user.ID, user.Username)
	if err != nil {
		respondError(c, err, apierrors.MsgFailLogin, "failed to issue session token", zap.String("user_id", user.ID))
		return
	}

	c.JSON(http.StatusOK, dto.Result{
		Success: true,
		Message: translator.Translate(lang, "loginSuccess", map[string]any{"Name": user.DisplayName()}),
		Data: dto.LoginResponse{
			User:      mapper.ToUserItem(user, user.ID),
			Token:     token,
			ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		},
	})
}

// Logout is stateless: the client drops its token.
func (h *UserHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Result{
		Success: true,
		Message: translator.Translate(middleware.GetLang(c), "logoutSuccess", nil),
	})
}

func (h *UserHandler) Me(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, dto.Result{Success: true, Data: mapper.ToUserItem(user, user.ID)})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	current, _ := middleware.CurrentUser(c)

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, apierrors.MsgFailListUsers, "failed to list users")
		return
	}

	c.JSON(http.StatusOK, dto.Result{Success: true, Data: mapper.ToUserItems(users, current.ID)})
}
