package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"footprint/internal/delivery/http/response"
	"footprint/internal/usecase"
)

// SessionHandler holds dependencies for session handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

type loginInput struct {
	Code string `json:"code" validate:"required"`
}

// Login exchanges a platform login code for a session.
func (h *SessionHandler) Login(c echo.Context) error {
	var input loginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无效的登录参数")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "无效的登录参数")
	}

	info, err := h.uc.Login(c.Request().Context(), input.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, info, "登录成功")
}

// Logout drops the stored session.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "已退出登录")
}

// Profile returns the stored session.
func (h *SessionHandler) Profile(c echo.Context) error {
	info, err := h.uc.Profile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if info == nil {
		return response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "您需要登录后才能继续操作", "")
	}

	return response.Success(c, http.StatusOK, info, "")
}

// ClearCache wipes every locally cached slot.
func (h *SessionHandler) ClearCache(c echo.Context) error {
	if err := h.uc.ClearCache(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "缓存已清空")
}
