// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"footprint/internal/delivery/http/response"
	"footprint/internal/usecase"
)

// ExploreHandler holds dependencies for the home-surface handlers.
type ExploreHandler struct {
	uc     usecase.ExploreUsecase
	logger *slog.Logger
}

// NewExploreHandler is the constructor for ExploreHandler, injected by Fx.
func NewExploreHandler(uc usecase.ExploreUsecase, logger *slog.Logger) *ExploreHandler {
	return &ExploreHandler{
		uc:     uc,
		logger: logger,
	}
}

// Home serves the home surface via the silent refresh path.
func (h *ExploreHandler) Home(c echo.Context) error {
	view, err := h.uc.RefreshSilent(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Refresh runs the user-initiated refresh path.
func (h *ExploreHandler) Refresh(c echo.Context) error {
	view, err := h.uc.RefreshExplicit(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// HotDestinations serves the trending destination list.
func (h *ExploreHandler) HotDestinations(c echo.Context) error {
	destinations, err := h.uc.HotDestinations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, destinations, "")
}
