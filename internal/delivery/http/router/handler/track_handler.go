package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"footprint/internal/delivery/http/response"
	"footprint/internal/usecase"
)

// TrackHandler holds dependencies for track-recording handlers.
type TrackHandler struct {
	uc     usecase.TrackUsecase
	logger *slog.Logger
}

// NewTrackHandler is the constructor for TrackHandler, injected by Fx.
func NewTrackHandler(uc usecase.TrackUsecase, logger *slog.Logger) *TrackHandler {
	return &TrackHandler{
		uc:     uc,
		logger: logger,
	}
}

type startTrackInput struct {
	Name string `json:"name"`
}

// Start begins recording a track.
func (h *TrackHandler) Start(c echo.Context) error {
	var input startTrackInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无效的轨迹参数")
	}

	if err := h.uc.Start(c.Request().Context(), input.Name); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "开始记录轨迹")
}

// Status reports the recording in progress.
func (h *TrackHandler) Status(c echo.Context) error {
	status, err := h.uc.Status(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// Stop ends the recording and returns the finished track.
func (h *TrackHandler) Stop(c echo.Context) error {
	track, err := h.uc.Stop(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, track, "轨迹已保存")
}

// List returns recorded tracks.
func (h *TrackHandler) List(c echo.Context) error {
	tracks, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tracks, "")
}

// Detail returns one track by id.
func (h *TrackHandler) Detail(c echo.Context) error {
	track, err := h.uc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, track, "")
}
