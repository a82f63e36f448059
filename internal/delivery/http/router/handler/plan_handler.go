package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"footprint/internal/delivery/http/response"
	"footprint/internal/domain/entity"
	"footprint/internal/usecase"
)

// PlanHandler holds dependencies for itinerary handlers.
type PlanHandler struct {
	uc     usecase.PlanUsecase
	logger *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler, injected by Fx.
func NewPlanHandler(uc usecase.PlanUsecase, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{
		uc:     uc,
		logger: logger,
	}
}

// Generate drafts an itinerary without saving it.
func (h *PlanHandler) Generate(c echo.Context) error {
	var input usecase.GeneratePlanInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无效的行程参数")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "无效的行程参数")
	}

	plan, err := h.uc.Generate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "")
}

// Save persists an itinerary.
func (h *PlanHandler) Save(c echo.Context) error {
	var plan entity.Plan
	if err := c.Bind(&plan); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无效的行程数据")
	}

	if err := h.uc.Save(c.Request().Context(), &plan); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, plan, "行程已保存")
}

// List returns the saved itineraries.
func (h *PlanHandler) List(c echo.Context) error {
	plans, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plans, "")
}

// Detail returns one itinerary by id.
func (h *PlanHandler) Detail(c echo.Context) error {
	plan, err := h.uc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "")
}

// SetCurrent marks an itinerary as the one being followed.
func (h *PlanHandler) SetCurrent(c echo.Context) error {
	var plan entity.Plan
	if err := c.Bind(&plan); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无效的行程数据")
	}

	if err := h.uc.SetCurrent(c.Request().Context(), &plan); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "")
}

// Current returns the itinerary being followed.
func (h *PlanHandler) Current(c echo.Context) error {
	plan, err := h.uc.Current(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if plan == nil {
		return response.NotFound(c, "NOT_FOUND", "当前没有进行中的行程")
	}

	return response.Success(c, http.StatusOK, plan, "")
}
