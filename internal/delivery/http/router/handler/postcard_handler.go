package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"footprint/internal/delivery/http/response"
	"footprint/internal/usecase"
)

// PostcardHandler holds dependencies for postcard handlers.
type PostcardHandler struct {
	uc     usecase.PostcardUsecase
	logger *slog.Logger
}

// NewPostcardHandler is the constructor for PostcardHandler, injected by Fx.
func NewPostcardHandler(uc usecase.PostcardUsecase, logger *slog.Logger) *PostcardHandler {
	return &PostcardHandler{
		uc:     uc,
		logger: logger,
	}
}

// Generate renders a postcard from a saved plan or track.
func (h *PostcardHandler) Generate(c echo.Context) error {
	var input usecase.GeneratePostcardInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无效的明信片参数")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "无效的明信片参数")
	}

	postcard, err := h.uc.Generate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, postcard, "明信片已生成")
}

// List returns generated postcards.
func (h *PostcardHandler) List(c echo.Context) error {
	postcards, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, postcards, "")
}

// Detail returns one postcard by id.
func (h *PostcardHandler) Detail(c echo.Context) error {
	postcard, err := h.uc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, postcard, "")
}

// Resolve looks up the postcard a scanned share QR code points at.
func (h *PostcardHandler) Resolve(c echo.Context) error {
	qrData := c.QueryParam("qr")
	if qrData == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "无效的分享码")
	}

	postcard, err := h.uc.ResolveShareQR(c.Request().Context(), qrData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, postcard, "")
}

// ShareQR streams the share QR code as a PNG image.
func (h *PostcardHandler) ShareQR(c echo.Context) error {
	png, err := h.uc.ShareQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
