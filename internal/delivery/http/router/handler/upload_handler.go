package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"footprint/internal/delivery/http/response"
	"footprint/internal/domain/service"
)

// UploadHandler forwards image uploads to the travel backend.
type UploadHandler struct {
	travel service.TravelService
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(travel service.TravelService, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		travel: travel,
		logger: logger,
	}
}

// Image accepts a multipart image and returns the URL it is served from.
func (h *UploadHandler) Image(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "缺少上传文件")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded file")
	}
	defer func() { _ = file.Close() }()

	url, err := h.travel.UploadImage(c.Request().Context(), fileHeader.Filename, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "上传成功")
}
