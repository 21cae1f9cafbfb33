package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"swipedeck/internal/delivery/http/response"
	domainerrors "swipedeck/internal/domain/errors"
	"swipedeck/internal/usecase"
)

// imageFormField is the multipart field the mobile clients send the file in.
const imageFormField = "image"

// MediaHandler stores uploaded profile images.
type MediaHandler struct {
	uc     usecase.MediaUsecase
	logger *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(uc usecase.MediaUsecase, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		uc:     uc,
		logger: logger,
	}
}

// UploadImage buffers the multipart file and hands it to the media usecase.
// The response carries the stored image's public URL.
func (h *MediaHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return domainerrors.ErrNoFileUploaded.WrapMessage("multipart image field is missing")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrUploadFailed.WrapMessage("failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domainerrors.ErrUploadFailed.WrapMessage("failed to read uploaded file")
	}

	output, err := h.uc.UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		Data:        data,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Image uploaded successfully")
}
