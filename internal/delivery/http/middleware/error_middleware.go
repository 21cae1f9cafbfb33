package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "swipedeck/internal/delivery/context"
	"swipedeck/internal/delivery/http/response"
	domainerrors "swipedeck/internal/domain/errors"
)

// ErrorMiddleware is the centralized HTTP error handler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError renders errors as the response envelope. Client errors keep
// their stable messages; server errors are logged with full detail and answer
// with a generic body only.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		details := appErr.Details()
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(err, c)
			details = ""
		}

		if jsonErr := response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details); jsonErr != nil {
			m.logger.Error("failed to write error response", slog.Any("error", jsonErr))
		}

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		if jsonErr := response.Error(c, httpErr.Code, "HTTP_ERROR", message, ""); jsonErr != nil {
			m.logger.Error("failed to write error response", slog.Any("error", jsonErr))
		}

		return
	}

	m.logError(err, c)

	if jsonErr := response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message()); jsonErr != nil {
		m.logger.Error("failed to write error response", slog.Any("error", jsonErr))
	}
}

func (m *ErrorMiddleware) logError(err error, c echo.Context) {
	m.logger.Error("request failed",
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	)
}
