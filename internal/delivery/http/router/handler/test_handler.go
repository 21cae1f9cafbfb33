package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"swipedeck/internal/delivery/http/middleware"
	"swipedeck/internal/delivery/http/response"
)

// TestHandler handles test endpoints for middleware validation.
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance.
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// Ping answers the mobile clients' reachability probe. The message string is
// part of the client contract.
func (h *TestHandler) Ping(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "Backend is running!")
}

// TestAuthMiddleware answers only behind the auth middleware, echoing the
// identity it resolved.
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID := c.Get(middleware.ContextKeyUserID)

	return response.Success(c, http.StatusOK, map[string]any{
		"userID": userID,
		"status": "authenticated",
	}, "Authentication middleware test successful")
}

// TestPublicEndpoint tests a public endpoint (no authentication required).
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status": "public",
	}, "Public endpoint test successful")
}
