// Package middleware contains HTTP middleware specific to the HTTP delivery.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "swipedeck/internal/delivery/context"
	domainerrors "swipedeck/internal/domain/errors"
	"swipedeck/internal/domain/service"
)

// ContextKeyUserID is the echo.Context key holding the authenticated user's ID.
const ContextKeyUserID = "userID"

// AuthMiddleware guards routes behind a valid session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stashes the user ID for
// handlers. Failures surface as domain errors so the central error handler
// renders them; an expired token answers the same way as a forged one.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenMissing.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header is not a bearer token")
		}

		userID, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return err
		}

		c.Set(ContextKeyUserID, userID)

		ctx := deliverycontext.WithUserID(c.Request().Context(), userID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
