// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"swipedeck/config"
	"swipedeck/internal/delivery/http/middleware"
	"swipedeck/internal/delivery/http/router/handler"
)

// RouterParams holds everything route registration needs, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	SwipeHandler   *handler.SwipeHandler
	MediaHandler   *handler.MediaHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	swipeHandler   *handler.SwipeHandler
	mediaHandler   *handler.MediaHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		swipeHandler:   params.SwipeHandler,
		mediaHandler:   params.MediaHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The route shape matches what the mobile clients already call: flat paths,
// no version prefix.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/test", r.testHandler.Ping)

	e.POST("/register", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)

	// Upload and swipe are each individually toggleable between open and
	// authenticated, since deployments have run them both ways.
	if r.config.UploadProtected() {
		e.POST("/upload", r.mediaHandler.UploadImage, r.authMiddleware.Authenticate)
	} else {
		e.POST("/upload", r.mediaHandler.UploadImage)
	}

	if r.config.SwipeProtected() {
		e.POST("/swipe", r.swipeHandler.RecordSwipe, r.authMiddleware.Authenticate)
	} else {
		e.POST("/swipe", r.swipeHandler.RecordSwipe)
	}
}

// RegisterTestRoutes exposes middleware test endpoints when configured.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
	testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
}
