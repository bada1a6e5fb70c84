// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cinelog/internal/delivery/http/middleware"
	"cinelog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	MovieHandler        *handler.MovieHandler
	RatingHandler       *handler.RatingHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	movieHandler        *handler.MovieHandler
	ratingHandler       *handler.RatingHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		movieHandler:        params.MovieHandler,
		ratingHandler:       params.RatingHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Routes reachable without a session
	api.POST("/users", r.userHandler.Register)
	api.POST("/users/login", r.userHandler.Login)

	// User routes that require authentication. The static /profile and
	// /logout segments take precedence over the :id parameter.
	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.List)
		userGroup.GET("/profile", r.userHandler.Profile)
		userGroup.DELETE("/logout", r.userHandler.Logout)
		userGroup.GET("/:id", r.userHandler.Get)
		userGroup.PATCH("/:id", r.userHandler.Update)
		userGroup.DELETE("/:id", r.userHandler.Delete)
	}

	movieGroup := e.Group("/movies")
	movieGroup.Use(r.authMiddleware.Authenticate)
	{
		movieGroup.GET("", r.movieHandler.List)
		movieGroup.POST("", r.movieHandler.Create)
		movieGroup.GET("/:id", r.movieHandler.Get)
		movieGroup.PATCH("/:id", r.movieHandler.Update)
		movieGroup.DELETE("/:id", r.movieHandler.Delete)
	}

	ratingGroup := e.Group("/ratings")
	ratingGroup.Use(r.authMiddleware.Authenticate)
	{
		ratingGroup.GET("", r.ratingHandler.List)
		ratingGroup.POST("", r.ratingHandler.Create)
		ratingGroup.GET("/:id", r.ratingHandler.Get)
		ratingGroup.PATCH("/:id", r.ratingHandler.Update)
		ratingGroup.DELETE("/:id", r.ratingHandler.Delete)
	}
}
