// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"placemark/internal/delivery/http/middleware"
	"placemark/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AddressHandler *handler.AddressHandler
	CommentHandler *handler.CommentHandler
	FeedHandler    *handler.FeedHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	addressHandler *handler.AddressHandler
	commentHandler *handler.CommentHandler
	feedHandler    *handler.FeedHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		addressHandler: params.AddressHandler,
		commentHandler: params.CommentHandler,
		feedHandler:    params.FeedHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")

	// Auth routes
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/signout", r.authHandler.SignOut)
	}

	// Everything below requires a verified ID token.
	feedGroup := v1.Group("/feed")
	feedGroup.Use(r.authMiddleware.Authenticate)
	{
		feedGroup.GET("", r.feedHandler.GetFeed)
		feedGroup.GET("/stream", r.feedHandler.StreamFeed)
	}

	addressGroup := v1.Group("/addresses")
	addressGroup.Use(r.authMiddleware.Authenticate)
	{
		addressGroup.POST("", r.addressHandler.CreateAddress)
		addressGroup.GET("/:id", r.addressHandler.GetAddress)
		addressGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
		addressGroup.GET("/:id/stream", r.addressHandler.StreamAddress)
		addressGroup.GET("/:id/qr", r.addressHandler.ShareQR)

		addressGroup.POST("/:id/comments", r.commentHandler.AddComment)
		addressGroup.GET("/:id/comments", r.commentHandler.GetComments)
		addressGroup.GET("/:id/comments/stream", r.commentHandler.StreamComments)
		addressGroup.DELETE("/:id/comments/:commentId", r.commentHandler.DeleteComment)
	}

	userGroup := v1.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.PUT("/me/photo", r.profileHandler.UpdatePhoto)
	}
}
