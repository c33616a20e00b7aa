// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/adiritzhakii/food-by-me/config"
	"github.com/adiritzhakii/food-by-me/internal/delivery/http/middleware"
	"github.com/adiritzhakii/food-by-me/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	postHandler    *handler.PostHandler
	commentHandler *handler.CommentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		postHandler:    params.PostHandler,
		commentHandler: params.CommentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Uploaded images are served directly from disk
	e.Static("/public", r.cfg.Uploads.Dir)

	// Session lifecycle and profile routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/oauth-register", r.authHandler.OAuthRegister)
		authGroup.POST("/oauth-login", r.authHandler.OAuthLogin)

		authGroup.GET("/getProfile", r.profileHandler.GetProfile, r.authMiddleware.Authenticate)
		authGroup.POST("/editProfile", r.profileHandler.EditProfile, r.authMiddleware.Authenticate)
		authGroup.POST("/setAvatar", r.profileHandler.SetAvatar, r.authMiddleware.Authenticate)
		authGroup.GET("/getUserById/:id", r.profileHandler.GetUserByID, r.authMiddleware.Authenticate)
	}

	// Feed routes. Reads are public, writes require a bearer token.
	postGroup := e.Group("/posts")
	{
		postGroup.GET("", r.postHandler.GetAll)
		postGroup.GET("/:id", r.postHandler.GetByID)
		postGroup.POST("", r.postHandler.Create, r.authMiddleware.Authenticate)
		postGroup.PUT("/:id", r.postHandler.Update, r.authMiddleware.Authenticate)
		postGroup.DELETE("/:id", r.postHandler.Delete, r.authMiddleware.Authenticate)
		postGroup.POST("/generate", r.postHandler.Generate, r.authMiddleware.Authenticate)
		postGroup.POST("/:id/like", r.postHandler.ToggleLike, r.authMiddleware.Authenticate)
	}

	// Comment routes, same visibility split
	commentGroup := e.Group("/comments")
	{
		commentGroup.GET("", r.commentHandler.List)
		commentGroup.GET("/:id", r.commentHandler.GetByID)
		commentGroup.POST("", r.commentHandler.Create, r.authMiddleware.Authenticate)
		commentGroup.DELETE("/:id", r.commentHandler.Delete, r.authMiddleware.Authenticate)
	}
}
