// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"footprint/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	ExploreHandler  *handler.ExploreHandler
	PlanHandler     *handler.PlanHandler
	TrackHandler    *handler.TrackHandler
	PostcardHandler *handler.PostcardHandler
	SessionHandler  *handler.SessionHandler
	UploadHandler   *handler.UploadHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	exploreHandler  *handler.ExploreHandler
	planHandler     *handler.PlanHandler
	trackHandler    *handler.TrackHandler
	postcardHandler *handler.PostcardHandler
	sessionHandler  *handler.SessionHandler
	uploadHandler   *handler.UploadHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		exploreHandler:  params.ExploreHandler,
		planHandler:     params.PlanHandler,
		trackHandler:    params.TrackHandler,
		postcardHandler: params.PostcardHandler,
		sessionHandler:  params.SessionHandler,
		uploadHandler:   params.UploadHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/logout", r.sessionHandler.Logout)
	}
	e.GET("/user/profile", r.sessionHandler.Profile)
	e.DELETE("/settings/cache", r.sessionHandler.ClearCache)
	e.POST("/upload/image", r.uploadHandler.Image)

	// Home surface routes
	exploreGroup := e.Group("/explore")
	{
		exploreGroup.GET("/home", r.exploreHandler.Home)
		exploreGroup.POST("/refresh", r.exploreHandler.Refresh)
		exploreGroup.GET("/destinations", r.exploreHandler.HotDestinations)
	}

	// Itinerary routes
	planGroup := e.Group("/plans")
	{
		planGroup.POST("/generate", r.planHandler.Generate)
		planGroup.POST("", r.planHandler.Save)
		planGroup.GET("", r.planHandler.List)
		planGroup.GET("/current", r.planHandler.Current)
		planGroup.PUT("/current", r.planHandler.SetCurrent)
		planGroup.GET("/:id", r.planHandler.Detail)
	}

	// Track recording routes
	trackGroup := e.Group("/tracks")
	{
		trackGroup.POST("/start", r.trackHandler.Start)
		trackGroup.GET("/status", r.trackHandler.Status)
		trackGroup.POST("/stop", r.trackHandler.Stop)
		trackGroup.GET("", r.trackHandler.List)
		trackGroup.GET("/:id", r.trackHandler.Detail)
	}

	// Postcard routes
	postcardGroup := e.Group("/postcards")
	{
		postcardGroup.POST("/generate", r.postcardHandler.Generate)
		postcardGroup.GET("", r.postcardHandler.List)
		postcardGroup.GET("/resolve", r.postcardHandler.Resolve)
		postcardGroup.GET("/:id", r.postcardHandler.Detail)
		postcardGroup.GET("/:id/qrcode", r.postcardHandler.ShareQR)
	}
}
