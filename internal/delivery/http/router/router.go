// Package router maps the HTTP API onto its handlers.
package router

import (
	"wildnav/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler  *handler.HealthHandler
	HotspotHandler *handler.HotspotHandler
	SessionHandler *handler.SessionHandler
}

type router struct {
	healthHandler  *handler.HealthHandler
	hotspotHandler *handler.HotspotHandler
	sessionHandler *handler.SessionHandler
}

func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:  params.HealthHandler,
		hotspotHandler: params.HotspotHandler,
		sessionHandler: params.SessionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	v1 := e.Group("/v1")

	v1.GET("/hotspots", r.hotspotHandler.GetHotspots)
	v1.GET("/hotspots/layer", r.hotspotHandler.GetLayer)
	v1.GET("/waypoints", r.hotspotHandler.GetWaypoints)

	sessions := v1.Group("/sessions")
	{
		sessions.POST("", r.sessionHandler.StartSession)
		sessions.GET("/:id", r.sessionHandler.GetSession)
		sessions.DELETE("/:id", r.sessionHandler.EndSession)
		sessions.POST("/:id/location", r.sessionHandler.PushLocation)
		sessions.POST("/:id/skip", r.sessionHandler.Skip)
		sessions.POST("/:id/confirm", r.sessionHandler.Confirm)
		sessions.POST("/:id/rebuild", r.sessionHandler.Rebuild)
		sessions.DELETE("/:id/error", r.sessionHandler.DismissError)
		sessions.GET("/:id/breadcrumbs", r.sessionHandler.GetBreadcrumbs)
		sessions.GET("/:id/route.kml", r.sessionHandler.ExportRoute)
	}
}
