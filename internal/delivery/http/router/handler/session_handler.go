package handler

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	deliverycontext "wildnav/internal/delivery/context"
	"wildnav/internal/delivery/http/response"
	"wildnav/internal/domain/entity"
	domainerrors "wildnav/internal/domain/errors"
	"wildnav/internal/domain/service"
	"wildnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type SessionHandlerParams struct {
	fx.In

	NavigationUC usecase.NavigationUsecase
	Logger       *slog.Logger
}

// SessionHandler exposes navigation sessions
type SessionHandler struct {
	navigationUC usecase.NavigationUsecase
	logger       *slog.Logger
}

func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		navigationUC: params.NavigationUC,
		logger:       params.Logger,
	}
}

type coordinateRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r coordinateRequest) coordinate() entity.Coordinate {
	return entity.Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
}

type waypointRequest struct {
	Kind         entity.WaypointKind `json:"kind" validate:"required"`
	ID           string              `json:"id" validate:"required"`
	Title        string              `json:"title"`
	Latitude     float64             `json:"latitude"`
	Longitude    float64             `json:"longitude"`
	DensityScore float64             `json:"density_score"`
}

func (r waypointRequest) waypoint() (entity.Waypoint, error) {
	location := entity.Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}

	switch r.Kind {
	case entity.WaypointKindSighting:
		return entity.NewSightingWaypoint(entity.Sighting{
			ID:          r.ID,
			SpeciesName: r.Title,
			Coordinate:  location,
		}), nil
	case entity.WaypointKindHotspot:
		return entity.NewHotspotWaypoint(entity.Hotspot{
			ID:           r.ID,
			Name:         r.Title,
			Coordinate:   location,
			DensityScore: r.DensityScore,
		}), nil
	default:
		return nil, domainerrors.ErrUnknownWaypoint.WithDetails(fmt.Sprintf("kind %q of waypoint %s", r.Kind, r.ID))
	}
}

// StartSessionRequest is the body of POST /v1/sessions
type StartSessionRequest struct {
	UserID               string             `json:"user_id" validate:"required"`
	Position             *coordinateRequest `json:"position"`
	Heading              *float64           `json:"heading"`
	ConfirmBeforeAdvance *bool              `json:"confirm_before_advance"`
	Waypoints            []waypointRequest  `json:"waypoints" validate:"dive"`
}

// LocationRequest is the body of POST /v1/sessions/:id/location
type LocationRequest struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Heading   *float64   `json:"heading"`
	Timestamp *time.Time `json:"timestamp"`
}

// StartSession handles POST /v1/sessions
func (h *SessionHandler) StartSession(c echo.Context) error {
	var req StartSessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleAppError(c, err)
	}
	if req.Position == nil {
		return handleAppError(c, domainerrors.ErrNoPosition.WithDetails("position is required to plan the first leg"))
	}

	waypoints := make([]entity.Waypoint, 0, len(req.Waypoints))
	for _, w := range req.Waypoints {
		waypoint, err := w.waypoint()
		if err != nil {
			return handleAppError(c, err)
		}
		waypoints = append(waypoints, waypoint)
	}

	snapshot, err := h.navigationUC.StartSession(c.Request().Context(), &usecase.StartSessionInput{
		UserID:               req.UserID,
		Position:             req.Position.coordinate(),
		Heading:              req.Heading,
		Waypoints:            waypoints,
		ConfirmBeforeAdvance: req.ConfirmBeforeAdvance,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Navigation session started",
		slog.String("session_id", snapshot.ID),
		slog.String("user_id", snapshot.UserID),
		slog.Int("waypoints", len(waypoints)),
	)

	return response.Success(c, http.StatusCreated, snapshot, "Navigation session started")
}

// GetSession handles GET /v1/sessions/:id
func (h *SessionHandler) GetSession(c echo.Context) error {
	return h.respondSnapshot(c, h.navigationUC.Session, "")
}

// PushLocation handles POST /v1/sessions/:id/location
func (h *SessionHandler) PushLocation(c echo.Context) error {
	var req LocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleAppError(c, err)
	}

	fix := service.LocationFix{
		Coordinate: entity.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude},
		Heading:    req.Heading,
		Timestamp:  time.Now(),
	}
	if req.Timestamp != nil {
		fix.Timestamp = *req.Timestamp
	}

	if err := h.navigationUC.PushLocation(h.sessionContext(c), c.Param("id"), fix); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Location accepted")
}

// Skip handles POST /v1/sessions/:id/skip
func (h *SessionHandler) Skip(c echo.Context) error {
	return h.respondSnapshot(c, h.navigationUC.Skip, "Waypoint skipped")
}

// Confirm handles POST /v1/sessions/:id/confirm
func (h *SessionHandler) Confirm(c echo.Context) error {
	return h.respondSnapshot(c, h.navigationUC.Confirm, "Moved on to the next waypoint")
}

// Rebuild handles POST /v1/sessions/:id/rebuild
func (h *SessionHandler) Rebuild(c echo.Context) error {
	return h.respondSnapshot(c, h.navigationUC.Rebuild, "Route rebuild started")
}

// DismissError handles DELETE /v1/sessions/:id/error
func (h *SessionHandler) DismissError(c echo.Context) error {
	return h.respondSnapshot(c, h.navigationUC.DismissError, "Error dismissed")
}

// GetBreadcrumbs handles GET /v1/sessions/:id/breadcrumbs?interval=meters
func (h *SessionHandler) GetBreadcrumbs(c echo.Context) error {
	var interval float64
	if err := echo.QueryParamsBinder(c).Float64("interval", &interval).BindError(); err != nil {
		return handleAppError(c, domainerrors.ErrValidationFailed.WithDetails(bindMessage(err)))
	}
	if math.IsNaN(interval) || math.IsInf(interval, 0) {
		return handleAppError(c, domainerrors.ErrValidationFailed.WithDetails("interval must be a finite number"))
	}

	points, err := h.navigationUC.Breadcrumbs(h.sessionContext(c), c.Param("id"), interval)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, points, "")
}

// ExportRoute handles GET /v1/sessions/:id/route.kml
func (h *SessionHandler) ExportRoute(c echo.Context) error {
	sessionID := c.Param("id")

	var buf bytes.Buffer
	contentType, err := h.navigationUC.ExportRoute(h.sessionContext(c), sessionID, &buf)
	if err != nil {
		return handleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "route-"+sessionID+".kml"))

	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}

// EndSession handles DELETE /v1/sessions/:id
func (h *SessionHandler) EndSession(c echo.Context) error {
	ctx := h.sessionContext(c)
	if err := h.navigationUC.End(ctx, c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Navigation session ended")

	return c.NoContent(http.StatusNoContent)
}

type snapshotFunc func(ctx context.Context, sessionID string) (*usecase.SessionSnapshot, error)

func (h *SessionHandler) respondSnapshot(c echo.Context, fn snapshotFunc, message string) error {
	snapshot, err := fn(h.sessionContext(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot, message)
}

func (h *SessionHandler) sessionContext(c echo.Context) context.Context {
	return deliverycontext.WithSessionID(c.Request().Context(), c.Param("id"))
}
