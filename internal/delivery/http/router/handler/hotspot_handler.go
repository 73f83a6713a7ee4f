package handler

import (
	"net/http"
	"strings"
	"time"

	"wildnav/internal/delivery/http/response"
	"wildnav/internal/domain/entity"
	domainerrors "wildnav/internal/domain/errors"
	"wildnav/internal/domain/service"
	"wildnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const geoJSONContentType = "application/geo+json"

type HotspotHandlerParams struct {
	fx.In

	HotspotUC usecase.HotspotUsecase
}

// HotspotHandler serves High Volume Areas and the waypoints derived from them
type HotspotHandler struct {
	hotspotUC usecase.HotspotUsecase
}

func NewHotspotHandler(params HotspotHandlerParams) *HotspotHandler {
	return &HotspotHandler{hotspotUC: params.HotspotUC}
}

// GetHotspots clusters the sightings of a bounding box.
// Query: bbox=w,s,e,n (required), from/to (RFC3339), species (comma separated),
// radius (miles), min (points).
func (h *HotspotHandler) GetHotspots(c echo.Context) error {
	query, err := parseHotspotQuery(c)
	if err != nil {
		return handleAppError(c, err)
	}

	set, err := h.hotspotUC.Hotspots(c.Request().Context(), query)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, set, "Hotspots computed")
}

// GetLayer returns the latest hotspot set as a bare GeoJSON FeatureCollection
func (h *HotspotHandler) GetLayer(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, geoJSONContentType)

	return c.JSON(http.StatusOK, h.hotspotUC.Layer())
}

// GetWaypoints returns hotspots and sightings of a bounding box as navigable waypoints
func (h *HotspotHandler) GetWaypoints(c echo.Context) error {
	query, err := parseHotspotQuery(c)
	if err != nil {
		return handleAppError(c, err)
	}

	waypoints, err := h.hotspotUC.Waypoints(c.Request().Context(), query)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, waypoints, "")
}

func parseHotspotQuery(c echo.Context) (*usecase.HotspotQuery, error) {
	var (
		rawBox    string
		species   string
		radius    float64
		minPoints int
		from, to  time.Time
	)

	err := echo.QueryParamsBinder(c).
		String("bbox", &rawBox).
		String("species", &species).
		Float64("radius", &radius).
		Int("min", &minPoints).
		Time("from", &from, time.RFC3339).
		Time("to", &to, time.RFC3339).
		BindError()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(bindMessage(err))
	}

	if rawBox == "" {
		return nil, domainerrors.ErrInvalidBoundingBox.WithDetails("bbox is required")
	}
	box, err := entity.ParseBoundingBox(rawBox)
	if err != nil {
		return nil, domainerrors.ErrInvalidBoundingBox.WithDetails(err.Error())
	}

	query := &usecase.HotspotQuery{SightingQuery: service.SightingQuery{Box: box}}
	if c.QueryParam("from") != "" {
		query.From = &from
	}
	if c.QueryParam("to") != "" {
		query.To = &to
	}
	for id := range strings.SplitSeq(species, ",") {
		if id = strings.TrimSpace(id); id != "" {
			query.SpeciesIDs = append(query.SpeciesIDs, id)
		}
	}
	if c.QueryParam("radius") != "" {
		query.RadiusMiles = &radius
	}
	if c.QueryParam("min") != "" {
		query.MinPoints = &minPoints
	}

	return query, nil
}
