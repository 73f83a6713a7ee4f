package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wildnav/internal/delivery/http/response"
	"wildnav/internal/delivery/http/validator"
	"wildnav/internal/domain/entity"
	domainerrors "wildnav/internal/domain/errors"
	mockUsecase "wildnav/internal/mocks/usecase"
	"wildnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHotspotHandler_GetHotspots(t *testing.T) {
	hotspotUC := mockUsecase.NewMockHotspotUsecase(t)
	h := NewHotspotHandler(HotspotHandlerParams{HotspotUC: hotspotUC})
	e := newTestServer()
	e.GET("/v1/hotspots", h.GetHotspots)

	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	set := &usecase.HotspotSet{
		Hotspots:      []entity.Hotspot{{ID: "hva-1", Name: "Heron (5)", DensityScore: 5}},
		SightingCount: 7,
	}

	hotspotUC.EXPECT().
		Hotspots(mock.Anything, mock.MatchedBy(func(q *usecase.HotspotQuery) bool {
			return q.Box == entity.BoundingBox{West: -122.5, South: 37.7, East: -122.3, North: 37.9} &&
				q.From != nil && q.From.Equal(from) &&
				q.To == nil &&
				assert.ObjectsAreEqual([]string{"heron", "egret"}, q.SpeciesIDs) &&
				q.RadiusMiles != nil && *q.RadiusMiles == 0.2 &&
				q.MinPoints == nil
		})).
		Return(set, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/v1/hotspots?bbox=-122.5,37.7,-122.3,37.9&from=2024-04-01T00:00:00Z&species=heron,%20egret,&radius=0.2", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.True(t, body.Success)
	assert.Contains(t, rec.Body.String(), `"id":"hva-1"`)
	assert.Contains(t, rec.Body.String(), `"sighting_count":7`)
}

func TestHotspotHandler_GetHotspots_BadRequests(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantCode string
	}{
		{
			name:     "missing bbox",
			url:      "/v1/hotspots",
			wantCode: "INVALID_BOUNDING_BOX",
		},
		{
			name:     "malformed bbox",
			url:      "/v1/hotspots?bbox=1,2,3",
			wantCode: "INVALID_BOUNDING_BOX",
		},
		{
			name:     "inverted bbox",
			url:      "/v1/hotspots?bbox=10,0,5,1",
			wantCode: "INVALID_BOUNDING_BOX",
		},
		{
			name:     "bad radius",
			url:      "/v1/hotspots?bbox=0,0,1,1&radius=wide",
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "bad time",
			url:      "/v1/hotspots?bbox=0,0,1,1&from=yesterday",
			wantCode: "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHotspotHandler(HotspotHandlerParams{HotspotUC: mockUsecase.NewMockHotspotUsecase(t)})
			e := newTestServer()
			e.GET("/v1/hotspots", h.GetHotspots)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeResponse(t, rec)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHotspotHandler_GetHotspots_FetchFailure(t *testing.T) {
	hotspotUC := mockUsecase.NewMockHotspotUsecase(t)
	h := NewHotspotHandler(HotspotHandlerParams{HotspotUC: hotspotUC})
	e := newTestServer()
	e.GET("/v1/hotspots", h.GetHotspots)

	hotspotUC.EXPECT().Hotspots(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrSightingFetchFailed.WithDetails("timeout"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/hotspots?bbox=0,0,1,1", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "SIGHTING_FETCH_FAILED", decodeResponse(t, rec).Error.Code)
}

func TestHotspotHandler_GetLayer(t *testing.T) {
	hotspotUC := mockUsecase.NewMockHotspotUsecase(t)
	h := NewHotspotHandler(HotspotHandlerParams{HotspotUC: hotspotUC})
	e := newTestServer()
	e.GET("/v1/hotspots/layer", h.GetLayer)

	fc := geojson.NewFeatureCollection()
	f := geojson.NewFeature(orb.Point{-122.4, 37.8})
	f.Properties["name"] = "Heron (5)"
	fc.Append(f)
	hotspotUC.EXPECT().Layer().Return(fc)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/hotspots/layer", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, geoJSONContentType, rec.Header().Get(echo.HeaderContentType))

	decoded, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, decoded.Features, 1)
	assert.Equal(t, "Heron (5)", decoded.Features[0].Properties["name"])
}

func TestHotspotHandler_GetWaypoints(t *testing.T) {
	hotspotUC := mockUsecase.NewMockHotspotUsecase(t)
	h := NewHotspotHandler(HotspotHandlerParams{HotspotUC: hotspotUC})
	e := newTestServer()
	e.GET("/v1/waypoints", h.GetWaypoints)

	hotspotUC.EXPECT().Waypoints(mock.Anything, mock.Anything).Return([]entity.Waypoint{
		entity.NewHotspotWaypoint(entity.Hotspot{ID: "hva-1", Name: "Heron (5)"}),
		entity.NewSightingWaypoint(entity.Sighting{ID: "42", SpeciesName: "Great Egret"}),
	}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/waypoints?bbox=0,0,1,1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []entity.WaypointView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "h-hva-1", body.Data[0].Key)
	assert.Equal(t, entity.WaypointKindSighting, body.Data[1].Kind)
	assert.Equal(t, "Great Egret", body.Data[1].Title)
}
