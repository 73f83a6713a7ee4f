package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockUsecase "wildnav/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_HealthCheck(t *testing.T) {
	navigationUC := mockUsecase.NewMockNavigationUsecase(t)
	navigationUC.EXPECT().ActiveSessions().Return(3)

	h := NewHealthHandler(HealthHandlerParams{NavigationUC: navigationUC})
	e := newTestServer()
	e.GET("/health", h.HealthCheck)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"code": 200,
		"message": "Service is healthy",
		"data": {"status": "ok", "active_sessions": 3}
	}`, rec.Body.String())
}
