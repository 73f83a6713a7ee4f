package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotEmpty(t, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestWithSessionID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithSessionID(WithLogger(context.Background(), logger), "sess-1")
	assert.Equal(t, "sess-1", GetSessionIDFromContext(ctx))

	GetLoggerOrDefault(ctx, slog.Default()).Info("hello")
	assert.Contains(t, buf.String(), "session_id=sess-1")
}

func TestWithSessionID_NoLogger(t *testing.T) {
	ctx := WithSessionID(context.Background(), "sess-1")

	assert.Nil(t, GetLogger(ctx))
	fallback := slog.Default()
	require.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
}
