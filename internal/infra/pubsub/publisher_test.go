package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"wildnav/config"
	"wildnav/internal/domain/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.NavigationEvent {
	return &service.NavigationEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		SessionID:   "sess-1",
		UserID:      "user-1",
		Type:        service.NavigationEventArrived,
		WaypointKey: "s-42",
		Title:       "Red Fox",
		LegIndex:    1,
		Latitude:    51.5,
		Longitude:   -0.12,
		OccurredAt:  time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestNewEventPublisher_NotConfigured(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishNavigationEvent(context.Background(), testEvent()))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}},
		{name: "nats without url", cfg: &config.PubSubConfig{Provider: "nats"}},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			assert.Error(t, err)
		})
	}
}

func TestLocalHTTPPublisher_PublishNavigationEvent(t *testing.T) {
	received := make(chan PushMessage, 1)
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")

		var msg PushMessage
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		received <- msg

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	require.NoError(t, publisher.PublishNavigationEvent(context.Background(), testEvent()))

	msg := <-received
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", msg.Message.MessageID)
	assert.Equal(t, "sess-1", msg.Message.Attributes["session_id"])
	assert.Equal(t, "arrived", msg.Message.Attributes["type"])

	raw, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	require.NoError(t, err)

	var event service.NavigationEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	assert.Error(t, publisher.PublishNavigationEvent(context.Background(), testEvent()))
}

type fakeConn struct {
	published []*nats.Msg
	err       error
	drained   bool
}

func (c *fakeConn) PublishMsg(msg *nats.Msg) error {
	if c.err != nil {
		return c.err
	}
	c.published = append(c.published, msg)

	return nil
}

func (c *fakeConn) Drain() error {
	c.drained = true

	return nil
}

func TestNATSPublisher_PublishNavigationEvent(t *testing.T) {
	conn := &fakeConn{}
	publisher := newNATSPublisher(conn, "", discardLogger())

	require.NoError(t, publisher.PublishNavigationEvent(context.Background(), testEvent()))
	require.Len(t, conn.published, 1)

	msg := conn.published[0]
	assert.Equal(t, "wildnav.navigation.arrived", msg.Subject)
	assert.Equal(t, "sess-1", msg.Header.Get("session_id"))
	assert.Equal(t, "req-1", msg.Header.Get("request_id"))

	var event service.NavigationEvent
	require.NoError(t, json.Unmarshal(msg.Data, &event))
	assert.Equal(t, "s-42", event.WaypointKey)

	require.NoError(t, publisher.Close())
	assert.True(t, conn.drained)
}

func TestNATSPublisher_Failures(t *testing.T) {
	conn := &fakeConn{err: errors.New("nats: connection closed")}
	publisher := newNATSPublisher(conn, "trail.events", discardLogger())

	assert.Error(t, publisher.PublishNavigationEvent(context.Background(), testEvent()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, publisher.PublishNavigationEvent(ctx, testEvent()), context.Canceled)
}
