package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"wildnav/internal/domain/service"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

const defaultSubject = "wildnav.navigation"

// natsConn is the part of *nats.Conn the publisher needs
type natsConn interface {
	PublishMsg(msg *nats.Msg) error
	Drain() error
}

// natsPublisher implements EventPublisher on core NATS. Events go to
// "<subject>.<type>" so consumers can subscribe per event type.
type natsPublisher struct {
	conn    natsConn
	subject string
	logger  *slog.Logger
}

// NewNATSPublisher connects to the NATS server at url
func NewNATSPublisher(url, subject string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("wildnav"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, errors.Wrap(err, "nats connect")
	}

	logger.Info("NATS publisher initialized",
		slog.String("url", url),
		slog.String("subject", subject),
	)

	return newNATSPublisher(conn, subject, logger), nil
}

func newNATSPublisher(conn natsConn, subject string, logger *slog.Logger) *natsPublisher {
	if subject == "" {
		subject = defaultSubject
	}

	return &natsPublisher{conn: conn, subject: subject, logger: logger}
}

// PublishNavigationEvent publishes the JSON event with tracing headers
func (p *natsPublisher) PublishNavigationEvent(ctx context.Context, event *service.NavigationEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := nats.NewMsg(p.subject + "." + string(event.Type))
	msg.Data = data
	for k, v := range attributes(event) {
		msg.Header.Set(k, v)
	}

	if err := p.conn.PublishMsg(msg); err != nil {
		return errors.Wrapf(err, "publish %s", msg.Subject)
	}

	p.logger.Debug("[NATS] Event published",
		slog.String("subject", msg.Subject),
		slog.String("event_id", event.EventID),
	)

	return nil
}

// Close drains pending messages and closes the connection
func (p *natsPublisher) Close() error {
	return errors.WithStack(p.conn.Drain())
}
