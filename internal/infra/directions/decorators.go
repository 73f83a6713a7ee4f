package directions

import (
	"context"
	"log/slog"
	"time"

	"wildnav/internal/domain/entity"
	domainerrors "wildnav/internal/domain/errors"
	"wildnav/internal/domain/service"
	"wildnav/internal/errors"
)

// instrumentedProvider records latency and outcome of every request
type instrumentedProvider struct {
	next    service.DirectionsProvider
	name    string
	metrics service.MetricsRecorder
}

// NewInstrumentedProvider reports each call of next to metrics under name
func NewInstrumentedProvider(next service.DirectionsProvider, name string, metrics service.MetricsRecorder) service.DirectionsProvider {
	return &instrumentedProvider{next: next, name: name, metrics: metrics}
}

func (p *instrumentedProvider) GetRoute(ctx context.Context, from, to entity.Coordinate, mode service.TravelMode) (*service.Directions, error) {
	start := time.Now()
	dirs, err := p.next.GetRoute(ctx, from, to, mode)
	p.metrics.ObserveDirections(p.name, time.Since(start), err)

	return dirs, err
}

// fallbackProvider answers with a secondary provider when the primary finds no path
type fallbackProvider struct {
	primary  service.DirectionsProvider
	fallback service.DirectionsProvider
	logger   *slog.Logger
}

// NewFallbackProvider tries primary first and uses fallback on ErrNoPathFound
func NewFallbackProvider(primary, fallback service.DirectionsProvider, logger *slog.Logger) service.DirectionsProvider {
	return &fallbackProvider{primary: primary, fallback: fallback, logger: logger}
}

func (p *fallbackProvider) GetRoute(ctx context.Context, from, to entity.Coordinate, mode service.TravelMode) (*service.Directions, error) {
	dirs, err := p.primary.GetRoute(ctx, from, to, mode)
	if err == nil || !errors.Is(err, domainerrors.ErrNoPathFound) {
		return dirs, err
	}

	p.logger.Debug("No path on network, using straight line",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Any("error", err),
	)

	return p.fallback.GetRoute(ctx, from, to, mode)
}
