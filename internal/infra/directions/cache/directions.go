package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"wildnav/internal/domain/entity"
	"wildnav/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	keyPrefix  = "wildnav:directions:"
	DefaultTTL = 24 * time.Hour
)

// cachedProvider serves repeated leg requests from the store. Store failures
// are logged and fall through to the wrapped provider.
type cachedProvider struct {
	next    service.DirectionsProvider
	store   Store
	ttl     time.Duration
	metrics service.MetricsRecorder
	logger  *slog.Logger
}

// NewCachedProvider wraps next with a read-through cache
func NewCachedProvider(next service.DirectionsProvider, store Store, ttl time.Duration, metrics service.MetricsRecorder, logger *slog.Logger) service.DirectionsProvider {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	return &cachedProvider{
		next:    next,
		store:   store,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// Key rounds both ends to 5 decimal places (~1m) so that GPS jitter still hits.
func Key(from, to entity.Coordinate, mode service.TravelMode) string {
	return fmt.Sprintf("%s%s:%.5f,%.5f:%.5f,%.5f", keyPrefix, mode,
		from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

func (p *cachedProvider) GetRoute(ctx context.Context, from, to entity.Coordinate, mode service.TravelMode) (*service.Directions, error) {
	key := Key(from, to, mode)

	raw, err := p.store.Get(ctx, key)
	switch {
	case err == nil:
		var dirs service.Directions
		if jsonErr := json.Unmarshal(raw, &dirs); jsonErr == nil {
			p.metrics.ObserveDirectionsCache(true)

			return &dirs, nil
		}
		p.logger.Warn("Discarding undecodable cached directions", slog.String("key", key))
	case !errors.Is(err, ErrMiss):
		p.logger.Warn("Directions cache read failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
	p.metrics.ObserveDirectionsCache(false)

	dirs, err := p.next.GetRoute(ctx, from, to, mode)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(dirs); err == nil {
		if err := p.store.Set(ctx, key, payload, p.ttl); err != nil {
			p.logger.Warn("Directions cache write failed",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}

	return dirs, nil
}
