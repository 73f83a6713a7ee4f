// Package directions selects and assembles the directions provider used for
// route legs.
package directions

import (
	"context"
	"log/slog"

	"wildnav/config"
	"wildnav/internal/domain/constants"
	"wildnav/internal/domain/service"
	"wildnav/internal/infra/directions/cache"
	"wildnav/internal/infra/directions/google"
	"wildnav/internal/infra/directions/pmtiles"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the DirectionsProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.MetricsRecorder `optional:"true"`
}

// NewDirectionsProvider builds the configured provider, instrumented and
// optionally cached:
//
//	cache -> instrumented(name) -> [pmtiles -> straight fallback] | google | straight
func NewDirectionsProvider(params ProviderParams) (service.DirectionsProvider, error) {
	cfg := params.Config.Directions
	logger := params.Logger
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	straight := NewStraightLineProvider(cfg.WalkingSpeedKmh)

	var (
		provider service.DirectionsProvider
		name     = cfg.Provider
	)

	switch cfg.Provider {
	case constants.DirectionsProviderGoogle:
		client, err := google.NewClient(cfg.Google, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Google Routes directions provider")
		provider = client

	case constants.DirectionsProviderPMTiles:
		router, err := pmtiles.NewProvider(cfg, logger)
		if err != nil {
			return nil, err
		}
		provider = NewFallbackProvider(router, straight, logger)

	case "", constants.DirectionsProviderStraight:
		logger.Info("Using straight line directions provider")
		provider = straight
		name = constants.DirectionsProviderStraight

	default:
		return nil, errors.Errorf("unknown directions provider: %s", cfg.Provider)
	}

	provider = NewInstrumentedProvider(provider, name, metrics)

	if cfg.Cache == nil || !cfg.Cache.Enabled {
		return provider, nil
	}

	store, err := cache.NewValkeyStore(cfg.Cache.Address)
	if err != nil {
		return nil, err
	}
	logger.Info("Directions cache enabled",
		slog.String("address", cfg.Cache.Address),
		slog.Duration("ttl", cfg.Cache.TTL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing directions cache")
			store.Close()

			return nil
		},
	})

	return cache.NewCachedProvider(provider, store, cfg.Cache.TTL, metrics, logger), nil
}

// Module provides the directions FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDirectionsProvider),
)
