// Package navigation builds multi-leg routes and tracks a device through them.
package navigation

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"wildnav/internal/domain/entity"
	"wildnav/internal/domain/service"
	"wildnav/internal/errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const defaultMaxConcurrentLegs = 4

// LegOutcome is the result of one leg's directions request.
type LegOutcome struct {
	Index      int
	Leg        *entity.RouteLeg
	Directions *service.Directions
	Err        error
}

// RouteBuilder turns an ordered waypoint list into a route and resolves its legs
// through a DirectionsProvider, one request per leg.
type RouteBuilder struct {
	provider      service.DirectionsProvider
	mode          service.TravelMode
	maxConcurrent int
	logger        *slog.Logger
}

// RouteBuilderOption configures a RouteBuilder.
type RouteBuilderOption func(*RouteBuilder)

// WithMaxConcurrentLegs bounds the number of directions requests in flight.
func WithMaxConcurrentLegs(n int) RouteBuilderOption {
	return func(b *RouteBuilder) {
		if n > 0 {
			b.maxConcurrent = n
		}
	}
}

// WithLogger sets the logger used for per-leg failures.
func WithLogger(logger *slog.Logger) RouteBuilderOption {
	return func(b *RouteBuilder) {
		b.logger = logger
	}
}

func NewRouteBuilder(provider service.DirectionsProvider, opts ...RouteBuilderOption) *RouteBuilder {
	b := &RouteBuilder{
		provider:      provider,
		mode:          service.TravelModeWalking,
		maxConcurrent: defaultMaxConcurrentLegs,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Plan lays out the legs of a route without resolving them: leg 0 runs from origin to
// the first waypoint and leg i from waypoint i-1 to waypoint i. It returns nil when
// there are no waypoints.
func (b *RouteBuilder) Plan(origin entity.Coordinate, waypoints []entity.Waypoint) *entity.Route {
	if len(waypoints) == 0 {
		return nil
	}

	route := &entity.Route{ID: uuid.NewString(), Legs: make([]*entity.RouteLeg, len(waypoints))}
	from := origin
	for i, w := range waypoints {
		route.Legs[i] = &entity.RouteLeg{
			ID:          route.ID + "-" + strconv.Itoa(i),
			WaypointKey: w.Key(),
			From:        from,
			To:          w.Location(),
		}
		from = w.Location()
	}

	return route
}

// Resolve requests directions for every leg concurrently and hands each outcome to
// apply. legs is a snapshot of the route's legs taken by the caller; the route's own
// leg slice may be advanced while Resolve runs. Calls to apply are serialised. Once ctx
// is cancelled no further outcomes are delivered and ctx.Err() is returned; provider
// failures are reported through the outcome only.
func (b *RouteBuilder) Resolve(ctx context.Context, routeID string, legs []*entity.RouteLeg, apply func(LegOutcome)) error {
	if len(legs) == 0 {
		return nil
	}

	type legRequest struct {
		index    int
		leg      *entity.RouteLeg
		from, to entity.Coordinate
	}
	requests := make([]legRequest, len(legs))
	for i, leg := range legs {
		requests[i] = legRequest{index: i, leg: leg, from: leg.From, to: leg.To}
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.maxConcurrent)

	for _, req := range requests {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}

			directions, err := b.provider.GetRoute(gctx, req.from, req.to, b.mode)
			if err == nil && directions == nil {
				err = errors.New("directions provider returned no result")
			}

			mu.Lock()
			defer mu.Unlock()

			// Cancellation is a normal terminal transition, not a leg failure.
			if ctx.Err() != nil {
				return nil
			}
			if err != nil {
				b.logger.Warn("Failed to resolve route leg",
					slog.String("route_id", routeID),
					slog.Int("leg_index", req.index),
					slog.Any("error", err),
				)
			}
			apply(LegOutcome{Index: req.index, Leg: req.leg, Directions: directions, Err: err})

			return nil
		})
	}

	_ = g.Wait()

	return ctx.Err()
}

// Apply stores a successful outcome on its leg, filling distance, time, polyline and
// steps together.
func (o LegOutcome) Apply() {
	if o.Err != nil || o.Directions == nil || o.Leg == nil {
		return
	}

	o.Leg.Resolve(
		o.Directions.DistanceMeters,
		o.Directions.DurationSeconds,
		append([]entity.Coordinate(nil), o.Directions.Polyline...),
		append([]entity.RouteStep(nil), o.Directions.Steps...),
	)
}

// Build plans and resolves a route in one call. Legs that fail stay unresolved and their
// errors are joined into the returned error; the route is returned either way.
func (b *RouteBuilder) Build(ctx context.Context, origin entity.Coordinate, waypoints []entity.Waypoint) (*entity.Route, error) {
	route := b.Plan(origin, waypoints)
	if route == nil {
		return nil, nil
	}

	var legErrs []error
	err := b.Resolve(ctx, route.ID, route.Legs, func(o LegOutcome) {
		if o.Err != nil {
			legErrs = append(legErrs, errors.Wrapf(o.Err, "leg %d", o.Index))

			return
		}
		o.Apply()
	})
	if err != nil {
		return route, errors.WithStack(err)
	}

	return route, errors.Join(legErrs...)
}
