package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"wildnav/internal/domain/entity"
	"wildnav/internal/domain/service"
	"wildnav/internal/errors"
	"wildnav/internal/infra/directions"
	"wildnav/internal/infra/directions/pmtiles"
	"wildnav/internal/infra/export"
	"wildnav/internal/navigation"
	"wildnav/internal/util"
)

type planOptions struct {
	Source         string
	RoadLayer      string
	Zoom           int
	SpeedKmh       float64
	From           string
	Waypoints      []string
	KMLPath        string
	MaxConcurrency int
}

func runPlan(ctx context.Context, out io.Writer, opts planOptions) error {
	origin, err := parseCoordinate(opts.From)
	if err != nil {
		return errors.Wrap(err, "origin")
	}

	waypoints := make([]entity.Waypoint, 0, len(opts.Waypoints))
	for i, raw := range opts.Waypoints {
		c, err := parseCoordinate(raw)
		if err != nil {
			return errors.Wrapf(err, "waypoint %d", i+1)
		}
		waypoints = append(waypoints, entity.NewSightingWaypoint(entity.Sighting{
			ID:          strconv.Itoa(i + 1),
			SpeciesName: fmt.Sprintf("Waypoint %d", i+1),
			Coordinate:  c,
		}))
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	provider, err := newProvider(opts, logger)
	if err != nil {
		return err
	}

	builder := navigation.NewRouteBuilder(provider,
		navigation.WithMaxConcurrentLegs(opts.MaxConcurrency),
		navigation.WithLogger(logger),
	)
	route, buildErr := builder.Build(ctx, origin, waypoints)
	if route == nil {
		return errors.Wrap(buildErr, "build route")
	}

	printRoute(out, route)
	if buildErr != nil {
		fmt.Fprintf(out, "\n%d of %d legs could not be resolved: %v\n",
			len(route.Legs)-route.ResolvedCount(), len(route.Legs), buildErr)
	}

	if opts.KMLPath != "" {
		if err := writeKML(opts.KMLPath, route, waypoints); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nKML written to %s\n", opts.KMLPath)
	}

	return nil
}

// newProvider uses the PMTiles router with a straight-line fallback when a source is
// given, straight lines otherwise.
func newProvider(opts planOptions, logger *slog.Logger) (service.DirectionsProvider, error) {
	straight := directions.NewStraightLineProvider(opts.SpeedKmh)
	if opts.Source == "" {
		return straight, nil
	}

	tiles, err := pmtiles.NewServerSource(opts.Source)
	if err != nil {
		return nil, err
	}

	router := pmtiles.NewRouter(tiles, pmtiles.Options{
		RoadLayer:       opts.RoadLayer,
		ZoomLevel:       opts.Zoom,
		WalkingSpeedKmh: opts.SpeedKmh,
	}, logger)

	return directions.NewFallbackProvider(router, straight, logger), nil
}

func printRoute(out io.Writer, route *entity.Route) {
	fmt.Fprintf(out, "Route %s: %d legs\n", route.ID, len(route.Legs))
	for i, leg := range route.Legs {
		if !leg.Resolved() {
			fmt.Fprintf(out, "  %d. %s -> %s  unresolved\n", i+1, leg.From, leg.To)

			continue
		}

		fmt.Fprintf(out, "  %d. %s -> %s  %s, %s\n", i+1, leg.From, leg.To,
			util.FormatDistance(*leg.DistanceMeters),
			util.FormatDuration(util.Seconds(*leg.TravelTimeSeconds)),
		)
		for _, step := range leg.Steps {
			fmt.Fprintf(out, "       %s (%s)\n", step.Instruction, util.FormatDistance(step.DistanceMeters))
		}
	}

	fmt.Fprintf(out, "Total: %s, %s\n",
		util.FormatDistance(route.TotalDistance()),
		util.FormatDuration(util.Seconds(route.TotalExpectedTime())),
	)
}

func writeKML(path string, route *entity.Route, waypoints []entity.Waypoint) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create kml file")
	}
	defer file.Close()

	return export.WriteRouteKML(file, export.RouteDocument{
		Name:      "Wildnav route " + route.ID,
		Route:     route,
		Waypoints: waypoints,
	})
}

// parseCoordinate parses "lat,lon".
func parseCoordinate(raw string) (entity.Coordinate, error) {
	lat, lon, ok := strings.Cut(raw, ",")
	if !ok {
		return entity.Coordinate{}, errors.Errorf("coordinate %q must be lat,lon", raw)
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrapf(err, "latitude %q", lat)
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrapf(err, "longitude %q", lon)
	}

	c := entity.Coordinate{Latitude: latitude, Longitude: longitude}
	if !c.Valid() {
		return entity.Coordinate{}, errors.Errorf("coordinate %q is out of range", raw)
	}

	return c, nil
}
