// Package pmtiles computes offline walking directions over the path network
// stored in a PMTiles vector tile archive.
package pmtiles

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"wildnav/config"
	"wildnav/internal/domain/entity"
	domainerrors "wildnav/internal/domain/errors"
	"wildnav/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
	"github.com/protomaps/go-pmtiles/pmtiles"
)

const (
	defaultRoadLayer     = "transportation"
	defaultZoom          = 14
	defaultMaxSnapMeters = 300.0
	defaultSpeedKmh      = 5.0
	areaPadding          = 0.005 // ~500m at the equator
	snapCellMeters       = 50.0
	maxCachedTiles       = 256
	defaultMaxTiles      = 64
)

// ErrTileNotFound is returned by a TileSource for tiles missing from the archive
var ErrTileNotFound = errors.New("tile not found")

// TileSource returns raw MVT tile bytes
type TileSource interface {
	Tile(ctx context.Context, tile maptile.Tile) ([]byte, error)
}

// serverSource reads tiles through a pmtiles.Server, which handles local
// files, HTTP and cloud buckets with range requests.
type serverSource struct {
	server  *pmtiles.Server
	tileset string
}

// NewServerSource opens a PMTiles archive given as a path or URL
func NewServerSource(source string) (TileSource, error) {
	if source == "" {
		return nil, errors.New("pmtiles source is required")
	}

	bucket, tileset := parseSourcePath(source)

	server, err := pmtiles.NewServer(bucket, "", log.New(io.Discard, "", 0), 64, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PMTiles server")
	}
	server.Start()

	return &serverSource{server: server, tileset: tileset}, nil
}

func (s *serverSource) Tile(ctx context.Context, tile maptile.Tile) ([]byte, error) {
	status, _, data := s.server.Get(ctx, fmt.Sprintf("/%s/%d/%d/%d.mvt", s.tileset, tile.Z, tile.X, tile.Y))

	switch status {
	case http.StatusOK:
		return data, nil
	case http.StatusNoContent, http.StatusNotFound:
		return nil, ErrTileNotFound
	default:
		return nil, errors.Errorf("unexpected status code: %d", status)
	}
}

// parseSourcePath splits a source into the bucket directory and tileset name.
//   - "file:///data/walking.pmtiles" -> ("file:///data", "walking")
//   - "/data/walking.pmtiles" -> ("file:///data", "walking")
//   - "https://example.com/tiles/walking.pmtiles" -> ("https://example.com/tiles", "walking")
func parseSourcePath(source string) (bucket, tileset string) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") ||
		strings.HasPrefix(source, "gs://") || strings.HasPrefix(source, "s3://") {
		if i := strings.LastIndex(source, "/"); i > strings.Index(source, "://")+2 {
			return source[:i], strings.TrimSuffix(source[i+1:], ".pmtiles")
		}
	}

	path := strings.TrimPrefix(source, "file://")

	return "file://" + filepath.Dir(path), strings.TrimSuffix(filepath.Base(path), ".pmtiles")
}

// Options tune the router
type Options struct {
	RoadLayer             string
	ZoomLevel             int
	MaxSnapDistanceMeters float64
	WalkingSpeedKmh       float64
	// MaxTiles caps the tiles loaded for one leg; larger areas get ErrNoPathFound
	MaxTiles int
}

type router struct {
	tiles           TileSource
	parser          *TileParser
	zoom            maptile.Zoom
	maxSnap         float64
	maxTiles        int
	metersPerSecond float64
	logger          *slog.Logger

	mu        sync.RWMutex
	tileCache map[maptile.Tile]*WalkGraph
}

// NewRouter creates a walking directions provider over a tile source
func NewRouter(tiles TileSource, opts Options, logger *slog.Logger) service.DirectionsProvider {
	if opts.RoadLayer == "" {
		opts.RoadLayer = defaultRoadLayer
	}
	if opts.ZoomLevel <= 0 {
		opts.ZoomLevel = defaultZoom
	}
	if opts.MaxSnapDistanceMeters <= 0 {
		opts.MaxSnapDistanceMeters = defaultMaxSnapMeters
	}
	if opts.WalkingSpeedKmh <= 0 {
		opts.WalkingSpeedKmh = defaultSpeedKmh
	}
	if opts.MaxTiles <= 0 {
		opts.MaxTiles = defaultMaxTiles
	}

	return &router{
		tiles:           tiles,
		parser:          NewTileParser(opts.RoadLayer),
		zoom:            maptile.Zoom(opts.ZoomLevel),
		maxSnap:         opts.MaxSnapDistanceMeters,
		maxTiles:        opts.MaxTiles,
		metersPerSecond: opts.WalkingSpeedKmh * 1000 / 3600,
		logger:          logger,
		tileCache:       make(map[maptile.Tile]*WalkGraph),
	}
}

// NewProvider opens the configured archive and returns a router over it
func NewProvider(cfg *config.DirectionsConfig, logger *slog.Logger) (service.DirectionsProvider, error) {
	if cfg == nil || cfg.PMTiles == nil {
		return nil, errors.New("pmtiles directions config is required")
	}

	tiles, err := NewServerSource(cfg.PMTiles.Source)
	if err != nil {
		return nil, err
	}

	logger.Info("PMTiles walking router initialized",
		slog.String("source", cfg.PMTiles.Source),
		slog.String("road_layer", cfg.PMTiles.RoadLayer),
		slog.Int("zoom_level", cfg.PMTiles.ZoomLevel),
	)

	return NewRouter(tiles, Options{
		RoadLayer:             cfg.PMTiles.RoadLayer,
		ZoomLevel:             cfg.PMTiles.ZoomLevel,
		MaxSnapDistanceMeters: cfg.PMTiles.MaxSnapDistanceMeters,
		WalkingSpeedKmh:       cfg.WalkingSpeedKmh,
		MaxTiles:              cfg.PMTiles.MaxTiles,
	}, logger), nil
}

// GetRoute snaps both ends onto the path network and walks the shortest path
// between them. Snap distances are included in the reported distance.
func (r *router) GetRoute(ctx context.Context, from, to entity.Coordinate, _ service.TravelMode) (*service.Directions, error) {
	if !from.Valid() || !to.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails(fmt.Sprintf("%s -> %s", from, to))
	}

	graph, err := r.graphFor(ctx, orb.Bound{Min: from.Point(), Max: from.Point()}.Extend(to.Point()).Pad(areaPadding))
	if err != nil {
		return nil, err
	}
	if graph.NodeCount() == 0 {
		return nil, domainerrors.ErrNoPathFound.WithDetails("no path network around " + from.String())
	}

	index := newNodeIndex(graph, snapCellMeters)

	source, snapFrom, _ := index.Nearest(from.Point())
	target, snapTo, _ := index.Nearest(to.Point())
	if snapFrom > r.maxSnap || snapTo > r.maxSnap {
		return nil, domainerrors.ErrNoPathFound.WithDetails(
			fmt.Sprintf("nearest path is %.0fm/%.0fm away", snapFrom, snapTo))
	}

	path, ok := graph.ShortestPath(source, target)
	if !ok {
		return nil, domainerrors.ErrNoPathFound.WithDetails(fmt.Sprintf("%s -> %s", from, to))
	}

	distance := snapFrom + path.Distance + snapTo

	return &service.Directions{
		DistanceMeters:  distance,
		DurationSeconds: distance / r.metersPerSecond,
		Polyline:        polyline(from, path.Points, to),
		Steps:           steps(path.Steps, snapFrom, snapTo),
	}, nil
}

func polyline(from entity.Coordinate, points []orb.Point, to entity.Coordinate) []entity.Coordinate {
	out := make([]entity.Coordinate, 0, len(points)+2)
	appendUnique := func(c entity.Coordinate) {
		if n := len(out); n > 0 && out[n-1] == c {
			return
		}
		out = append(out, c)
	}

	appendUnique(from)
	for _, p := range points {
		appendUnique(entity.FromPoint(p))
	}
	appendUnique(to)

	return out
}

func steps(runs []PathStep, snapFrom, snapTo float64) []entity.RouteStep {
	if len(runs) == 0 {
		return []entity.RouteStep{{Instruction: "Walk to the destination", DistanceMeters: snapFrom + snapTo}}
	}

	out := make([]entity.RouteStep, len(runs))
	for i, run := range runs {
		instruction := "Continue along the path"
		if run.Name != "" {
			instruction = "Continue on " + run.Name
		}
		if i == 0 {
			instruction = strings.Replace(instruction, "Continue", "Walk", 1)
		}
		out[i] = entity.RouteStep{Instruction: instruction, DistanceMeters: run.Distance}
	}
	out[0].DistanceMeters += snapFrom
	out[len(out)-1].DistanceMeters += snapTo

	return out
}

// graphFor merges the walk graphs of every tile covering the bound.
// Tiles that fail to load are skipped.
func (r *router) graphFor(ctx context.Context, bound orb.Bound) (*WalkGraph, error) {
	minTile := maptile.At(orb.Point{bound.Min.Lon(), bound.Max.Lat()}, r.zoom)
	maxTile := maptile.At(orb.Point{bound.Max.Lon(), bound.Min.Lat()}, r.zoom)

	count := (uint64(maxTile.X-minTile.X) + 1) * (uint64(maxTile.Y-minTile.Y) + 1)
	if count > uint64(r.maxTiles) {
		return nil, domainerrors.ErrNoPathFound.WithDetails(
			fmt.Sprintf("leg spans %d tiles at zoom %d, limit is %d", count, r.zoom, r.maxTiles))
	}

	graph := NewWalkGraph()
	for x := minTile.X; x <= maxTile.X; x++ {
		for y := minTile.Y; y <= maxTile.Y; y++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			tile := maptile.Tile{X: x, Y: y, Z: r.zoom}
			tileGraph, err := r.tileGraph(ctx, tile)
			if err != nil {
				if !errors.Is(err, ErrTileNotFound) {
					r.logger.Debug("Failed to load tile",
						slog.String("tile", fmt.Sprintf("%d/%d/%d", tile.Z, tile.X, tile.Y)),
						slog.Any("error", err),
					)
				}

				continue
			}
			graph.Merge(tileGraph)
		}
	}

	return graph, nil
}

func (r *router) tileGraph(ctx context.Context, tile maptile.Tile) (*WalkGraph, error) {
	r.mu.RLock()
	graph, ok := r.tileCache[tile]
	r.mu.RUnlock()
	if ok {
		return graph, nil
	}

	data, err := r.tiles.Tile(ctx, tile)
	if err != nil {
		return nil, err
	}

	segments, err := r.parser.Parse(data, tile)
	if err != nil {
		return nil, err
	}

	graph = NewWalkGraph()
	for i := range segments {
		graph.AddSegment(&segments[i])
	}

	r.mu.Lock()
	if len(r.tileCache) >= maxCachedTiles {
		clear(r.tileCache)
	}
	r.tileCache[tile] = graph
	r.mu.Unlock()

	return graph, nil
}
