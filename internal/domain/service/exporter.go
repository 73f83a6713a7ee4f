package service

import (
	"io"

	"wildnav/internal/domain/entity"
)

// RouteExporter renders a route and its waypoints in an exchange format
type RouteExporter interface {
	// ExportRoute writes the document to w
	ExportRoute(w io.Writer, name string, route *entity.Route, waypoints []entity.Waypoint) error

	// ContentType is the media type of the written document
	ContentType() string
}
