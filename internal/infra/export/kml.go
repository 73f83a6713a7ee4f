// Package export renders navigation routes in exchange formats.
package export

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"wildnav/internal/domain/entity"
	"wildnav/internal/domain/service"
	"wildnav/internal/errors"

	"github.com/twpayne/go-kml"
)

const (
	resolvedLegStyleID = "leg-resolved"
	pendingLegStyleID  = "leg-pending"
	waypointStyleID    = "waypoint"
)

//nolint:gochecknoglobals
var (
	resolvedLegColor = color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	pendingLegColor  = color.RGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}
)

// RouteDocument is the input of WriteRouteKML.
type RouteDocument struct {
	Name      string
	Route     *entity.Route
	Waypoints []entity.Waypoint
}

// WriteRouteKML writes doc as an indented KML document: one LineString placemark per
// leg and one Point placemark per waypoint. Unresolved legs are drawn as a straight
// line between their ends with the pending style.
func WriteRouteKML(w io.Writer, doc RouteDocument) error {
	children := []kml.Element{
		kml.Name(doc.Name),
		kml.SharedStyle(resolvedLegStyleID,
			kml.LineStyle(kml.Color(resolvedLegColor), kml.Width(4)),
		),
		kml.SharedStyle(pendingLegStyleID,
			kml.LineStyle(kml.Color(pendingLegColor), kml.Width(2)),
		),
		kml.SharedStyle(waypointStyleID,
			kml.IconStyle(kml.Color(resolvedLegColor)),
		),
	}

	if doc.Route != nil && len(doc.Route.Legs) > 0 {
		legs := kml.Folder(kml.Name("Legs"))
		for i, leg := range doc.Route.Legs {
			legs.Add(legPlacemark(i, leg))
		}
		children = append(children, legs)
	}

	if len(doc.Waypoints) > 0 {
		waypoints := kml.Folder(kml.Name("Waypoints"))
		for _, wp := range doc.Waypoints {
			loc := wp.Location()
			waypoints.Add(kml.Placemark(
				kml.Name(wp.Title()),
				kml.Description(wp.Key()),
				kml.StyleURL("#"+waypointStyleID),
				kml.Point(kml.Coordinates(kml.Coordinate{Lon: loc.Longitude, Lat: loc.Latitude})),
			))
		}
		children = append(children, waypoints)
	}

	if err := kml.KML(kml.Document(children...)).WriteIndent(w, "", "  "); err != nil {
		return errors.Wrap(err, "write kml")
	}

	return nil
}

func legPlacemark(i int, leg *entity.RouteLeg) *kml.CompoundElement {
	path := leg.Polyline
	style := resolvedLegStyleID
	description := "Unresolved"
	if !leg.Resolved() || len(path) < 2 {
		path = []entity.Coordinate{leg.From, leg.To}
		style = pendingLegStyleID
	}
	if leg.Resolved() {
		description = fmt.Sprintf("%.0f m, %.0f s", *leg.DistanceMeters, *leg.TravelTimeSeconds)
	}

	coords := make([]kml.Coordinate, len(path))
	for j, c := range path {
		coords[j] = kml.Coordinate{Lon: c.Longitude, Lat: c.Latitude}
	}

	return kml.Placemark(
		kml.Name("Leg "+strconv.Itoa(i+1)),
		kml.Description(description),
		kml.StyleURL("#"+style),
		kml.LineString(
			kml.Tessellate(true),
			kml.Coordinates(coords...),
		),
	)
}

// KMLContentType is the media type of KML documents.
const KMLContentType = "application/vnd.google-earth.kml+xml"

type kmlExporter struct{}

// NewKMLExporter returns a RouteExporter writing KML.
func NewKMLExporter() service.RouteExporter {
	return kmlExporter{}
}

func (kmlExporter) ExportRoute(w io.Writer, name string, route *entity.Route, waypoints []entity.Waypoint) error {
	return WriteRouteKML(w, RouteDocument{Name: name, Route: route, Waypoints: waypoints})
}

func (kmlExporter) ContentType() string {
	return KMLContentType
}
