package entity

// RouteStep is a single textual instruction of a leg.
type RouteStep struct {
	Instruction    string  `json:"instruction"`
	DistanceMeters float64 `json:"distance_meters"`
}

// RouteLeg is one point-to-point segment of a route. Only From/To are known
// when the leg is planned; the remaining fields are filled in together once
// directions arrive.
type RouteLeg struct {
	ID                string       `json:"id"`
	WaypointKey       string       `json:"waypoint_key"`
	From              Coordinate   `json:"from"`
	To                Coordinate   `json:"to"`
	DistanceMeters    *float64     `json:"distance_meters,omitempty"`
	TravelTimeSeconds *float64     `json:"travel_time_seconds,omitempty"`
	Polyline          []Coordinate `json:"polyline,omitempty"`
	Steps             []RouteStep  `json:"steps,omitempty"`
}

// Resolve stores a directions result on the leg.
func (l *RouteLeg) Resolve(distanceMeters, travelTimeSeconds float64, polyline []Coordinate, steps []RouteStep) {
	l.DistanceMeters = &distanceMeters
	l.TravelTimeSeconds = &travelTimeSeconds
	l.Polyline = polyline
	l.Steps = steps
}

// Resolved reports whether directions have been stored on the leg.
func (l *RouteLeg) Resolved() bool {
	return l.DistanceMeters != nil
}

func (l *RouteLeg) clone() *RouteLeg {
	c := *l
	if l.DistanceMeters != nil {
		d := *l.DistanceMeters
		c.DistanceMeters = &d
	}
	if l.TravelTimeSeconds != nil {
		t := *l.TravelTimeSeconds
		c.TravelTimeSeconds = &t
	}
	c.Polyline = append([]Coordinate(nil), l.Polyline...)
	c.Steps = append([]RouteStep(nil), l.Steps...)

	return &c
}

// Route is an ordered sequence of contiguous legs.
type Route struct {
	ID   string      `json:"id"`
	Legs []*RouteLeg `json:"legs"`
}

// TotalDistance sums the distances of resolved legs.
func (r *Route) TotalDistance() float64 {
	var total float64
	for _, leg := range r.Legs {
		if leg.DistanceMeters != nil {
			total += *leg.DistanceMeters
		}
	}

	return total
}

// TotalExpectedTime sums the travel times of resolved legs.
func (r *Route) TotalExpectedTime() float64 {
	var total float64
	for _, leg := range r.Legs {
		if leg.TravelTimeSeconds != nil {
			total += *leg.TravelTimeSeconds
		}
	}

	return total
}

// ResolvedCount returns the number of legs carrying directions.
func (r *Route) ResolvedCount() int {
	count := 0
	for _, leg := range r.Legs {
		if leg.Resolved() {
			count++
		}
	}

	return count
}

// Clone returns a deep copy that shares no memory with r.
func (r *Route) Clone() *Route {
	if r == nil {
		return nil
	}

	c := &Route{ID: r.ID, Legs: make([]*RouteLeg, len(r.Legs))}
	for i, leg := range r.Legs {
		c.Legs[i] = leg.clone()
	}

	return c
}
