package pmtiles

import (
	"container/heap"
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// NodeID identifies a node in a walk graph
type NodeID int64

type edge struct {
	to       NodeID
	distance float64 // meters
	name     string
}

// WalkGraph is an undirected pedestrian network built from tile segments.
// Nodes closer than ~1m are merged so segments from adjacent tiles connect.
type WalkGraph struct {
	nodes    map[NodeID]orb.Point
	edges    map[NodeID][]edge
	nextID   int64
	pointMap map[string]NodeID
}

// NewWalkGraph creates an empty graph
func NewWalkGraph() *WalkGraph {
	return &WalkGraph{
		nodes:    make(map[NodeID]orb.Point),
		edges:    make(map[NodeID][]edge),
		pointMap: make(map[string]NodeID),
	}
}

// AddSegment adds both directions of every consecutive point pair
func (g *WalkGraph) AddSegment(segment *PathSegment) {
	if len(segment.Points) < 2 {
		return
	}

	prev := g.nodeAt(segment.Points[0])
	for i := 1; i < len(segment.Points); i++ {
		curr := g.nodeAt(segment.Points[i])
		if curr == prev {
			continue
		}

		dist := geo.DistanceHaversine(g.nodes[prev], g.nodes[curr])
		g.edges[prev] = append(g.edges[prev], edge{to: curr, distance: dist, name: segment.Name})
		g.edges[curr] = append(g.edges[curr], edge{to: prev, distance: dist, name: segment.Name})

		prev = curr
	}
}

// Merge copies all nodes and edges of other into g, remapping node IDs
func (g *WalkGraph) Merge(other *WalkGraph) {
	mapping := make(map[NodeID]NodeID, len(other.nodes))
	for id, point := range other.nodes {
		mapping[id] = g.nodeAt(point)
	}

	for from, edges := range other.edges {
		target := mapping[from]
		for _, e := range edges {
			g.edges[target] = append(g.edges[target], edge{
				to:       mapping[e.to],
				distance: e.distance,
				name:     e.name,
			})
		}
	}
}

// NodeCount returns the number of nodes
func (g *WalkGraph) NodeCount() int {
	return len(g.nodes)
}

// Node returns the location of a node
func (g *WalkGraph) Node(id NodeID) (orb.Point, bool) {
	p, ok := g.nodes[id]

	return p, ok
}

func (g *WalkGraph) nodeAt(point orb.Point) NodeID {
	key := pointKey(point)
	if id, ok := g.pointMap[key]; ok {
		return id
	}

	g.nextID++
	id := NodeID(g.nextID)
	g.nodes[id] = point
	g.pointMap[key] = id

	return id
}

// pointKey rounds to 5 decimal places (~1m)
func pointKey(p orb.Point) string {
	lat := math.Round(p[1]*100000) / 100000
	lng := math.Round(p[0]*100000) / 100000

	return strconv.FormatFloat(lat, 'f', 5, 64) + "," + strconv.FormatFloat(lng, 'f', 5, 64)
}

// PathStep is a run of consecutive edges sharing a street name
type PathStep struct {
	Name     string
	Distance float64
}

// Path is the result of a shortest path search
type Path struct {
	Points   []orb.Point
	Distance float64
	Steps    []PathStep
}

type queueItem struct {
	id       NodeID
	distance float64
	index    int
}

type priorityQueue []*queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool { return pq[i].distance < pq[j].distance }

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}

type predecessor struct {
	from NodeID
	edge edge
}

// ShortestPath runs Dijkstra from source to target. It reports false when
// either node is unknown or the target cannot be reached.
func (g *WalkGraph) ShortestPath(source, target NodeID) (*Path, bool) {
	if _, ok := g.nodes[source]; !ok {
		return nil, false
	}
	if _, ok := g.nodes[target]; !ok {
		return nil, false
	}
	if source == target {
		return &Path{Points: []orb.Point{g.nodes[source]}}, true
	}

	dist := map[NodeID]float64{source: 0}
	prev := make(map[NodeID]predecessor)
	visited := make(map[NodeID]bool)

	pq := priorityQueue{}
	heap.Push(&pq, &queueItem{id: source})

	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*queueItem)
		if visited[current.id] {
			continue
		}
		visited[current.id] = true

		if current.id == target {
			return g.unwind(source, target, current.distance, prev), true
		}

		for _, e := range g.edges[current.id] {
			if visited[e.to] {
				continue
			}

			next := current.distance + e.distance
			if known, ok := dist[e.to]; ok && known <= next {
				continue
			}
			dist[e.to] = next
			prev[e.to] = predecessor{from: current.id, edge: e}
			heap.Push(&pq, &queueItem{id: e.to, distance: next})
		}
	}

	return nil, false
}

func (g *WalkGraph) unwind(source, target NodeID, total float64, prev map[NodeID]predecessor) *Path {
	var edges []edge
	points := []orb.Point{g.nodes[target]}

	for at := target; at != source; {
		p := prev[at]
		edges = append(edges, p.edge)
		points = append(points, g.nodes[p.from])
		at = p.from
	}

	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}

	path := &Path{Points: points, Distance: total}
	for i := len(edges) - 1; i >= 0; i-- {
		e := edges[i]
		if n := len(path.Steps); n > 0 && path.Steps[n-1].Name == e.name {
			path.Steps[n-1].Distance += e.distance

			continue
		}
		path.Steps = append(path.Steps, PathStep{Name: e.name, Distance: e.distance})
	}

	return path
}
