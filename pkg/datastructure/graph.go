package datastructure

import (
	"sort"
)

type Index uint32

const (
	INVALID_VERTEX_ID Index = ^Index(0)
)

// FlightGraph. adjacency list of flights keyed by origin.
// built once and read-only afterwards, so it can be shared between concurrent queries.
type FlightGraph struct {
	vertexIds map[string]Index
	names     []string
	outEdges  [][]*Flight // outEdges[u] = flights departing from vertex u, in input order
	inDegree  []int
	numEdges  int

	sccs               []Index   // sccs[u] = strongly connected component id of vertex u
	sccSize            []int     // number of vertices in each scc
	sccSelfLoop        []bool    // true if some flight departs and arrives at the same vertex of the scc
	numCyclicSCCs      int
	sccCondensationAdj [][]Index // adjacency list of the condensation dag
}

func NewFlightGraph(flights []*Flight) *FlightGraph {
	g := &FlightGraph{
		vertexIds: make(map[string]Index),
		names:     make([]string, 0),
		outEdges:  make([][]*Flight, 0),
		inDegree:  make([]int, 0),
	}

	for i, f := range flights {
		u := g.addVertex(f.origin)
		v := g.addVertex(f.destination)
		g.outEdges[u] = append(g.outEdges[u], newFlightWithId(f, Index(i)))
		g.inDegree[v]++
		g.numEdges++
	}

	g.RunKosaraju()
	return g
}

func (g *FlightGraph) addVertex(name string) Index {
	if id, ok := g.vertexIds[name]; ok {
		return id
	}
	id := Index(len(g.names))
	g.vertexIds[name] = id
	g.names = append(g.names, name)
	g.outEdges = append(g.outEdges, make([]*Flight, 0))
	g.inDegree = append(g.inDegree, 0)
	return id
}

// GetVertexId. returns INVALID_VERTEX_ID, false for nodes that do not appear in any flight.
func (g *FlightGraph) GetVertexId(name string) (Index, bool) {
	id, ok := g.vertexIds[name]
	if !ok {
		return INVALID_VERTEX_ID, false
	}
	return id, true
}

func (g *FlightGraph) HasVertex(name string) bool {
	_, ok := g.vertexIds[name]
	return ok
}

// Neighbors. outgoing flights of node. unknown nodes have no flights.
func (g *FlightGraph) Neighbors(node string) []*Flight {
	u, ok := g.vertexIds[node]
	if !ok {
		return []*Flight{}
	}
	return g.outEdges[u]
}

func (g *FlightGraph) ForOutEdgesOf(u Index, handle func(e *Flight, head Index)) {
	for _, e := range g.outEdges[u] {
		handle(e, g.vertexIds[e.destination])
	}
}

func (g *FlightGraph) GetOutDegree(u Index) int {
	return len(g.outEdges[u])
}

func (g *FlightGraph) GetInDegree(u Index) int {
	return g.inDegree[u]
}

func (g *FlightGraph) NumberOfVertices() int {
	return len(g.names)
}

func (g *FlightGraph) NumberOfEdges() int {
	return g.numEdges
}

// Vertices. all node names, sorted.
func (g *FlightGraph) Vertices() []string {
	names := make([]string, len(g.names))
	copy(names, g.names)
	sort.Strings(names)
	return names
}

// Flights. all flights in input order.
func (g *FlightGraph) Flights() []*Flight {
	flights := make([]*Flight, g.numEdges)
	for _, edges := range g.outEdges {
		for _, e := range edges {
			flights[e.edgeId] = e
		}
	}
	return flights
}
