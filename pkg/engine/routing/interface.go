package routing

import (
	"context"

	"github.com/lintang-b-s/flightplanner/pkg/costfunction"
	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
)

type CostFunction interface {
	GetWeight(e costfunction.EdgeAttributes) float64
}

type Graph interface {
	GetVertexId(name string) (da.Index, bool)
	ForOutEdgesOf(u da.Index, handle func(e *da.Flight, head da.Index))
	NumberOfVertices() int
}

// Router. one query strategy. search state is private to one invocation, the graph is only read.
type Router interface {
	ShortestPathSearch(ctx context.Context, start, end string) (da.SearchResult, error)
}

// EffortReporter. optional for a Router: work done by its last ShortestPathSearch call, settled nodes for
// Dijkstra and expanded walks for Backtracking.
type EffortReporter interface {
	GetSearchEffort() int
}
