package routing

import (
	"context"
	"math"

	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
	"github.com/lintang-b-s/flightplanner/pkg/util"
)

// Backtracking. exhaustive depth-first enumeration of every walk from start to end, keeping the cheapest one.
// vertices are never marked visited, so walks may revisit nodes. exponential in the walk length, only meant for
// small graphs and as a baseline for Dijkstra.
//
// without a depth bound the search only terminates if no cycle is reachable from start before end; a reachable
// cycle makes it recurse until the goroutine stack is exhausted. maxDepth > 0 bounds the number of flights in a walk.
// with non-negative weights an optimal walk never has more than V-1 flights, so a bound >= V-1 keeps the result exact.
type Backtracking struct {
	graph        Graph
	costFunction CostFunction
	maxDepth     int

	currentPath []*da.Flight
	bestPath    []*da.Flight
	bestWeight  float64
	found       bool

	numExpandedWalks int
}

type BacktrackingOption func(*Backtracking)

// WithMaxDepth. n <= 0 leaves the search unbounded.
func WithMaxDepth(n int) BacktrackingOption {
	return func(bt *Backtracking) {
		bt.maxDepth = n
	}
}

func NewBacktracking(graph Graph, costFunction CostFunction, opts ...BacktrackingOption) *Backtracking {
	bt := &Backtracking{
		graph:        graph,
		costFunction: costFunction,
	}
	for _, opt := range opts {
		opt(bt)
	}
	return bt
}

// ShortestPathSearch. the first walk reaching end with strictly minimal weight wins; later walks with equal
// weight do not replace it. start == end yields the empty path with zero weight.
func (bt *Backtracking) ShortestPathSearch(ctx context.Context, start, end string) (da.SearchResult, error) {
	bt.currentPath = make([]*da.Flight, 0)
	bt.bestPath = make([]*da.Flight, 0)
	bt.bestWeight = math.MaxFloat64
	bt.found = false
	bt.numExpandedWalks = 0

	if start == end {
		// the walk is already at end before following any flight
		bt.found = true
		bt.bestWeight = 0
		return da.NewFoundResult(da.Path{}, 0), nil
	}

	s, ok := bt.graph.GetVertexId(start)
	if !ok {
		return da.NewNotFoundResult(), nil
	}
	t, ok := bt.graph.GetVertexId(end)
	if !ok {
		return da.NewNotFoundResult(), nil
	}

	if err := bt.findPath(ctx, s, t, 0); err != nil {
		return da.NewNotFoundResult(), err
	}

	if !bt.found {
		return da.NewNotFoundResult(), nil
	}

	return da.NewFoundResult(da.Path(bt.bestPath), bt.bestWeight), nil
}

func (bt *Backtracking) findPath(ctx context.Context, u, t da.Index, currentWeight float64) error {
	if u == t {
		if !bt.found || currentWeight < bt.bestWeight {
			bt.bestWeight = currentWeight
			bt.bestPath = append(bt.bestPath[:0], bt.currentPath...)
			bt.found = true
		}
		return nil
	}

	if bt.maxDepth > 0 && len(bt.currentPath) >= bt.maxDepth {
		return nil
	}

	bt.numExpandedWalks++
	if bt.numExpandedWalks%CANCEL_CHECK_INTERVAL == 0 && util.StopConcurrentOperation(ctx) {
		return ctx.Err()
	}

	var err error
	bt.graph.ForOutEdgesOf(u, func(e *da.Flight, v da.Index) {
		if err != nil {
			return
		}

		bt.currentPath = append(bt.currentPath, e)
		err = bt.findPath(ctx, v, t, currentWeight+bt.costFunction.GetWeight(e))
		bt.currentPath = bt.currentPath[:len(bt.currentPath)-1] // backtrack
	})

	return err
}

func (bt *Backtracking) GetNumExpandedWalks() int {
	return bt.numExpandedWalks
}

func (bt *Backtracking) GetSearchEffort() int {
	return bt.GetNumExpandedWalks()
}
