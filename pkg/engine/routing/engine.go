package routing

import (
	"context"
	"time"

	"github.com/lintang-b-s/flightplanner/pkg"
	"github.com/lintang-b-s/flightplanner/pkg/costfunction"
	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
	"go.uber.org/zap"
)

// RoutingEngine. shared, read-only flight graph plus the factory for per-query routers.
type RoutingEngine struct {
	graph  *da.FlightGraph
	logger *zap.Logger
}

func NewRoutingEngine(graph *da.FlightGraph, logger *zap.Logger) *RoutingEngine {
	return &RoutingEngine{
		graph:  graph,
		logger: logger,
	}
}

func (re *RoutingEngine) GetGraph() *da.FlightGraph {
	return re.graph
}

// NewRouter. builds a fresh router for one query.
// for backtracking, maxDepth > 0 is used as is, maxDepth < 0 runs the unbounded exhaustive search, and
// maxDepth == 0 bounds the walk length by the number of vertices only when a cycle is reachable from start.
func (re *RoutingEngine) NewRouter(algorithm pkg.Algorithm, costFunction costfunction.CostFunction,
	start, end string, maxDepth int) Router {
	switch algorithm {
	case pkg.BACKTRACKING:
		if maxDepth == 0 && re.graph.HasCycleReachableFrom(start, end) {
			maxDepth = re.graph.NumberOfVertices()
			re.logger.Debug("cycle reachable from start, bounding backtracking depth",
				zap.String("start", start), zap.String("end", end), zap.Int("maxDepth", maxDepth))
		}
		return NewBacktracking(re.graph, costFunction, WithMaxDepth(maxDepth))
	default:
		return NewDijkstra(re.graph, costFunction)
	}
}

// QueryStats. search effort and wall-clock time of one query.
type QueryStats struct {
	Algorithm pkg.Algorithm
	Effort    int // settled nodes for dijkstra, expanded walks for backtracking
	Elapsed   time.Duration
}

// ShortestPath. runs one query with the given algorithm and criterion.
func (re *RoutingEngine) ShortestPath(ctx context.Context, algorithm pkg.Algorithm, criterion pkg.Criterion,
	start, end string, maxDepth int) (da.SearchResult, error) {
	result, _, err := re.ShortestPathWithStats(ctx, algorithm, criterion, start, end, maxDepth)
	return result, err
}

// ShortestPathWithStats. ShortestPath plus the search effort of the router.
func (re *RoutingEngine) ShortestPathWithStats(ctx context.Context, algorithm pkg.Algorithm, criterion pkg.Criterion,
	start, end string, maxDepth int) (da.SearchResult, QueryStats, error) {
	stats := QueryStats{Algorithm: algorithm}

	costFunction, err := costfunction.New(criterion)
	if err != nil {
		return da.NewNotFoundResult(), stats, err
	}

	router := re.NewRouter(algorithm, costFunction, start, end, maxDepth)

	before := time.Now()
	result, err := router.ShortestPathSearch(ctx, start, end)
	stats.Elapsed = time.Since(before)
	if er, ok := router.(EffortReporter); ok {
		stats.Effort = er.GetSearchEffort()
	}
	if err != nil {
		return result, stats, err
	}

	re.logger.Debug("shortest path query done",
		zap.String("algorithm", algorithm.String()),
		zap.String("criterion", criterion.String()),
		zap.String("start", start),
		zap.String("end", end),
		zap.Bool("found", result.Found()),
		zap.Float64("weight", result.GetTotalWeight()),
		zap.Int("effort", stats.Effort),
		zap.Duration("elapsed", stats.Elapsed),
	)
	return result, stats, nil
}
