package usecases

import (
	"context"
	"errors"
	"io"

	"github.com/goccy/go-graphviz"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/flightplanner/pkg"
	"github.com/lintang-b-s/flightplanner/pkg/guidance"
	"github.com/lintang-b-s/flightplanner/pkg/spatialindex"
	"github.com/lintang-b-s/flightplanner/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrPathNotFound    = errors.New("path not found")
	ErrNodeNotFound    = errors.New("node not found")
	ErrAirportNotFound = errors.New("no airport nearby")
)

type routeCacheKey struct {
	origin      string
	destination string
	criterion   pkg.Criterion
	algorithm   pkg.Algorithm
}

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	spatialIndex SpatialIndex
	itineraries  *guidance.ItineraryBuilder
	cache        *lru.Cache[routeCacheKey, *guidance.Itinerary]
	searchRadius float64 // km
	maxDepth     int
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialIndex SpatialIndex,
	airports guidance.AirportLookup, cacheSize int, searchRadius float64, maxDepth int) (*RoutingService, error) {
	cache, err := lru.New[routeCacheKey, *guidance.Itinerary](cacheSize)
	if err != nil {
		return nil, err
	}
	return &RoutingService{
		log:          log,
		engine:       engine,
		spatialIndex: spatialIndex,
		itineraries:  guidance.NewItineraryBuilder(airports),
		cache:        cache,
		searchRadius: searchRadius,
		maxDepth:     maxDepth,
	}, nil
}

// ShortestPath. best itinerary from origin to destination. unknown nodes and unreachable destinations are
// ErrNotFound coded errors.
func (rs *RoutingService) ShortestPath(ctx context.Context, origin, destination string, criterion pkg.Criterion,
	algorithm pkg.Algorithm) (*guidance.Itinerary, error) {
	key := routeCacheKey{origin, destination, criterion, algorithm}
	if it, ok := rs.cache.Get(key); ok {
		return it, nil
	}

	if origin != destination {
		if !rs.engine.HasVertex(origin) {
			return nil, util.WrapErrorf(ErrNodeNotFound, util.ErrNotFound, "origin %q not found", origin)
		}
		if !rs.engine.HasVertex(destination) {
			return nil, util.WrapErrorf(ErrNodeNotFound, util.ErrNotFound, "destination %q not found", destination)
		}
		if !rs.engine.Connected(origin, destination) {
			return nil, util.WrapErrorf(ErrPathNotFound, util.ErrNotFound, "no path found from %s to %s",
				origin, destination)
		}
	}

	res, err := rs.engine.ShortestPath(ctx, algorithm, criterion, origin, destination, rs.maxDepth)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "shortest path from %s to %s", origin, destination)
	}
	if !res.Found() {
		return nil, util.WrapErrorf(ErrPathNotFound, util.ErrNotFound, "no path found from %s to %s",
			origin, destination)
	}

	it := rs.itineraries.Build(origin, destination, res)
	rs.cache.Add(key, it)
	return it, nil
}

type RouteComparison struct {
	Dijkstra     *guidance.Itinerary `json:"dijkstra"`
	Backtracking *guidance.Itinerary `json:"backtracking"`
	SameWeight   bool                `json:"same_weight"`
}

// CompareRoutes. runs both algorithms concurrently on the shared read-only graph.
func (rs *RoutingService) CompareRoutes(ctx context.Context, origin, destination string,
	criterion pkg.Criterion) (*RouteComparison, error) {
	var (
		cmp RouteComparison
		g   errgroup.Group
	)

	g.Go(func() error {
		it, err := rs.ShortestPath(ctx, origin, destination, criterion, pkg.DIJKSTRA)
		cmp.Dijkstra = it
		return err
	})
	g.Go(func() error {
		it, err := rs.ShortestPath(ctx, origin, destination, criterion, pkg.BACKTRACKING)
		cmp.Backtracking = it
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cmp.SameWeight = weightOf(cmp.Dijkstra, criterion) == weightOf(cmp.Backtracking, criterion)
	if !cmp.SameWeight {
		rs.log.Warn("dijkstra and backtracking disagree",
			zap.String("origin", origin), zap.String("destination", destination),
			zap.String("criterion", criterion.String()))
	}
	return &cmp, nil
}

func weightOf(it *guidance.Itinerary, criterion pkg.Criterion) float64 {
	if criterion == pkg.TIME {
		return util.RoundFloat(it.TotalTime, 6)
	}
	return util.RoundFloat(it.TotalCost, 6)
}

// NearestAirport. closest airport within the configured search radius.
func (rs *RoutingService) NearestAirport(lat, lon float64) (spatialindex.NearbyAirport, error) {
	na, ok := rs.spatialIndex.Nearest(lat, lon, rs.searchRadius)
	if !ok {
		return spatialindex.NearbyAirport{}, util.WrapErrorf(ErrAirportNotFound, util.ErrNotFound,
			"no airport within %.1f km of %f,%f", rs.searchRadius, lat, lon)
	}
	return na, nil
}

// RouteGraph. renders the best itinerary as an svg graph.
func (rs *RoutingService) RouteGraph(ctx context.Context, w io.Writer, origin, destination string,
	criterion pkg.Criterion, algorithm pkg.Algorithm) error {
	it, err := rs.ShortestPath(ctx, origin, destination, criterion, algorithm)
	if err != nil {
		return err
	}
	return guidance.RenderRoute(ctx, w, it, graphviz.SVG)
}
