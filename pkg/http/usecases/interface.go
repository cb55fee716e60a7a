package usecases

import (
	"context"

	"github.com/lintang-b-s/flightplanner/pkg"
	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
	"github.com/lintang-b-s/flightplanner/pkg/spatialindex"
)

type RoutingEngine interface {
	ShortestPath(ctx context.Context, algorithm pkg.Algorithm, criterion pkg.Criterion,
		start, end string, maxDepth int) (da.SearchResult, error)
	Connected(u, v string) bool
	HasVertex(name string) bool
}

type SpatialIndex interface {
	Nearest(qLat, qLon, radius float64) (spatialindex.NearbyAirport, bool)
}
