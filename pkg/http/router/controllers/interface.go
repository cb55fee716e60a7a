package controllers

import (
	"context"
	"io"

	"github.com/lintang-b-s/flightplanner/pkg"
	"github.com/lintang-b-s/flightplanner/pkg/guidance"
	"github.com/lintang-b-s/flightplanner/pkg/http/usecases"
	"github.com/lintang-b-s/flightplanner/pkg/spatialindex"
)

type RoutingService interface {
	ShortestPath(ctx context.Context, origin, destination string, criterion pkg.Criterion,
		algorithm pkg.Algorithm) (*guidance.Itinerary, error)
	CompareRoutes(ctx context.Context, origin, destination string,
		criterion pkg.Criterion) (*usecases.RouteComparison, error)
	NearestAirport(lat, lon float64) (spatialindex.NearbyAirport, error)
	RouteGraph(ctx context.Context, w io.Writer, origin, destination string,
		criterion pkg.Criterion, algorithm pkg.Algorithm) error
}
