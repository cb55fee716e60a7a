package usecases

import (
	"bytes"
	"context"
	"testing"

	"github.com/lintang-b-s/flightplanner/pkg"
	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
	"github.com/lintang-b-s/flightplanner/pkg/engine/routing"
	"github.com/lintang-b-s/flightplanner/pkg/spatialindex"
	"github.com/lintang-b-s/flightplanner/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *RoutingService {
	t.Helper()
	graph := da.NewFlightGraph([]*da.Flight{
		da.NewFlight("A", "B", 100, 2),
		da.NewFlight("A", "C", 10, 5),
		da.NewFlight("C", "B", 10, 1),
		da.NewFlight("C", "A", 10, 1),
		da.NewFlight("D", "A", 1, 1),
	})
	airports := da.NewAirports([]*da.Airport{
		da.NewAirport("A", 0, 0),
		da.NewAirport("B", 1, 1),
		da.NewAirport("C", 0, 1),
	})
	rtree := spatialindex.NewRtree()
	rtree.Build(airports, zap.NewNop())

	rs, err := NewRoutingService(zap.NewNop(), routing.NewRoutingEngine(graph, zap.NewNop()), rtree, airports,
		16, 50, 0)
	require.NoError(t, err)
	return rs
}

func codeOf(t *testing.T, err error) error {
	t.Helper()
	var uerr *util.Error
	require.ErrorAs(t, err, &uerr)
	return uerr.Code()
}

func TestShortestPath(t *testing.T) {
	rs := newTestService(t)

	testCases := []struct {
		name        string
		origin      string
		destination string
		criterion   pkg.Criterion
		algorithm   pkg.Algorithm
		wantStops   []string
		wantErr     error
	}{
		{name: "cost dijkstra", origin: "A", destination: "B", criterion: pkg.COST, algorithm: pkg.DIJKSTRA,
			wantStops: []string{"A", "C", "B"}},
		{name: "cost backtracking with cycle", origin: "A", destination: "B", criterion: pkg.COST,
			algorithm: pkg.BACKTRACKING, wantStops: []string{"A", "C", "B"}},
		{name: "time", origin: "A", destination: "B", criterion: pkg.TIME, algorithm: pkg.DIJKSTRA,
			wantStops: []string{"A", "B"}},
		{name: "same node", origin: "A", destination: "A", criterion: pkg.TIME, algorithm: pkg.DIJKSTRA,
			wantStops: []string{"A"}},
		{name: "unknown origin", origin: "X", destination: "B", criterion: pkg.COST, algorithm: pkg.DIJKSTRA,
			wantErr: ErrNodeNotFound},
		{name: "unknown destination", origin: "A", destination: "X", criterion: pkg.COST,
			algorithm: pkg.BACKTRACKING, wantErr: ErrNodeNotFound},
		{name: "unreachable", origin: "B", destination: "A", criterion: pkg.COST, algorithm: pkg.BACKTRACKING,
			wantErr: ErrPathNotFound},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			it, err := rs.ShortestPath(context.Background(), tt.origin, tt.destination, tt.criterion, tt.algorithm)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, util.ErrNotFound, codeOf(t, err))
				return
			}
			require.NoError(t, err)
			assert.True(t, it.Found)
			assert.Equal(t, tt.wantStops, it.Stops())

			cached, err := rs.ShortestPath(context.Background(), tt.origin, tt.destination, tt.criterion, tt.algorithm)
			require.NoError(t, err)
			assert.Same(t, it, cached)
		})
	}
}

func TestCompareRoutes(t *testing.T) {
	rs := newTestService(t)

	cmp, err := rs.CompareRoutes(context.Background(), "D", "B", pkg.COST)
	require.NoError(t, err)
	assert.True(t, cmp.SameWeight)
	assert.Equal(t, 21.0, cmp.Dijkstra.TotalCost)
	assert.Equal(t, 21.0, cmp.Backtracking.TotalCost)

	_, err = rs.CompareRoutes(context.Background(), "B", "D", pkg.COST)
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestNearestAirport(t *testing.T) {
	rs := newTestService(t)

	na, err := rs.NearestAirport(0.01, 0.99)
	require.NoError(t, err)
	assert.Equal(t, "C", na.GetAirport().GetName())

	_, err = rs.NearestAirport(45, 45)
	assert.ErrorIs(t, err, ErrAirportNotFound)
}

func TestRouteGraph(t *testing.T) {
	rs := newTestService(t)

	var buf bytes.Buffer
	require.NoError(t, rs.RouteGraph(context.Background(), &buf, "A", "B", pkg.COST, pkg.DIJKSTRA))
	assert.Contains(t, buf.String(), "<svg")

	buf.Reset()
	err := rs.RouteGraph(context.Background(), &buf, "B", "A", pkg.COST, pkg.DIJKSTRA)
	assert.ErrorIs(t, err, ErrPathNotFound)
}
