package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
	"github.com/lintang-b-s/flightplanner/pkg/engine/routing"
	helper "github.com/lintang-b-s/flightplanner/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/flightplanner/pkg/http/usecases"
	"github.com/lintang-b-s/flightplanner/pkg/spatialindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRoutingService(t *testing.T) *usecases.RoutingService {
	t.Helper()
	graph := da.NewFlightGraph([]*da.Flight{
		da.NewFlight("A", "B", 100, 2),
		da.NewFlight("A", "C", 10, 5),
		da.NewFlight("C", "B", 10, 1),
	})
	airports := da.NewAirports([]*da.Airport{
		da.NewAirport("A", 0, 0),
		da.NewAirport("B", 1, 1),
		da.NewAirport("C", 0, 1),
	})
	rtree := spatialindex.NewRtree()
	rtree.Build(airports, zap.NewNop())

	rs, err := usecases.NewRoutingService(zap.NewNop(), routing.NewRoutingEngine(graph, zap.NewNop()), rtree,
		airports, 16, 50, 0)
	require.NoError(t, err)
	return rs
}

func newTestRouter(t *testing.T) *httprouter.Router {
	router := httprouter.New()
	New(newTestRoutingService(t), zap.NewNop()).Routes(helper.NewRouteGroup(router, "/api"))
	return router
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

func TestShortestPathHandler(t *testing.T) {
	router := newTestRouter(t)

	testCases := []struct {
		name       string
		query      string
		wantStatus int
		wantCost   float64
		wantTime   float64
		wantLegs   int
		wantError  string
	}{
		{name: "cost", query: "origin=A&destination=B&criterion=cost", wantStatus: http.StatusOK,
			wantCost: 20, wantTime: 6, wantLegs: 2},
		{name: "time backtracking", query: "origin=A&destination=B&criterion=TIME&algorithm=backtracking",
			wantStatus: http.StatusOK, wantCost: 100, wantTime: 2, wantLegs: 1},
		{name: "unknown criterion", query: "origin=A&destination=B&criterion=distance",
			wantStatus: http.StatusBadRequest, wantError: "Criterion"},
		{name: "unknown algorithm", query: "origin=A&destination=B&criterion=cost&algorithm=astar",
			wantStatus: http.StatusBadRequest, wantError: "Algorithm"},
		{name: "missing origin", query: "destination=B&criterion=cost",
			wantStatus: http.StatusBadRequest, wantError: "Origin"},
		{name: "unknown node", query: "origin=X&destination=B&criterion=cost",
			wantStatus: http.StatusNotFound, wantError: "origin \\\"X\\\" not found"},
		{name: "unreachable", query: "origin=B&destination=A&criterion=cost",
			wantStatus: http.StatusNotFound, wantError: "No path found from B to A"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/computeRoutes?"+tt.query, nil))
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.wantStatus != http.StatusOK {
				assert.Contains(t, strings.ToLower(rec.Body.String()), strings.ToLower(tt.wantError))
				return
			}

			var resp dataEnvelope[shortestPathResponse]
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCost, resp.Data.TotalCost)
			assert.Equal(t, tt.wantTime, resp.Data.TotalTime)
			assert.Len(t, resp.Data.Legs, tt.wantLegs)
			assert.NotEmpty(t, resp.Data.Path)
			assert.True(t, strings.HasPrefix(resp.Data.Report, "Best path from A to B:\n"))
		})
	}
}

func TestCompareRoutesHandler(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/compareRoutes?origin=A&destination=B&criterion=cost", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dataEnvelope[compareRoutesResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Data.SameWeight)
	assert.Equal(t, 20.0, resp.Data.Dijkstra.TotalCost)
	assert.Equal(t, 20.0, resp.Data.Backtracking.TotalCost)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/compareRoutes?origin=A&destination=B", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNearestAirportHandler(t *testing.T) {
	router := newTestRouter(t)

	testCases := []struct {
		name       string
		query      string
		wantStatus int
		wantName   string
	}{
		{name: "found", query: "lat=0.01&lon=0.98", wantStatus: http.StatusOK, wantName: "C"},
		{name: "nothing nearby", query: "lat=40&lon=40", wantStatus: http.StatusNotFound},
		{name: "not a number", query: "lat=abc&lon=1", wantStatus: http.StatusBadRequest},
		{name: "out of range", query: "lat=91&lon=1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nearestAirport?"+tt.query, nil))
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp dataEnvelope[nearestAirportResponse]
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantName, resp.Data.Name)
		})
	}
}

func TestRouteGraphHandler(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/routeGraph?origin=A&destination=B&criterion=time", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
}
