package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/flightplanner/pkg"
	"github.com/lintang-b-s/flightplanner/pkg/guidance"
	helper "github.com/lintang-b-s/flightplanner/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/computeRoutes", api.shortestPath)
	group.GET("/compareRoutes", api.compareRoutes)
	group.GET("/nearestAirport", api.nearestAirport)
	group.GET("/routeGraph", api.routeGraph)
}

func shortestPathRequestFromQuery(r *http.Request) shortestPathRequest {
	query := r.URL.Query()
	return shortestPathRequest{
		Origin:      query.Get("origin"),
		Destination: query.Get("destination"),
		Criterion:   strings.ToLower(query.Get("criterion")),
		Algorithm:   strings.ToLower(query.Get("algorithm")),
	}
}

func reportOf(it *guidance.Itinerary) (string, error) {
	var sb strings.Builder
	if err := guidance.WriteReport(&sb, it); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// shortestPath
//
//	@Summary		best itinerary between two nodes
//	@Tags			routing
//	@Param			origin		query	string	true	"origin node"
//	@Param			destination	query	string	true	"destination node"
//	@Param			criterion	query	string	true	"cost or time"
//	@Param			algorithm	query	string	false	"dijkstra (default) or backtracking"
//	@Produce		json
//	@Success		200	{object}	shortestPathResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
//	@Router			/computeRoutes [get]
func (api *routingAPI) shortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request := shortestPathRequestFromQuery(r)
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	criterion, algorithm, err := request.parse()
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	it, err := api.routingService.ShortestPath(r.Context(), request.Origin, request.Destination, criterion, algorithm)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	report, err := reportOf(it)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := writeJSON(w, http.StatusOK, envelope{"data": NewShortestPathResponse(it, report)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// compareRoutes
//
//	@Summary		run dijkstra and backtracking on the same query
//	@Tags			routing
//	@Param			origin		query	string	true	"origin node"
//	@Param			destination	query	string	true	"destination node"
//	@Param			criterion	query	string	true	"cost or time"
//	@Produce		json
//	@Success		200	{object}	compareRoutesResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
//	@Router			/compareRoutes [get]
func (api *routingAPI) compareRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()
	request := compareRoutesRequest{
		Origin:      query.Get("origin"),
		Destination: query.Get("destination"),
		Criterion:   strings.ToLower(query.Get("criterion")),
	}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	criterion, err := pkg.ParseCriterion(request.Criterion)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	cmp, err := api.routingService.CompareRoutes(r.Context(), request.Origin, request.Destination, criterion)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	dijkstraReport, err := reportOf(cmp.Dijkstra)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
	backtrackingReport, err := reportOf(cmp.Backtracking)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"data": NewCompareRoutesResponse(cmp, dijkstraReport,
		backtrackingReport)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// nearestAirport
//
//	@Summary		closest airport to a coordinate
//	@Tags			routing
//	@Param			lat	query	number	true	"latitude"
//	@Param			lon	query	number	true	"longitude"
//	@Produce		json
//	@Success		200	{object}	nearestAirportResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
//	@Router			/nearestAirport [get]
func (api *routingAPI) nearestAirport(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearestAirportRequest
		err     error
	)

	query := r.URL.Query()

	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	na, err := api.routingService.NearestAirport(request.Lat, request.Lon)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"data": NewNearestAirportResponse(na)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// routeGraph
//
//	@Summary		best itinerary rendered as an svg graph
//	@Tags			routing
//	@Param			origin		query	string	true	"origin node"
//	@Param			destination	query	string	true	"destination node"
//	@Param			criterion	query	string	true	"cost or time"
//	@Param			algorithm	query	string	false	"dijkstra (default) or backtracking"
//	@Produce		image/svg+xml
//	@Failure		400	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
//	@Router			/routeGraph [get]
func (api *routingAPI) routeGraph(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request := shortestPathRequestFromQuery(r)
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	criterion, algorithm, err := request.parse()
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := api.routingService.RouteGraph(r.Context(), &buf, request.Origin, request.Destination, criterion,
		algorithm); err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		api.logError(r, err)
	}
}
