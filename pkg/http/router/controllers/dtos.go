package controllers

import (
	"github.com/lintang-b-s/flightplanner/pkg"
	"github.com/lintang-b-s/flightplanner/pkg/guidance"
	"github.com/lintang-b-s/flightplanner/pkg/http/usecases"
	"github.com/lintang-b-s/flightplanner/pkg/spatialindex"
)

type shortestPathRequest struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Criterion   string `json:"criterion" validate:"required,oneof=cost time"`
	Algorithm   string `json:"algorithm" validate:"omitempty,oneof=dijkstra backtracking"`
}

// parse. only called after validation, the enum tokens are known to be valid.
func (r shortestPathRequest) parse() (pkg.Criterion, pkg.Algorithm, error) {
	criterion, err := pkg.ParseCriterion(r.Criterion)
	if err != nil {
		return criterion, pkg.DIJKSTRA, err
	}
	algorithm, err := pkg.ParseAlgorithm(r.Algorithm)
	return criterion, algorithm, err
}

type compareRoutesRequest struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Criterion   string `json:"criterion" validate:"required,oneof=cost time"`
}

type nearestAirportRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

type legResponse struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Cost        float64 `json:"cost"`
	Time        float64 `json:"time"`
	Distance    float64 `json:"distance,omitempty"`
	Bearing     float64 `json:"bearing,omitempty"`
}

type shortestPathResponse struct {
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	Legs          []legResponse `json:"legs"`
	TotalCost     float64       `json:"total_cost"`
	TotalTime     float64       `json:"total_time"`
	TotalDistance float64       `json:"total_distance,omitempty"`
	Path          string        `json:"path,omitempty"`
	Report        string        `json:"report"`
}

func NewShortestPathResponse(it *guidance.Itinerary, report string) shortestPathResponse {
	legs := make([]legResponse, len(it.Legs))
	for i, l := range it.Legs {
		legs[i] = legResponse{
			Origin:      l.Origin,
			Destination: l.Destination,
			Cost:        l.Cost,
			Time:        l.Time,
			Distance:    l.Distance,
			Bearing:     l.Bearing,
		}
	}
	return shortestPathResponse{
		Origin:        it.Start,
		Destination:   it.End,
		Legs:          legs,
		TotalCost:     it.TotalCost,
		TotalTime:     it.TotalTime,
		TotalDistance: it.TotalDistance,
		Path:          it.Polyline,
		Report:        report,
	}
}

type compareRoutesResponse struct {
	Dijkstra     shortestPathResponse `json:"dijkstra"`
	Backtracking shortestPathResponse `json:"backtracking"`
	SameWeight   bool                 `json:"same_weight"`
}

func NewCompareRoutesResponse(cmp *usecases.RouteComparison, dijkstraReport, backtrackingReport string) compareRoutesResponse {
	return compareRoutesResponse{
		Dijkstra:     NewShortestPathResponse(cmp.Dijkstra, dijkstraReport),
		Backtracking: NewShortestPathResponse(cmp.Backtracking, backtrackingReport),
		SameWeight:   cmp.SameWeight,
	}
}

type nearestAirportResponse struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Distance float64 `json:"distance"`
}

func NewNearestAirportResponse(na spatialindex.NearbyAirport) nearestAirportResponse {
	return nearestAirportResponse{
		Name:     na.GetAirport().GetName(),
		Lat:      na.GetAirport().GetLat(),
		Lon:      na.GetAirport().GetLon(),
		Distance: na.GetDistance(),
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
