package guidance

import (
	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
	"github.com/lintang-b-s/flightplanner/pkg/geo"
)

const (
	// great-circle points per leg in the route polyline
	POLYLINE_SEGMENTS_PER_LEG = 16
)

// Leg. one flight of an itinerary. distance and bearing are only set when both airports have coordinates.
type Leg struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Cost        float64 `json:"cost"`
	Time        float64 `json:"time"`
	Distance    float64 `json:"distance,omitempty"`
	Bearing     float64 `json:"bearing,omitempty"`
	HasGeometry bool    `json:"-"`
}

type Itinerary struct {
	Start         string  `json:"start"`
	End           string  `json:"end"`
	Found         bool    `json:"found"`
	Legs          []Leg   `json:"legs"`
	TotalCost     float64 `json:"total_cost"`
	TotalTime     float64 `json:"total_time"`
	TotalDistance float64 `json:"total_distance,omitempty"`
	Polyline      string  `json:"polyline,omitempty"`
}

// Stops. start, every intermediate stop, end. just start when the path is empty.
func (it *Itinerary) Stops() []string {
	if len(it.Legs) == 0 {
		return []string{it.Start}
	}
	stops := make([]string, 0, len(it.Legs)+1)
	stops = append(stops, it.Legs[0].Origin)
	for _, l := range it.Legs {
		stops = append(stops, l.Destination)
	}
	return stops
}

type ItineraryBuilder struct {
	airports AirportLookup
}

// NewItineraryBuilder. airports may be nil, the itinerary then carries no geometry.
func NewItineraryBuilder(airports AirportLookup) *ItineraryBuilder {
	return &ItineraryBuilder{airports: airports}
}

func (ib *ItineraryBuilder) Build(start, end string, res da.SearchResult) *Itinerary {
	it := &Itinerary{
		Start: start,
		End:   end,
		Found: res.Found(),
		Legs:  make([]Leg, 0, len(res.GetPath())),
	}
	if !res.Found() {
		return it
	}

	coords := make([]geo.Coordinate, 0)
	fullGeometry := true
	for _, f := range res.GetPath() {
		leg := Leg{
			Origin:      f.GetOrigin(),
			Destination: f.GetDestination(),
			Cost:        f.GetCost(),
			Time:        f.GetTime(),
		}

		from, okFrom := ib.lookup(f.GetOrigin())
		to, okTo := ib.lookup(f.GetDestination())
		if okFrom && okTo {
			a, b := from.GetCoordinate(), to.GetCoordinate()
			leg.Distance = geo.GreatCircleDistance(a, b)
			leg.Bearing = geo.InitialBearing(a, b)
			leg.HasGeometry = true
			it.TotalDistance += leg.Distance

			segment := geo.InterpolateGreatCircle(a, b, POLYLINE_SEGMENTS_PER_LEG)
			if len(coords) > 0 {
				segment = segment[1:]
			}
			coords = append(coords, segment...)
		} else {
			fullGeometry = false
		}

		it.Legs = append(it.Legs, leg)
	}

	it.TotalCost = res.TotalCost()
	it.TotalTime = res.TotalTime()
	if fullGeometry && len(coords) > 0 {
		it.Polyline = geo.PolylineFromCoords(coords)
	}
	return it
}

func (ib *ItineraryBuilder) lookup(name string) (*da.Airport, bool) {
	if ib.airports == nil {
		return nil, false
	}
	return ib.airports.Get(name)
}
