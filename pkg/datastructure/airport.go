package datastructure

import (
	"github.com/lintang-b-s/flightplanner/pkg/geo"
)

// Airport. coordinates of a graph node.
type Airport struct {
	name string
	lat  float64
	lon  float64
}

func NewAirport(name string, lat, lon float64) *Airport {
	return &Airport{name: name, lat: lat, lon: lon}
}

func (a *Airport) GetName() string {
	return a.name
}

func (a *Airport) GetLat() float64 {
	return a.lat
}

func (a *Airport) GetLon() float64 {
	return a.lon
}

func (a *Airport) GetCoordinate() geo.Coordinate {
	return geo.NewCoordinate(a.lat, a.lon)
}

// Airports. name -> airport lookup.
type Airports map[string]*Airport

func NewAirports(airports []*Airport) Airports {
	m := make(Airports, len(airports))
	for _, a := range airports {
		m[a.name] = a
	}
	return m
}

func (as Airports) Get(name string) (*Airport, bool) {
	a, ok := as[name]
	return a, ok
}
