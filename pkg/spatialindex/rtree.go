package spatialindex

import (
	"sort"

	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
	"github.com/lintang-b-s/flightplanner/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[*da.Airport]
}

// NearbyAirport. airport plus its haversine distance (km) to the query point.
type NearbyAirport struct {
	airport *da.Airport
	dist    float64
}

func (na NearbyAirport) GetAirport() *da.Airport {
	return na.airport
}

func (na NearbyAirport) GetDistance() float64 {
	return na.dist
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[*da.Airport]
	return &Rtree{
		tr: &tr,
	}
}

// Build. one point leaf per airport.
func (rt *Rtree) Build(airports da.Airports, log *zap.Logger) {
	log.Info("Building R-tree spatial index...", zap.Int("airports", len(airports)))
	for _, a := range airports {
		p := [2]float64{a.GetLon(), a.GetLat()}
		rt.tr.Insert(p, p, a)
	}
	log.Info("R-tree spatial index built.")
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// SearchWithinRadius. airports within radius (km) of (qLat, qLon), closest first.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []NearbyAirport {
	q := geo.NewCoordinate(qLat, qLon)
	sw, ne := geo.BoundingBox(q, radius)

	results := make([]NearbyAirport, 0, 10)
	collect := func(min, max [2]float64, a *da.Airport) bool {
		dist := geo.HaversineDistance(q, a.GetCoordinate())
		if dist <= radius {
			results = append(results, NearbyAirport{airport: a, dist: dist})
		}
		return true
	}

	if sw.Lon <= ne.Lon {
		rt.tr.Search([2]float64{sw.Lon, sw.Lat}, [2]float64{ne.Lon, ne.Lat}, collect)
	} else {
		// box crosses the antimeridian
		rt.tr.Search([2]float64{sw.Lon, sw.Lat}, [2]float64{180, ne.Lat}, collect)
		rt.tr.Search([2]float64{-180, sw.Lat}, [2]float64{ne.Lon, ne.Lat}, collect)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].airport.GetName() < results[j].airport.GetName()
		}
		return results[i].dist < results[j].dist
	})
	return results
}

// Nearest. closest airport within radius (km), false if there is none.
func (rt *Rtree) Nearest(qLat, qLon, radius float64) (NearbyAirport, bool) {
	cands := rt.SearchWithinRadius(qLat, qLon, radius)
	if len(cands) == 0 {
		return NearbyAirport{}, false
	}
	return cands[0], true
}
