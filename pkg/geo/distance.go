package geo

import (
	"math"

	"github.com/lintang-b-s/flightplanner/pkg/util"
)

const (
	EARTH_RADIUS_KM = 6371.0
)

// HaversineDistance. great-circle distance in km between two airports.
func HaversineDistance(a, b Coordinate) float64 {
	latA := util.DegreeToRadians(a.Lat)
	latB := util.DegreeToRadians(b.Lat)
	dLat := latB - latA
	dLon := util.DegreeToRadians(b.Lon - a.Lon)

	h := math.Pow(math.Sin(dLat/2), 2) + math.Cos(latA)*math.Cos(latB)*math.Pow(math.Sin(dLon/2), 2)
	return 2 * EARTH_RADIUS_KM * math.Asin(math.Min(1, math.Sqrt(h)))
}

// BoundingBox. south-west and north-east corners of the smallest lat/lon box holding every point within
// radiusKm of center. sw.Lon > ne.Lon when the box crosses the antimeridian. a box touching a pole spans
// every longitude.
func BoundingBox(center Coordinate, radiusKm float64) (sw Coordinate, ne Coordinate) {
	angular := radiusKm / EARTH_RADIUS_KM
	dLat := util.RadiansToDegree(angular)

	minLat := math.Max(center.Lat-dLat, -90)
	maxLat := math.Min(center.Lat+dLat, 90)
	if minLat <= -90 || maxLat >= 90 {
		return NewCoordinate(minLat, -180), NewCoordinate(maxLat, 180)
	}

	ratio := math.Sin(angular) / math.Cos(util.DegreeToRadians(center.Lat))
	if ratio >= 1 {
		return NewCoordinate(minLat, -180), NewCoordinate(maxLat, 180)
	}
	dLon := util.RadiansToDegree(math.Asin(ratio))
	if dLon >= 180 {
		return NewCoordinate(minLat, -180), NewCoordinate(maxLat, 180)
	}

	return NewCoordinate(minLat, wrapLongitude(center.Lon-dLon)), NewCoordinate(maxLat, wrapLongitude(center.Lon+dLon))
}

// wrapLongitude. into [-180, 180).
func wrapLongitude(lon float64) float64 {
	return math.Mod(math.Mod(lon+180, 360)+360, 360) - 180
}
