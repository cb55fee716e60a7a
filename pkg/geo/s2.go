package geo

import (
	"github.com/golang/geo/s2"
)

// GreatCircleDistance. distance in km between two coordinates on the s2 unit sphere.
func GreatCircleDistance(a, b Coordinate) float64 {
	pa := s2.LatLngFromDegrees(a.Lat, a.Lon)
	pb := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return pa.Distance(pb).Radians() * EARTH_RADIUS_KM
}

// InterpolateGreatCircle. n+1 points along the great circle from a to b, both ends included.
func InterpolateGreatCircle(a, b Coordinate, n int) []Coordinate {
	if n < 1 {
		n = 1
	}
	pa := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lon))
	pb := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lon))

	coords := make([]Coordinate, 0, n+1)
	for i := 0; i <= n; i++ {
		p := s2.Interpolate(float64(i)/float64(n), pa, pb)
		ll := s2.LatLngFromPoint(p)
		coords = append(coords, NewCoordinate(ll.Lat.Degrees(), ll.Lng.Degrees()))
	}
	return coords
}
