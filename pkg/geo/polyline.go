package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords. google encoded polyline (precision 5) of the coordinates.
func PolylineFromCoords(coords []Coordinate) string {
	pts := make([][]float64, len(coords))
	for i, c := range coords {
		pts[i] = []float64{c.Lat, c.Lon}
	}
	return string(polyline.EncodeCoords(pts))
}
