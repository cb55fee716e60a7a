package geo

import (
	"math"

	"github.com/lintang-b-s/flightplanner/pkg/util"
)

// InitialBearing. compass heading in degrees [0, 360) at departure from a along the great circle to b.
func InitialBearing(a, b Coordinate) float64 {
	latA := util.DegreeToRadians(a.Lat)
	latB := util.DegreeToRadians(b.Lat)
	dLon := util.DegreeToRadians(b.Lon - a.Lon)

	east := math.Sin(dLon) * math.Cos(latB)
	north := math.Cos(latA)*math.Sin(latB) - math.Sin(latA)*math.Cos(latB)*math.Cos(dLon)

	heading := util.RadiansToDegree(math.Atan2(east, north))
	return math.Mod(heading+360, 360)
}
