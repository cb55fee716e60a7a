package spatialindex

import (
	"testing"

	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testAirports() da.Airports {
	return da.NewAirports([]*da.Airport{
		da.NewAirport("CGK", -6.1256, 106.6558),
		da.NewAirport("HLP", -6.2666, 106.8910),
		da.NewAirport("SIN", 1.3644, 103.9915),
		da.NewAirport("SUV", -18.0433, 178.5592),
		da.NewAirport("TVU", -16.6906, -179.8770),
	})
}

func TestSearchWithinRadius(t *testing.T) {
	rt := NewRtree()
	rt.Build(testAirports(), zap.NewNop())
	require.Equal(t, 5, rt.Len())

	testCases := []struct {
		name   string
		lat    float64
		lon    float64
		radius float64
		want   []string
	}{
		{name: "jakarta both airports closest first", lat: -6.13, lon: 106.66, radius: 50, want: []string{"CGK", "HLP"}},
		{name: "small radius", lat: -6.13, lon: 106.66, radius: 5, want: []string{"CGK"}},
		{name: "nothing nearby", lat: 48.85, lon: 2.35, radius: 100, want: []string{}},
		{name: "across the antimeridian", lat: -17.0, lon: 179.9, radius: 100, want: []string{"TVU"}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := rt.SearchWithinRadius(tt.lat, tt.lon, tt.radius)
			names := make([]string, 0, len(got))
			for _, na := range got {
				names = append(names, na.GetAirport().GetName())
				assert.LessOrEqual(t, na.GetDistance(), tt.radius)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestNearest(t *testing.T) {
	rt := NewRtree()
	rt.Build(testAirports(), zap.NewNop())

	na, ok := rt.Nearest(1.35, 103.99, 30)
	require.True(t, ok)
	assert.Equal(t, "SIN", na.GetAirport().GetName())

	_, ok = rt.Nearest(0, 0, 30)
	assert.False(t, ok)
}

func TestSearchWithinRadiusFindsAirportDueNorth(t *testing.T) {
	rt := NewRtree()
	// 0.8 degree of latitude is about 89 km
	rt.Build(da.NewAirports([]*da.Airport{
		da.NewAirport("NTH", 0.8, 0),
		da.NewAirport("FAR", 1.0, 0),
	}), zap.NewNop())

	got := rt.SearchWithinRadius(0, 0, 100)
	require.Len(t, got, 1)
	assert.Equal(t, "NTH", got[0].GetAirport().GetName())
	assert.InDelta(t, 88.96, got[0].GetDistance(), 0.01)
}
