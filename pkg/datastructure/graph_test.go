package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFlights() []*Flight {
	return []*Flight{
		NewFlight("A", "B", 100, 2),
		NewFlight("A", "C", 10, 5),
		NewFlight("C", "B", 10, 1),
	}
}

func TestNewFlightGraph(t *testing.T) {
	g := NewFlightGraph(sampleFlights())

	assert.Equal(t, 3, g.NumberOfVertices())
	assert.Equal(t, 3, g.NumberOfEdges())
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	neighbors := g.Neighbors("A")
	require.Len(t, neighbors, 2)
	assert.Equal(t, "B", neighbors[0].GetDestination())
	assert.Equal(t, "C", neighbors[1].GetDestination())

	assert.Empty(t, g.Neighbors("B"))
	assert.NotNil(t, g.Neighbors("unknown"))
	assert.Empty(t, g.Neighbors("unknown"))

	a, ok := g.GetVertexId("A")
	require.True(t, ok)
	assert.Equal(t, 2, g.GetOutDegree(a))
	b, _ := g.GetVertexId("B")
	assert.Equal(t, 2, g.GetInDegree(b))

	_, ok = g.GetVertexId("X")
	assert.False(t, ok)
	assert.False(t, g.HasVertex("X"))
}

func TestFlightGraphKeepsEveryFlightOnce(t *testing.T) {
	flights := []*Flight{
		NewFlight("A", "B", 1, 1),
		NewFlight("A", "B", 2, 2), // parallel flight
		NewFlight("B", "A", 3, 3),
		NewFlight("C", "C", 4, 4), // self loop
	}
	g := NewFlightGraph(flights)

	all := g.Flights()
	require.Len(t, all, len(flights))
	for i, f := range all {
		assert.Equal(t, Index(i), f.GetEdgeId())
		assert.Equal(t, flights[i].GetOrigin(), f.GetOrigin())
		assert.Equal(t, flights[i].GetCost(), f.GetCost())
	}

	total := 0
	for _, v := range g.Vertices() {
		for _, f := range g.Neighbors(v) {
			assert.Equal(t, v, f.GetOrigin())
			total++
		}
	}
	assert.Equal(t, len(flights), total)
}

func TestPath(t *testing.T) {
	g := NewFlightGraph(sampleFlights())
	ac := g.Neighbors("A")[1]
	cb := g.Neighbors("C")[0]

	p := Path{ac, cb}
	assert.True(t, p.IsConnected())
	assert.Equal(t, []string{"A", "C", "B"}, p.Nodes())
	assert.InDelta(t, 20.0, p.TotalCost(), EPS)
	assert.InDelta(t, 6.0, p.TotalTime(), EPS)

	assert.False(t, Path{cb, ac}.IsConnected())
	assert.Empty(t, Path{}.Nodes())

	res := NewFoundResult(p, 20)
	assert.True(t, res.Found())
	assert.Equal(t, 20.0, res.GetTotalWeight())
	assert.InDelta(t, 6.0, res.TotalTime(), EPS)

	assert.False(t, NewNotFoundResult().Found())
	assert.Empty(t, NewNotFoundResult().GetPath())
}
