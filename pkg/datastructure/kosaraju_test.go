package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunKosaraju(t *testing.T) {
	g := NewFlightGraph([]*Flight{
		NewFlight("A", "B", 1, 1),
		NewFlight("B", "C", 1, 1),
		NewFlight("C", "A", 1, 1),
		NewFlight("C", "D", 1, 1),
		NewFlight("D", "E", 1, 1),
		NewFlight("F", "F", 1, 1),
	})

	assert.Equal(t, 4, g.NumberOfSCCs())

	a, _ := g.GetVertexId("A")
	b, _ := g.GetVertexId("B")
	c, _ := g.GetVertexId("C")
	d, _ := g.GetVertexId("D")
	f, _ := g.GetVertexId("F")

	assert.Equal(t, g.GetSCCOfAVertex(a), g.GetSCCOfAVertex(b))
	assert.Equal(t, g.GetSCCOfAVertex(a), g.GetSCCOfAVertex(c))
	assert.NotEqual(t, g.GetSCCOfAVertex(a), g.GetSCCOfAVertex(d))

	assert.True(t, g.IsCyclicSCC(a))
	assert.False(t, g.IsCyclicSCC(d))
	assert.True(t, g.IsCyclicSCC(f))
	assert.Equal(t, 2, g.NumberOfCyclicSCCs())

	dag := NewFlightGraph([]*Flight{NewFlight("A", "B", 1, 1), NewFlight("B", "C", 1, 1)})
	assert.Equal(t, 0, dag.NumberOfCyclicSCCs())
}

func TestConnected(t *testing.T) {
	g := NewFlightGraph([]*Flight{
		NewFlight("A", "B", 1, 1),
		NewFlight("B", "C", 1, 1),
		NewFlight("C", "A", 1, 1),
		NewFlight("C", "D", 1, 1),
		NewFlight("D", "E", 1, 1),
		NewFlight("F", "F", 1, 1),
	})

	testCases := []struct {
		name string
		u, v string
		want bool
	}{
		{name: "same scc", u: "B", v: "A", want: true},
		{name: "through condensation", u: "A", v: "E", want: true},
		{name: "against direction", u: "E", v: "A", want: false},
		{name: "isolated", u: "A", v: "F", want: false},
		{name: "unknown node", u: "X", v: "A", want: false},
		{name: "unknown node to itself", u: "X", v: "X", want: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Connected(tt.u, tt.v))
		})
	}
}

func TestHasCycleReachableFrom(t *testing.T) {
	testCases := []struct {
		name       string
		flights    []*Flight
		start, end string
		want       bool
	}{
		{
			name: "acyclic",
			flights: []*Flight{
				NewFlight("A", "B", 1, 1), NewFlight("A", "C", 1, 1), NewFlight("C", "B", 1, 1),
			},
			start: "A", end: "B", want: false,
		},
		{
			name: "cycle before destination",
			flights: []*Flight{
				NewFlight("A", "C", 1, 1), NewFlight("C", "A", 1, 1), NewFlight("C", "B", 1, 1),
			},
			start: "A", end: "B", want: true,
		},
		{
			name: "cycle only through destination",
			flights: []*Flight{
				NewFlight("A", "B", 1, 1), NewFlight("B", "A", 1, 1),
			},
			start: "A", end: "B", want: false,
		},
		{
			name: "self loop",
			flights: []*Flight{
				NewFlight("A", "A", 1, 1), NewFlight("A", "B", 1, 1),
			},
			start: "A", end: "B", want: true,
		},
		{
			name: "cycle not reachable",
			flights: []*Flight{
				NewFlight("A", "B", 1, 1), NewFlight("C", "D", 1, 1), NewFlight("D", "C", 1, 1),
			},
			start: "A", end: "B", want: false,
		},
		{
			name: "second cycle inside the destination scc",
			flights: []*Flight{
				NewFlight("A", "B", 1, 1), NewFlight("B", "A", 1, 1),
				NewFlight("A", "C", 1, 1), NewFlight("C", "A", 1, 1),
			},
			start: "A", end: "B", want: true,
		},
		{
			name: "cyclic start scc, unknown destination",
			flights: []*Flight{
				NewFlight("A", "C", 1, 1), NewFlight("C", "A", 1, 1),
			},
			start: "A", end: "X", want: true,
		},
		{
			name:    "unknown start",
			flights: []*Flight{NewFlight("A", "A", 1, 1)},
			start:   "X",
			end:     "A",
			want:    false,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g := NewFlightGraph(tt.flights)
			assert.Equal(t, tt.want, g.HasCycleReachableFrom(tt.start, tt.end))
		})
	}
}
