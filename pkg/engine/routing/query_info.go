package routing

import (
	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
)

type VertexInfo struct {
	weight     float64
	parentEdge *da.Flight // flight used to reach this vertex on the current best path, nil for the source
	scanned    bool       // settled: weight is the shortest path weight from the source
}

func NewVertexInfo(weight float64, parentEdge *da.Flight) *VertexInfo {
	return &VertexInfo{
		weight:     weight,
		parentEdge: parentEdge,
	}
}

func (vi *VertexInfo) GetWeight() float64 {
	return vi.weight
}

func (vi *VertexInfo) UpdateWeight(w float64) {
	vi.weight = w
}

func (vi *VertexInfo) UpdateParent(parentEdge *da.Flight) {
	vi.parentEdge = parentEdge
}

func (vi *VertexInfo) GetParent() *da.Flight {
	return vi.parentEdge
}

func (vi *VertexInfo) Scan() {
	vi.scanned = true
}

func (vi *VertexInfo) IsScanned() bool {
	return vi.scanned
}
