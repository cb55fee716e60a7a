package datastructure

const (
	white uint8 = iota
	gray
	black
)

// HasCycleReachableFrom. true if a walk starting at start can enter a cycle without first arriving at end.
// flights departing from end are never followed, same as the backtracking search.
func (g *FlightGraph) HasCycleReachableFrom(start, end string) bool {
	s, ok := g.GetVertexId(start)
	if !ok || start == end {
		return false
	}

	if g.numCyclicSCCs == 0 {
		return false
	}

	t, hasEnd := g.GetVertexId(end)
	if !hasEnd {
		t = INVALID_VERTEX_ID
	}

	// every vertex of start's scc is reachable without leaving it, so a cyclic scc that does not contain
	// end holds a cycle the walk can enter before end.
	if g.IsCyclicSCC(s) && (!hasEnd || g.GetSCCOfAVertex(s) != g.GetSCCOfAVertex(t)) {
		return true
	}

	color := make([]uint8, g.NumberOfVertices())
	return g.dfsFindCycle(s, t, color)
}

func (g *FlightGraph) dfsFindCycle(u, t Index, color []uint8) bool {
	if u == t {
		return false
	}
	color[u] = gray

	found := false
	for _, e := range g.outEdges[u] {
		head := g.vertexIds[e.destination]
		if color[head] == gray {
			found = true
			break
		}
		if color[head] == white && g.dfsFindCycle(head, t, color) {
			found = true
			break
		}
	}

	color[u] = black
	return found
}
