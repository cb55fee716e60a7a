package datastructure

import (
	"github.com/lintang-b-s/flightplanner/pkg/util"
)

// RunKosaraju. runs kosaraju's algorithm to find strongly connected components (SCCs) of the flight graph
// and builds the condensation dag used by Connected.
func (g *FlightGraph) RunKosaraju() {
	n := Index(g.NumberOfVertices())

	inEdges := make([][]Index, n)
	for u := Index(0); u < n; u++ {
		g.ForOutEdgesOf(u, func(e *Flight, head Index) {
			inEdges[head] = append(inEdges[head], u)
		})
	}

	order := make([]Index, 0, n)
	visited := make([]bool, n)
	for v := Index(0); v < n; v++ {
		if !visited[v] {
			g.dfs(v, &order, visited, nil)
		}
	}

	order = util.ReverseG[Index](order)

	// reset visited
	visited = make([]bool, n)
	sccs := make([]Index, n)
	sccSize := make([]int, 0)

	for _, v := range order {
		if !visited[v] {
			component := make([]Index, 0, 10)
			g.dfs(v, &component, visited, inEdges)

			sccId := Index(len(sccSize))
			for _, node := range component {
				sccs[node] = sccId
			}
			sccSize = append(sccSize, len(component))
		}
	}

	sccSelfLoop := make([]bool, len(sccSize))
	condAdj := make([][]Index, len(sccSize))
	for u := Index(0); u < n; u++ {
		g.ForOutEdgesOf(u, func(e *Flight, head Index) {
			if head == u {
				sccSelfLoop[sccs[u]] = true
			}
			if sccs[head] != sccs[u] {
				condAdj[sccs[u]] = append(condAdj[sccs[u]], sccs[head])
			}
		})
	}

	g.sccs = sccs
	g.sccSize = sccSize
	g.sccSelfLoop = sccSelfLoop
	g.sccCondensationAdj = condAdj

	g.numCyclicSCCs = 0
	for scc := range sccSize {
		if sccSize[scc] > 1 || sccSelfLoop[scc] {
			g.numCyclicSCCs++
		}
	}
}

// dfs. forward dfs over out-flights when inEdges is nil, otherwise reversed dfs over inEdges.
func (g *FlightGraph) dfs(v Index, output *[]Index, visited []bool, inEdges [][]Index) {
	visited[v] = true

	if inEdges == nil {
		g.ForOutEdgesOf(v, func(e *Flight, head Index) {
			if !visited[head] {
				g.dfs(head, output, visited, inEdges)
			}
		})
	} else {
		for _, tail := range inEdges[v] {
			if !visited[tail] {
				g.dfs(tail, output, visited, inEdges)
			}
		}
	}

	*output = append(*output, v)
}

func (g *FlightGraph) GetSCCOfAVertex(u Index) Index {
	return g.sccs[u]
}

func (g *FlightGraph) NumberOfSCCs() int {
	return len(g.sccSize)
}

// NumberOfCyclicSCCs. 0 means the flight graph is a dag.
func (g *FlightGraph) NumberOfCyclicSCCs() int {
	return g.numCyclicSCCs
}

// IsCyclicSCC. true if the scc of u contains a cycle (more than one vertex or a self loop).
func (g *FlightGraph) IsCyclicSCC(u Index) bool {
	scc := g.sccs[u]
	return g.sccSize[scc] > 1 || g.sccSelfLoop[scc]
}

// Connected. true if some walk leads from node u to node v. every node reaches itself.
// O(V_G + E_G) over the condensation graph.
func (g *FlightGraph) Connected(u, v string) bool {
	if u == v {
		return true
	}
	uId, ok := g.GetVertexId(u)
	if !ok {
		return false
	}
	vId, ok := g.GetVertexId(v)
	if !ok {
		return false
	}

	sccOfU := g.sccs[uId]
	sccOfV := g.sccs[vId]
	if sccOfU == sccOfV {
		return true
	}

	connected := false
	visited := make([]bool, len(g.sccSize))
	g.dfsCondensationGraph(sccOfU, sccOfV, visited, &connected)
	return connected
}

func (g *FlightGraph) dfsCondensationGraph(u Index, t Index, visited []bool, connected *bool) {
	if u == t {
		*connected = true
	}
	if visited[u] || *connected {
		return
	}
	visited[u] = true

	for _, v := range g.sccCondensationAdj[u] {
		g.dfsCondensationGraph(v, t, visited, connected)
	}
}
