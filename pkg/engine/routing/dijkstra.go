package routing

import (
	"context"

	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
	"github.com/lintang-b-s/flightplanner/pkg/util"
)

// Dijkstra. label-setting search with a binary heap frontier. needs non-negative weights, which flight cost and time are.
// the graph is not checked for negative weights.
//
// among several shortest paths the one whose vertices are settled first wins; which one that is depends on the
// input order of flights and on heap tie-breaking, so callers must not rely on a particular one.
type Dijkstra struct {
	graph        Graph
	costFunction CostFunction

	info []*VertexInfo // info[v] == nil: v has no tentative weight yet
	pq   *da.MinHeap[da.Index]

	numSettledNodes int
}

func NewDijkstra(graph Graph, costFunction CostFunction) *Dijkstra {
	return &Dijkstra{
		graph:        graph,
		costFunction: costFunction,
		info:         make([]*VertexInfo, 0),
		pq:           da.NewBinaryHeap[da.Index](),
	}
}

// ShortestPathSearch. shortest path from start to end. the search stops as soon as end is settled.
// start == end is the empty path with zero weight.
func (us *Dijkstra) ShortestPathSearch(ctx context.Context, start, end string) (da.SearchResult, error) {
	if start == end {
		return da.NewFoundResult(da.Path{}, 0), nil
	}

	s, ok := us.graph.GetVertexId(start)
	if !ok {
		return da.NewNotFoundResult(), nil
	}
	t, ok := us.graph.GetVertexId(end)
	if !ok {
		return da.NewNotFoundResult(), nil
	}

	us.Preallocate()

	us.info[s] = NewVertexInfo(0, nil)
	us.pq.Insert(da.NewPriorityQueueNode(0, s))

	for !us.pq.IsEmpty() {
		if util.StopConcurrentOperation(ctx) {
			return da.NewNotFoundResult(), ctx.Err()
		}

		if us.graphSearchUni(t) {
			break
		}
	}

	if us.info[t] == nil {
		return da.NewNotFoundResult(), nil
	}

	return da.NewFoundResult(us.unpackPath(t), us.info[t].GetWeight()), nil
}

// graphSearchUni. pop the closest vertex & relax its flights. returns true once t is settled.
func (us *Dijkstra) graphSearchUni(t da.Index) bool {
	queryKey, _ := us.pq.ExtractMin()
	uId := queryKey.GetItem()

	uInfo := us.info[uId]
	if uInfo.IsScanned() {
		// stale entry, u was settled through a smaller weight
		return false
	}
	uInfo.Scan()
	us.numSettledNodes++

	if uId == t {
		return true
	}

	us.graph.ForOutEdgesOf(uId, func(e *da.Flight, vId da.Index) {
		newWeight := uInfo.GetWeight() + us.costFunction.GetWeight(e)

		vInfo := us.info[vId]
		if vInfo != nil && newWeight >= vInfo.GetWeight() {
			return
		}

		if vInfo == nil {
			us.info[vId] = NewVertexInfo(newWeight, e)
		} else {
			vInfo.UpdateWeight(newWeight)
			vInfo.UpdateParent(e)
		}

		us.pq.Insert(da.NewPriorityQueueNode(newWeight, vId))
	})

	return false
}

// unpackPath. follow parent flights back from t to the source.
func (us *Dijkstra) unpackPath(t da.Index) da.Path {
	path := make([]*da.Flight, 0)

	cur := us.info[t]
	for cur.GetParent() != nil {
		e := cur.GetParent()
		path = append(path, e)

		prev, _ := us.graph.GetVertexId(e.GetOrigin())
		cur = us.info[prev]
	}

	return da.Path(util.ReverseG(path))
}

func (us *Dijkstra) Preallocate() {
	n := us.graph.NumberOfVertices()
	us.info = make([]*VertexInfo, n)
	us.pq.Preallocate(n)
	us.numSettledNodes = 0
}

func (us *Dijkstra) GetNumSettledNodes() int {
	return us.numSettledNodes
}

func (us *Dijkstra) GetSearchEffort() int {
	return us.GetNumSettledNodes()
}
