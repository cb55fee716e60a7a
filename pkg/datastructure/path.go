package datastructure

// Path. flights in travel order, path[i].destination == path[i+1].origin.
// an empty path is the trivial route from a node to itself.
type Path []*Flight

func (p Path) TotalCost() float64 {
	total := 0.0
	for _, f := range p {
		total += f.cost
	}
	return total
}

func (p Path) TotalTime() float64 {
	total := 0.0
	for _, f := range p {
		total += f.time
	}
	return total
}

// Nodes. visited nodes from origin to destination. empty for the trivial path.
func (p Path) Nodes() []string {
	if len(p) == 0 {
		return []string{}
	}
	nodes := make([]string, 0, len(p)+1)
	nodes = append(nodes, p[0].origin)
	for _, f := range p {
		nodes = append(nodes, f.destination)
	}
	return nodes
}

// IsConnected. each flight departs where the previous one arrived.
func (p Path) IsConnected() bool {
	for i := 1; i < len(p); i++ {
		if p[i-1].destination != p[i].origin {
			return false
		}
	}
	return true
}

// SearchResult. either found (path + total weight under the query criterion) or not found.
type SearchResult struct {
	found       bool
	path        Path
	totalWeight float64
}

func NewFoundResult(path Path, totalWeight float64) SearchResult {
	return SearchResult{
		found:       true,
		path:        path,
		totalWeight: totalWeight,
	}
}

func NewNotFoundResult() SearchResult {
	return SearchResult{found: false, path: Path{}}
}

func (sr SearchResult) Found() bool {
	return sr.found
}

func (sr SearchResult) GetPath() Path {
	return sr.path
}

func (sr SearchResult) GetTotalWeight() float64 {
	return sr.totalWeight
}

func (sr SearchResult) TotalCost() float64 {
	return sr.path.TotalCost()
}

func (sr SearchResult) TotalTime() float64 {
	return sr.path.TotalTime()
}
