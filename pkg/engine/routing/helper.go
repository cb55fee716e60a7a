package routing

// Connected. true if some walk leads from u to v.
func (re *RoutingEngine) Connected(u, v string) bool {
	return re.graph.Connected(u, v)
}

func (re *RoutingEngine) HasVertex(name string) bool {
	return re.graph.HasVertex(name)
}
