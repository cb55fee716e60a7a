package datastructure

// Flight. directed flight connection origin -> destination carrying two independent weights.
// immutable after construction.
type Flight struct {
	origin      string
	destination string
	cost        float64
	time        float64
	edgeId      Index // position of the flight in the input sequence
}

func NewFlight(origin, destination string, cost, time float64) *Flight {
	return &Flight{
		origin:      origin,
		destination: destination,
		cost:        cost,
		time:        time,
	}
}

func newFlightWithId(f *Flight, edgeId Index) *Flight {
	return &Flight{
		origin:      f.origin,
		destination: f.destination,
		cost:        f.cost,
		time:        f.time,
		edgeId:      edgeId,
	}
}

func (f *Flight) GetOrigin() string {
	return f.origin
}

func (f *Flight) GetDestination() string {
	return f.destination
}

func (f *Flight) GetCost() float64 {
	return f.cost
}

func (f *Flight) GetTime() float64 {
	return f.time
}

func (f *Flight) GetEdgeId() Index {
	return f.edgeId
}
