package engine

import (
	"context"

	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
	"github.com/lintang-b-s/flightplanner/pkg/engine/routing"
	"github.com/lintang-b-s/flightplanner/pkg/flightparser"
	"github.com/lintang-b-s/flightplanner/pkg/spatialindex"
	"go.uber.org/zap"
)

type Config struct {
	FlightsFile  string
	AirportsFile string // optional
	FlightFilter string // optional CEL expression
}

type Engine struct {
	routingEngine *routing.RoutingEngine
	airports      da.Airports
	rtree         *spatialindex.Rtree
}

func (e *Engine) GetRoutingEngine() *routing.RoutingEngine {
	return e.routingEngine
}

// GetAirports. empty when no airport file was configured.
func (e *Engine) GetAirports() da.Airports {
	return e.airports
}

func (e *Engine) GetSpatialIndex() *spatialindex.Rtree {
	return e.rtree
}

func NewEngine(ctx context.Context, config Config, logger *zap.Logger) (*Engine, error) {
	logger.Info("Starting flight routing engine...")

	opts := make([]flightparser.ParserOption, 0, 1)
	if config.FlightFilter != "" {
		filter, err := flightparser.NewFlightFilter(config.FlightFilter)
		if err != nil {
			return nil, err
		}
		logger.Info("Filtering flights", zap.String("filter", filter.String()))
		opts = append(opts, flightparser.WithFilter(filter))
	}
	parser := flightparser.NewFlightParser(logger, opts...)

	flights, err := parser.ParseFile(ctx, config.FlightsFile)
	if err != nil {
		return nil, err
	}

	airports := da.NewAirports(nil)
	if config.AirportsFile != "" {
		airports, err = parser.ParseAirportsFile(ctx, config.AirportsFile)
		if err != nil {
			return nil, err
		}
	}

	return NewEngineFromData(flights, airports, logger), nil
}

func NewEngineFromData(flights []*da.Flight, airports da.Airports, logger *zap.Logger) *Engine {
	graph := da.NewFlightGraph(flights)
	logger.Info("Flight graph built", zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()), zap.Int("sccs", graph.NumberOfSCCs()),
		zap.Int("cyclic_sccs", graph.NumberOfCyclicSCCs()))

	rtree := spatialindex.NewRtree()
	rtree.Build(airports, logger)

	return &Engine{
		routingEngine: routing.NewRoutingEngine(graph, logger),
		airports:      airports,
		rtree:         rtree,
	}
}
