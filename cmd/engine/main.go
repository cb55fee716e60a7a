package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/flightplanner/pkg"
	"github.com/lintang-b-s/flightplanner/pkg/engine"
	"github.com/lintang-b-s/flightplanner/pkg/http"
	"github.com/lintang-b-s/flightplanner/pkg/http/usecases"
	"github.com/lintang-b-s/flightplanner/pkg/logger"
	"github.com/lintang-b-s/flightplanner/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", false, "enable the global request rate limiter")
	searchRadius = flag.Float64("airport_search_radius", 100.0, "nearest airport search radius in km")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}

	viper.SetDefault("FLIGHTS_FILE", "./data/flights.txt")
	viper.SetDefault("AIRPORTS_FILE", "")
	viper.SetDefault("FLIGHT_FILTER", "")
	viper.SetDefault("ROUTE_CACHE_SIZE", 1<<14)
	viper.SetDefault("BACKTRACKING_MAX_DEPTH", pkg.DEFAULT_BACKTRACKING_MAX_DEPTH)

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	flightEngine, err := engine.NewEngine(ctx, engine.Config{
		FlightsFile:  viper.GetString("FLIGHTS_FILE"),
		AirportsFile: viper.GetString("AIRPORTS_FILE"),
		FlightFilter: viper.GetString("FLIGHT_FILTER"),
	}, logger)
	if err != nil {
		panic(err)
	}

	routingService, err := usecases.NewRoutingService(logger, flightEngine.GetRoutingEngine(),
		flightEngine.GetSpatialIndex(), flightEngine.GetAirports(), viper.GetInt("ROUTE_CACHE_SIZE"),
		*searchRadius, viper.GetInt("BACKTRACKING_MAX_DEPTH"))
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)

	serverErr := make(chan error, 1)
	go func() {
		_, err := api.Use(ctx, logger, *useRateLimit, routingService)
		serverErr <- err
	}()

	go func() {
		signal := http.GracefulShutdown()
		logger.Info("shutdown signal received", zap.String("signal", signal.String()))
		cleanup()
	}()

	if err := <-serverErr; err != nil {
		logger.Error("flightplanner server error", zap.Error(err))
	}
	logger.Info("flightplanner routing engine server stopped")
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
