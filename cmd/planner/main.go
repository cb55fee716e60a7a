package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/flightplanner/pkg"
	"github.com/lintang-b-s/flightplanner/pkg/engine"
	"github.com/lintang-b-s/flightplanner/pkg/guidance"
	"github.com/lintang-b-s/flightplanner/pkg/logger"
	"github.com/lintang-b-s/flightplanner/pkg/metrics"
	"github.com/lintang-b-s/flightplanner/pkg/util"
	"go.uber.org/zap"
)

const usage = "Usage: planner [flags] <flightDataFile> <startingCity> <destinationCity> <outputFile> <criterion>"

var errUsage = errors.New(usage)

type options struct {
	algorithm    string
	airportsFile string
	filter       string
	maxDepth     int
	graphvizFile string
}

func main() {
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err = run(ctx, os.Args[1:], os.Stdout, os.Stderr, log)
	switch {
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	case err != nil:
		log.Error("planner failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, log *zap.Logger) error {
	var opts options

	fs := flag.NewFlagSet("planner", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.algorithm, "algorithm", "dijkstra", "search algorithm: dijkstra or backtracking")
	fs.StringVar(&opts.airportsFile, "airports", "", "optional airport coordinates file (name|lat|lon)")
	fs.StringVar(&opts.filter, "filter", "", "optional CEL expression over origin, destination, cost, time")
	fs.IntVar(&opts.maxDepth, "max_depth", pkg.DEFAULT_BACKTRACKING_MAX_DEPTH,
		"backtracking: max flights per walk. 0 bounds by the number of nodes when a cycle is reachable, -1 never bounds")
	fs.StringVar(&opts.graphvizFile, "graphviz", "", "optional route image output (.svg or .png)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 5 {
		fmt.Fprintln(stderr, usage)
		return errUsage
	}
	flightDataFile, start, end, outputFile, criterionToken := fs.Arg(0), fs.Arg(1), fs.Arg(2), fs.Arg(3), fs.Arg(4)

	criterion, err := pkg.ParseCriterion(criterionToken)
	if err != nil {
		return err
	}
	algorithm, err := pkg.ParseAlgorithm(opts.algorithm)
	if err != nil {
		return err
	}

	m, err := metrics.Measure(func() error {
		e, err := engine.NewEngine(ctx, engine.Config{
			FlightsFile:  flightDataFile,
			AirportsFile: opts.airportsFile,
			FlightFilter: opts.filter,
		}, log)
		if err != nil {
			return err
		}

		res, err := e.GetRoutingEngine().ShortestPath(ctx, algorithm, criterion, start, end, opts.maxDepth)
		if err != nil {
			return err
		}
		it := guidance.NewItineraryBuilder(e.GetAirports()).Build(start, end, res)

		if err := writeReportFile(outputFile, it); err != nil {
			return err
		}

		if opts.graphvizFile != "" {
			return writeGraphvizFile(ctx, opts.graphvizFile, it)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return m.Write(stdout)
}

func writeReportFile(path string, it *guidance.Itinerary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening output file: %w", err)
	}
	if err := guidance.WriteReport(f, it); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeGraphvizFile(ctx context.Context, path string, it *guidance.Itinerary) error {
	format, err := guidance.ImageFormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := guidance.RenderRoute(ctx, f, it, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
