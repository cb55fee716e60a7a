package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/lintang-b-s/flightplanner/pkg"
	"github.com/lintang-b-s/flightplanner/pkg/concurrent"
	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
	"github.com/lintang-b-s/flightplanner/pkg/engine"
	"github.com/lintang-b-s/flightplanner/pkg/engine/routing"
	log "github.com/lintang-b-s/flightplanner/pkg/logger"
	"golang.org/x/exp/rand"
	"go.uber.org/zap"
)

var (
	flightsFile   = flag.String("flights", "./data/flights.txt", "flight data file")
	numQueries    = flag.Int("n", 1000, "number of random queries")
	criterionFlag = flag.String("criterion", "cost", "cost or time")
	numWorkers    = flag.Int("workers", 8, "number of worker goroutines")
	seed          = flag.Uint64("seed", 42, "random seed")
	maxDepth      = flag.Int("max_depth", pkg.DEFAULT_BACKTRACKING_MAX_DEPTH, "backtracking max flights per walk")
	outFile       = flag.String("out", "rand_queries_result.csv", "result csv")
)

type spParam struct {
	row int
	s   string
	t   string
}

type spResult struct {
	row            int
	dijkstra       da.SearchResult
	backtracking   da.SearchResult
	dijkstraStats  routing.QueryStats
	backtrackStats routing.QueryStats
	err            error
}

func main() {
	flag.Parse()
	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	criterion, err := pkg.ParseCriterion(*criterionFlag)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	e, err := engine.NewEngine(ctx, engine.Config{FlightsFile: *flightsFile}, logger)
	if err != nil {
		panic(err)
	}
	re := e.GetRoutingEngine()
	vertices := re.GetGraph().Vertices()
	if len(vertices) == 0 {
		logger.Fatal("flight graph is empty")
	}

	rng := rand.New(rand.NewSource(*seed))
	queries := make([]spParam, *numQueries)
	for i := range queries {
		queries[i] = spParam{
			row: i,
			s:   vertices[rng.Intn(len(vertices))],
			t:   vertices[rng.Intn(len(vertices))],
		}
	}

	randfout, err := os.Create(*outFile)
	if err != nil {
		panic(err)
	}
	defer randfout.Close()
	w := bufio.NewWriter(randfout)
	defer w.Flush()

	fmt.Fprintln(w, "row,origin,destination,found,dijkstra_weight,backtracking_weight,dijkstra_ms,backtracking_ms," +
		"dijkstra_settled,backtracking_expanded,agree")

	lock := sync.Mutex{}
	mismatches := 0

	calcsSP := func(p spParam) spResult {
		res := spResult{row: p.row}

		res.dijkstra, res.dijkstraStats, res.err = re.ShortestPathWithStats(ctx, pkg.DIJKSTRA, criterion,
			p.s, p.t, *maxDepth)
		if res.err != nil {
			return res
		}

		res.backtracking, res.backtrackStats, res.err = re.ShortestPathWithStats(ctx, pkg.BACKTRACKING, criterion,
			p.s, p.t, *maxDepth)
		if res.err != nil {
			return res
		}

		agree := res.dijkstra.Found() == res.backtracking.Found() &&
			(!res.dijkstra.Found() || da.Eq(res.dijkstra.GetTotalWeight(), res.backtracking.GetTotalWeight()))

		lock.Lock()
		defer lock.Unlock()
		if !agree {
			mismatches++
			logger.Warn("algorithms disagree", zap.String("origin", p.s), zap.String("destination", p.t))
		}
		fmt.Fprintf(w, "%d,%s,%s,%t,%s,%s,%d,%d,%d,%d,%t\n", p.row, strconv.Quote(p.s), strconv.Quote(p.t),
			res.dijkstra.Found(),
			strconv.FormatFloat(res.dijkstra.GetTotalWeight(), 'f', -1, 64),
			strconv.FormatFloat(res.backtracking.GetTotalWeight(), 'f', -1, 64),
			res.dijkstraStats.Elapsed.Milliseconds(), res.backtrackStats.Elapsed.Milliseconds(),
			res.dijkstraStats.Effort, res.backtrackStats.Effort, agree)

		if (p.row+1)%100 == 0 {
			logger.Sugar().Infof("done query %v", p.row+1)
		}
		return res
	}

	workers := concurrent.NewWorkerPool[spParam, spResult](*numWorkers, len(queries))

	for _, q := range queries {
		workers.AddJob(q)
	}

	workers.Close()
	workers.Start(calcsSP)
	workers.Wait()

	var totalDijkstra, totalBacktracking time.Duration
	settled, expanded := 0, 0
	failed := 0
	for res := range workers.CollectResults() {
		if res.err != nil {
			failed++
			continue
		}
		totalDijkstra += res.dijkstraStats.Elapsed
		totalBacktracking += res.backtrackStats.Elapsed
		settled += res.dijkstraStats.Effort
		expanded += res.backtrackStats.Effort
	}

	logger.Info("random queries done",
		zap.Int("queries", len(queries)),
		zap.Int("failed", failed),
		zap.Int("mismatches", mismatches),
		zap.Duration("dijkstra_total", totalDijkstra),
		zap.Duration("backtracking_total", totalBacktracking),
		zap.Int("dijkstra_settled_total", settled),
		zap.Int("backtracking_expanded_total", expanded),
	)
}
