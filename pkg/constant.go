package pkg

import (
	"errors"
	"strings"
)

// enum of path-search criterion
type Criterion uint8

const (
	COST Criterion = iota
	TIME
)

// enum of path-search algorithm
type Algorithm uint8

const (
	DIJKSTRA Algorithm = iota
	BACKTRACKING
)

const (
	// max flights per backtracking walk. 0 bounds the walk by the number of nodes only when a cycle is
	// reachable from the start, a negative value never bounds it.
	DEFAULT_BACKTRACKING_MAX_DEPTH = 0
)

var (
	ErrUnknownCriterion = errors.New("unknown criterion, must be one of: cost, time")
	ErrUnknownAlgorithm = errors.New("unknown algorithm, must be one of: dijkstra, backtracking")
)

func ParseCriterion(token string) (Criterion, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "cost":
		return COST, nil
	case "time":
		return TIME, nil
	default:
		return COST, ErrUnknownCriterion
	}
}

func (c Criterion) String() string {
	switch c {
	case COST:
		return "cost"
	case TIME:
		return "time"
	default:
		return "unknown"
	}
}

func ParseAlgorithm(token string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "dijkstra", "":
		return DIJKSTRA, nil
	case "backtracking":
		return BACKTRACKING, nil
	default:
		return DIJKSTRA, ErrUnknownAlgorithm
	}
}

func (a Algorithm) String() string {
	switch a {
	case DIJKSTRA:
		return "dijkstra"
	case BACKTRACKING:
		return "backtracking"
	default:
		return "unknown"
	}
}
