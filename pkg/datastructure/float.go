package datastructure

import (
	"math"
)

const (
	EPS = 1e-6
)

// equal operator
func Eq(a, b float64) bool {
	return math.Abs(a-b) <= EPS
}
