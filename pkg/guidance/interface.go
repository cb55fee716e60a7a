package guidance

import (
	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
)

type AirportLookup interface {
	Get(name string) (*da.Airport, bool)
}
