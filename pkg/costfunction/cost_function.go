package costfunction

import (
	"github.com/lintang-b-s/flightplanner/pkg"
)

type EdgeAttributes interface {
	GetCost() float64
	GetTime() float64
}

// CostFunction. scalar weight of a flight under one criterion. both search algorithms only see this.
type CostFunction interface {
	GetWeight(e EdgeAttributes) float64
	GetCriterion() pkg.Criterion
}

// New. resolve the criterion once, outside of the search loop.
func New(criterion pkg.Criterion) (CostFunction, error) {
	switch criterion {
	case pkg.COST:
		return NewPriceCostFunction(), nil
	case pkg.TIME:
		return NewTimeCostFunction(), nil
	default:
		return nil, pkg.ErrUnknownCriterion
	}
}

// WeightOf. cost for COST, time for TIME.
func WeightOf(e EdgeAttributes, criterion pkg.Criterion) float64 {
	if criterion == pkg.TIME {
		return e.GetTime()
	}
	return e.GetCost()
}
