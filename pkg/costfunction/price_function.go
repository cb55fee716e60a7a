package costfunction

import (
	"github.com/lintang-b-s/flightplanner/pkg"
)

type PriceFunction struct {
}

func NewPriceCostFunction() *PriceFunction {
	return &PriceFunction{}
}

func (pf *PriceFunction) GetWeight(e EdgeAttributes) float64 {
	return e.GetCost()
}

func (pf *PriceFunction) GetCriterion() pkg.Criterion {
	return pkg.COST
}
