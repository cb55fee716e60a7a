package costfunction

import (
	"github.com/lintang-b-s/flightplanner/pkg"
)

type TimeFunction struct {
}

func NewTimeCostFunction() *TimeFunction {
	return &TimeFunction{}
}

func (tf *TimeFunction) GetWeight(e EdgeAttributes) float64 {
	return e.GetTime()
}

func (tf *TimeFunction) GetCriterion() pkg.Criterion {
	return pkg.TIME
}
