package flightparser

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
)

var (
	ErrFilterNotBool = errors.New("flight filter must evaluate to a bool")
)

// FlightFilter. CEL predicate over origin, destination, cost and time, e.g. `cost < 500.0 && origin != "X"`.
type FlightFilter struct {
	raw     string
	program cel.Program
}

func NewFlightFilter(expr string) (*FlightFilter, error) {
	env, err := cel.NewEnv(
		cel.Variable("origin", cel.StringType),
		cel.Variable("destination", cel.StringType),
		cel.Variable("cost", cel.DoubleType),
		cel.Variable("time", cel.DoubleType),
	)
	if err != nil {
		return nil, err
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("flight filter %q: %w", expr, issues.Err())
	}
	if !ast.OutputType().IsExactType(types.BoolType) {
		return nil, fmt.Errorf("flight filter %q: %w", expr, ErrFilterNotBool)
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("flight filter %q: %w", expr, err)
	}

	return &FlightFilter{raw: expr, program: program}, nil
}

func (ff *FlightFilter) Accept(f *da.Flight) (bool, error) {
	res, _, err := ff.program.Eval(map[string]any{
		"origin":      f.GetOrigin(),
		"destination": f.GetDestination(),
		"cost":        f.GetCost(),
		"time":        f.GetTime(),
	})
	if err != nil {
		return false, fmt.Errorf("check %q failed: %w", ff.raw, err)
	}

	ok, isBool := res.Value().(bool)
	if !isBool {
		return false, fmt.Errorf("check %q: %w", ff.raw, ErrFilterNotBool)
	}
	return ok, nil
}

func (ff *FlightFilter) String() string {
	return ff.raw
}
