package flightparser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
	"github.com/lintang-b-s/flightplanner/pkg/util"
	"go.uber.org/zap"
)

const (
	FIELD_SEPARATOR = "|"
	FLIGHT_FIELDS   = 4
	AIRPORT_FIELDS  = 3
)

var (
	ErrNegativeWeight = errors.New("flight cost and time must be non-negative")
)

type FlightParser struct {
	logger *zap.Logger
	filter *FlightFilter
	source *SourceOpener
}

type ParserOption func(*FlightParser)

// WithFilter. flights for which the filter evaluates to false are dropped before graph construction.
func WithFilter(filter *FlightFilter) ParserOption {
	return func(p *FlightParser) {
		p.filter = filter
	}
}

func WithSourceOpener(source *SourceOpener) ParserOption {
	return func(p *FlightParser) {
		p.source = source
	}
}

func NewFlightParser(logger *zap.Logger, opts ...ParserOption) *FlightParser {
	p := &FlightParser{
		logger: logger,
		source: NewSourceOpener(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile. read flights from a local path, a .bz2 file or an s3://bucket/key object.
func (p *FlightParser) ParseFile(ctx context.Context, path string) ([]*da.Flight, error) {
	rc, err := p.source.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	p.logger.Info("reading flight data", zap.String("path", path))
	flights, err := p.Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("flight data %s: %w", path, err)
	}
	p.logger.Info("flight data read", zap.String("path", path), zap.Int("flights", len(flights)))
	return flights, nil
}

// Parse. one flight per line, origin|destination|cost|time.
// lines that do not split into exactly four fields are skipped. a field that is not a number fails the whole read.
func (p *FlightParser) Parse(r io.Reader) ([]*da.Flight, error) {
	br := bufio.NewReader(r)

	flights := make([]*da.Flight, 0)
	lineNum := 0
	skipped := 0
	filtered := 0
	for {
		line, err := util.ReadLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		lineNum++

		parts := splitFields(line)
		if len(parts) != FLIGHT_FIELDS {
			skipped++
			continue
		}

		cost, err := util.StringToFloat64(parts[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid cost %q: %w", lineNum, parts[2], err)
		}
		time, err := util.StringToFloat64(parts[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid time %q: %w", lineNum, parts[3], err)
		}
		if cost < 0 || time < 0 {
			return nil, fmt.Errorf("line %d: %w", lineNum, ErrNegativeWeight)
		}

		flight := da.NewFlight(parts[0], parts[1], cost, time)
		if p.filter != nil {
			ok, err := p.filter.Accept(flight)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			if !ok {
				filtered++
				continue
			}
		}

		flights = append(flights, flight)
	}

	if skipped > 0 || filtered > 0 {
		p.logger.Debug("flight lines ignored", zap.Int("malformed", skipped), zap.Int("filtered", filtered))
	}
	return flights, nil
}

// ParseAirportsFile. optional airport coordinates, name|lat|lon per line.
func (p *FlightParser) ParseAirportsFile(ctx context.Context, path string) (da.Airports, error) {
	rc, err := p.source.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	airports, err := ParseAirports(rc)
	if err != nil {
		return nil, fmt.Errorf("airport data %s: %w", path, err)
	}
	p.logger.Info("airport data read", zap.String("path", path), zap.Int("airports", len(airports)))
	return airports, nil
}

func ParseAirports(r io.Reader) (da.Airports, error) {
	br := bufio.NewReader(r)

	airports := make([]*da.Airport, 0)
	lineNum := 0
	for {
		line, err := util.ReadLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		lineNum++

		parts := splitFields(line)
		if len(parts) != AIRPORT_FIELDS {
			continue
		}

		lat, err := util.StringToFloat64(parts[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude %q: %w", lineNum, parts[1], err)
		}
		lon, err := util.StringToFloat64(parts[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude %q: %w", lineNum, parts[2], err)
		}
		if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			return nil, fmt.Errorf("line %d: coordinate out of range (%f, %f)", lineNum, lat, lon)
		}

		airports = append(airports, da.NewAirport(parts[0], lat, lon))
	}

	return da.NewAirports(airports), nil
}

// splitFields. trailing empty fields are dropped, so "A|B|1|" has three fields.
func splitFields(line string) []string {
	parts := strings.Split(line, FIELD_SEPARATOR)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
