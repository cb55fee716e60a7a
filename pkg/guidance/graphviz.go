package guidance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

var (
	ErrUnknownImageFormat = errors.New("unknown image format, must be one of: svg, png")
)

func ParseImageFormat(token string) (graphviz.Format, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "svg":
		return graphviz.SVG, nil
	case "png":
		return graphviz.PNG, nil
	default:
		return graphviz.SVG, ErrUnknownImageFormat
	}
}

// ImageFormatFromPath. format from the file extension, route.png -> png.
func ImageFormatFromPath(path string) (graphviz.Format, error) {
	return ParseImageFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// RenderRoute. one node per stop, one edge per flight labeled with its cost and time.
// an itinerary without a path renders start and end unconnected.
func RenderRoute(ctx context.Context, w io.Writer, it *Itinerary, format graphviz.Format) error {
	g, err := graphviz.New(ctx)
	if err != nil {
		return err
	}

	defer g.Close()

	graph, err := g.Graph()
	if err != nil {
		return err
	}

	if err = buildRouteGraph(graph, it); err != nil {
		return err
	}

	return g.Render(ctx, graph, format, w)
}

func buildRouteGraph(graph *cgraph.Graph, it *Itinerary) error {
	lookup := make(map[string]*cgraph.Node)
	node := func(name string) (*cgraph.Node, error) {
		if n, ok := lookup[name]; ok {
			return n, nil
		}
		n, err := graph.CreateNodeByName(name)
		if err != nil {
			return nil, err
		}
		n.SetLabel(name)
		lookup[name] = n
		return n, nil
	}

	if !it.Found || len(it.Legs) == 0 {
		for _, name := range []string{it.Start, it.End} {
			if _, err := node(name); err != nil {
				return err
			}
		}
		graph.SetLabel(fmt.Sprintf("No path found from %s to %s", it.Start, it.End))
		if it.Found {
			graph.SetLabel(fmt.Sprintf("%s is the destination", it.Start))
		}
		return nil
	}

	for _, leg := range it.Legs {
		from, err := node(leg.Origin)
		if err != nil {
			return err
		}
		to, err := node(leg.Destination)
		if err != nil {
			return err
		}

		edge, err := graph.CreateEdgeByName("", from, to)
		if err != nil {
			return err
		}
		edge.SetLabel(fmt.Sprintf("cost %.2f\ntime %.2f", leg.Cost, leg.Time))
	}

	graph.SetLabel(fmt.Sprintf("Total Cost: %.2f, Total Time: %.2f", it.TotalCost, it.TotalTime))
	return nil
}
