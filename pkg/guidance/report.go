package guidance

import (
	"bufio"
	"fmt"
	"io"
)

// WriteReport. plain text itinerary:
//
//	Best path from <start> to <end>:
//	Flight from <o> to <d> - Cost: 10.00, Time: 5.00
//	Total Cost: 10.00, Total Time: 5.00
//
// or "No path found from <start> to <end>".
func WriteReport(w io.Writer, it *Itinerary) error {
	bw := bufio.NewWriter(w)

	if !it.Found {
		fmt.Fprintf(bw, "No path found from %s to %s\n", it.Start, it.End)
		return bw.Flush()
	}

	fmt.Fprintf(bw, "Best path from %s to %s:\n", it.Start, it.End)
	for _, leg := range it.Legs {
		fmt.Fprintf(bw, "Flight from %s to %s - Cost: %.2f, Time: %.2f\n", leg.Origin, leg.Destination,
			leg.Cost, leg.Time)
	}
	fmt.Fprintf(bw, "Total Cost: %.2f, Total Time: %.2f\n", it.TotalCost, it.TotalTime)

	return bw.Flush()
}
