package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/lintang-b-s/flightplanner/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	flights := filepath.Join(dir, "flights.txt")
	require.NoError(t, os.WriteFile(flights, []byte("A|B|100|2\nA|C|10|5\nC|B|10|1\n"), 0o644))

	testCases := []struct {
		name       string
		args       func(out string) []string
		wantReport string
		wantErr    error
	}{
		{
			name: "cost",
			args: func(out string) []string { return []string{flights, "A", "B", out, "cost"} },
			wantReport: "Best path from A to B:\n" +
				"Flight from A to C - Cost: 10.00, Time: 5.00\n" +
				"Flight from C to B - Cost: 10.00, Time: 1.00\n" +
				"Total Cost: 20.00, Total Time: 6.00\n",
		},
		{
			name: "time with backtracking",
			args: func(out string) []string {
				return []string{"-algorithm", "backtracking", flights, "A", "B", out, "time"}
			},
			wantReport: "Best path from A to B:\n" +
				"Flight from A to B - Cost: 100.00, Time: 2.00\n" +
				"Total Cost: 100.00, Total Time: 2.00\n",
		},
		{
			name:       "unknown start",
			args:       func(out string) []string { return []string{flights, "X", "B", out, "cost"} },
			wantReport: "No path found from X to B\n",
		},
		{
			name:    "too few arguments",
			args:    func(out string) []string { return []string{flights, "A", "B", out} },
			wantErr: errUsage,
		},
		{
			name:    "unknown criterion",
			args:    func(out string) []string { return []string{flights, "A", "B", out, "distance"} },
			wantErr: pkg.ErrUnknownCriterion,
		},
		{
			name:    "unknown algorithm",
			args:    func(out string) []string { return []string{"-algorithm", "bfs", flights, "A", "B", out, "cost"} },
			wantErr: pkg.ErrUnknownAlgorithm,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "output.txt")
			var stdout, stderr bytes.Buffer

			err := run(context.Background(), tt.args(out), &stdout, &stderr, zap.NewNop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			report, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, tt.wantReport, string(report))
			assert.Regexp(t, regexp.MustCompile(`^Execution Time: \d+ milliseconds\nMemory Used: -?\d+ MB\n$`),
				stdout.String())
		})
	}
}

func TestRunGraphviz(t *testing.T) {
	dir := t.TempDir()
	flights := filepath.Join(dir, "flights.txt")
	require.NoError(t, os.WriteFile(flights, []byte("A|B|100|2\n"), 0o644))
	out := filepath.Join(dir, "output.txt")
	svg := filepath.Join(dir, "route.svg")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-graphviz", svg, flights, "A", "B", out, "cost"},
		&stdout, &stderr, zap.NewNop()))

	img, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(img), "<svg")
}
