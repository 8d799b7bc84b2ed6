// Command exwalk is the benchmark harness for the fixed-length walk
// search: it samples a random sparse graph, runs one search, times both
// phases, and validates the returned walk against the graph.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/exwalk/builder"
	"github.com/katalvlaran/exwalk/walk"
)

var (
	flagVertices int
	flagDensity  float64
	flagSeed     int64
	flagSource   int
	flagTarget   int
	flagLength   int
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exwalk",
		Short: "find a walk of an exact length in a random sparse graph",
		Long: `exwalk builds a seeded Erdős–Rényi graph, searches for a walk of
exactly the requested number of edges between two vertices, and reports
the timing of both phases. The returned walk is re-validated against
the graph before the command reports success.`,
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().IntVar(&flagVertices, "vertices", 500, "number of vertices")
	cmd.Flags().Float64Var(&flagDensity, "density", 0.01, "edge probability in [0,1]")
	cmd.Flags().Int64Var(&flagSeed, "seed", 42, "RNG seed for graph sampling")
	cmd.Flags().IntVar(&flagSource, "source", 0, "source vertex")
	cmd.Flags().IntVar(&flagTarget, "target", 17, "target vertex")
	cmd.Flags().IntVar(&flagLength, "length", 11, "exact walk length in edges")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	start := time.Now()
	g, err := builder.Build(
		builder.RandomSparse(flagVertices, flagDensity),
		builder.WithSeed(flagSeed),
	)
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	log.Info("graph built",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"elapsed", time.Since(start))

	start = time.Now()
	w, err := walk.FixedLength(g, flagSource, flagTarget, flagLength)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	elapsed := time.Since(start)

	if w == nil {
		log.Info("no walk of the exact length exists",
			"source", flagSource,
			"target", flagTarget,
			"length", flagLength,
			"elapsed", elapsed)

		return nil
	}

	if err = walk.Validate(g, w, flagSource, flagTarget, flagLength); err != nil {
		return fmt.Errorf("result failed validation: %w", err)
	}
	log.Info("walk found",
		"length", w.Len(),
		"elapsed", elapsed)
	fmt.Fprintln(cmd.OutOrStdout(), w.Vertices())

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
