package walk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exwalk/builder"
	"github.com/katalvlaran/exwalk/walk"
)

// TestFixedLength_ScaleSmoke runs the benchmark-scale scenario: 10,000
// vertices at edge density 0.1, a feasible random query, validator-clean
// result. Skipped in -short mode.
func TestFixedLength_ScaleSmoke(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10k-vertex smoke test in short mode")
	}

	g, err := builder.Build(builder.RandomSparse(10000, 0.1), builder.WithSeed(42))
	require.NoError(t, err)

	// At density 0.1 the graph is connected with overwhelming odds and
	// carries odd cycles, so any length ≥ dist(s,t) + 1 slack is feasible.
	const (
		source = 0
		target = 4217
		length = 12
	)
	w, err := walk.FixedLength(g, source, target, length)
	require.NoError(t, err)
	require.NotNil(t, w)
	require.NoError(t, walk.Validate(g, w, source, target, length))
}
