package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exwalk/builder"
)

func TestBuild_NilConstructor(t *testing.T) {
	_, err := builder.Build(nil)
	require.ErrorIs(t, err, builder.ErrNilConstructor)
}

func TestRandomSparse_Validation(t *testing.T) {
	_, err := builder.Build(builder.RandomSparse(0, 0.5), builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(builder.RandomSparse(10, -0.1), builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.Build(builder.RandomSparse(10, 1.5), builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	// stochastic sampling without an RNG
	_, err = builder.Build(builder.RandomSparse(10, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomSparse_DegenerateProbabilities(t *testing.T) {
	// p == 0 needs no RNG and yields the edgeless graph
	g, err := builder.Build(builder.RandomSparse(6, 0))
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())

	// p == 1 needs no RNG and yields K_n
	g, err = builder.Build(builder.RandomSparse(6, 1))
	require.NoError(t, err)
	require.Equal(t, 6*5/2, g.EdgeCount())
}

func TestRandomSparse_SeedDeterminism(t *testing.T) {
	a, err := builder.Build(builder.RandomSparse(200, 0.05), builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.Build(builder.RandomSparse(200, 0.05), builder.WithSeed(42))
	require.NoError(t, err)

	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	require.Equal(t, a.Edges(), b.Edges())

	// a different seed should disagree somewhere
	c, err := builder.Build(builder.RandomSparse(200, 0.05), builder.WithSeed(43))
	require.NoError(t, err)
	require.NotEqual(t, a.Edges(), c.Edges())
}

func TestRandomSparse_DensityRoughlyHolds(t *testing.T) {
	const n = 500
	const p = 0.1
	g, err := builder.Build(builder.RandomSparse(n, p), builder.WithSeed(7))
	require.NoError(t, err)

	expected := p * float64(n) * float64(n-1) / 2
	require.InEpsilon(t, expected, float64(g.EdgeCount()), 0.1)
}

func TestCycle(t *testing.T) {
	_, err := builder.Build(builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	g, err := builder.Build(builder.Cycle(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 4, g.EdgeCount())
	for v := 0; v < 4; v++ {
		require.Equal(t, 2, g.Degree(v))
	}
	require.True(t, g.HasEdge(3, 0))
}

func TestPath(t *testing.T) {
	_, err := builder.Build(builder.Path(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	g, err := builder.Build(builder.Path(5))
	require.NoError(t, err)
	require.Equal(t, 4, g.EdgeCount())
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 1, g.Degree(4))
	require.Equal(t, 2, g.Degree(2))
}

func TestComplete(t *testing.T) {
	_, err := builder.Build(builder.Complete(0))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	g, err := builder.Build(builder.Complete(1))
	require.NoError(t, err)
	require.Equal(t, 0, g.EdgeCount())

	g, err = builder.Build(builder.Complete(5))
	require.NoError(t, err)
	require.Equal(t, 10, g.EdgeCount())
	for v := 0; v < 5; v++ {
		require.Equal(t, 4, g.Degree(v))
	}
}

func TestGrid(t *testing.T) {
	_, err := builder.Build(builder.Grid(0, 3))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	g, err := builder.Build(builder.Grid(3, 3))
	require.NoError(t, err)
	require.Equal(t, 9, g.VertexCount())
	// 2 · 3 · (3−1) edges in a 3×3 grid
	require.Equal(t, 12, g.EdgeCount())
	// corners have degree 2, the center degree 4
	require.Equal(t, 2, g.Degree(0))
	require.Equal(t, 4, g.Degree(4))

	// row-major ids: 4 is the center, adjacent to 3, 5, 1, 7
	for _, nb := range []int{1, 3, 5, 7} {
		require.True(t, g.HasEdge(4, nb))
	}
	require.False(t, g.HasEdge(0, 4))
}
