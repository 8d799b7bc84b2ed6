package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exwalk/builder"
)

func TestWithRand_NilPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
}

func TestWithRand_EquivalentToSeed(t *testing.T) {
	a, err := builder.Build(builder.RandomSparse(100, 0.1),
		builder.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)

	b, err := builder.Build(builder.RandomSparse(100, 0.1), builder.WithSeed(5))
	require.NoError(t, err)

	require.Equal(t, a.Edges(), b.Edges())
}
