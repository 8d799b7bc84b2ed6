// Package walk implements the meet-in-the-middle fixed-length search
// over parity-collapsed frontiers.
package walk

import (
	"fmt"

	"github.com/katalvlaran/exwalk/core"
	"github.com/katalvlaran/exwalk/frontier"
)

// FixedLength returns one walk of exactly length edges from source to
// target in g, or (nil, nil) when no such walk exists.
//
// Returns ErrGraphNil for a nil graph, ErrInvalidVertex when source or
// target lies outside [0, g.VertexCount()), and ErrInvalidLength for a
// negative length — all before any frontier work. A canceled context
// surfaces as the context's error.
//
// The call is self-contained and reentrant: all search state is scoped
// to the invocation, and g is only read.
// Complexity: O(V+E) time, O(V) space, independent of length.
func FixedLength(g *core.Graph, source, target, length int, opts ...Option) (*Walk, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d of %d", ErrInvalidVertex, source, g.VertexCount())
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: target %d of %d", ErrInvalidVertex, target, g.VertexCount())
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	// A zero-length walk is the single vertex, valid only when the
	// endpoints coincide.
	if length == 0 {
		if source != target {
			return nil, nil
		}

		return &Walk{verts: []int{source}}, nil
	}

	// Split the length; the longer half leaves from the source. The
	// backward frontier over an undirected graph is a forward build
	// from the target.
	half1 := (length + 1) / 2
	half2 := length / 2

	fwd, err := frontier.Build(g, source,
		frontier.WithContext(o.Ctx), frontier.WithMaxSteps(half1))
	if err != nil {
		return nil, err
	}
	bwd, err := frontier.Build(g, target,
		frontier.WithContext(o.Ctx), frontier.WithMaxSteps(half2))
	if err != nil {
		return nil, err
	}

	// Intersection scan: the first vertex (ascending id) usable at both
	// exact half depths is the meeting point. Deterministic for a fixed
	// graph; which qualifying vertex wins is otherwise unspecified.
	for m := 0; m < g.VertexCount(); m++ {
		if fwd.UsableAt(m, half1) && bwd.UsableAt(m, half2) {
			return join(fwd, bwd, m, half1, half2)
		}
	}

	return nil, nil
}
