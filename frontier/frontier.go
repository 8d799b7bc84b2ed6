// Package frontier implements parity-collapsed BFS expansion over a
// core.Graph: two growing reached sets (even/odd step parity) with one
// predecessor witness per vertex and class.
package frontier

import (
	"github.com/katalvlaran/exwalk/core"
)

// expander encapsulates mutable per-call expansion state.
// It is discarded when Build returns; the Frontier it produces is
// immutable from then on.
type expander struct {
	g    *core.Graph
	opts Options
	f    *Frontier

	// cur holds the vertices first reached in the previous round.
	cur []int
}

// Build expands parity frontiers from root until no round adds a vertex
// to either parity class, or until the WithMaxSteps cap is hit.
// Returns ErrGraphNil or ErrRootOutOfRange for invalid input,
// ErrOptionViolation for bad options, or the context's error on
// cancellation.
// Complexity: O(V+E) time, O(V) extra space, independent of MaxSteps.
func Build(g *core.Graph, root int, opts ...Option) (*Frontier, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(root) {
		return nil, ErrRootOutOfRange
	}

	e := &expander{
		g:    g,
		opts: o,
		f:    newFrontier(g, root),
		cur:  []int{root},
	}
	if err := e.loop(); err != nil {
		return nil, err
	}

	return e.f, nil
}

// newFrontier allocates the depth and witness arrays, all Unreached,
// and seeds the root at even depth 0.
func newFrontier(g *core.Graph, root int) *Frontier {
	n := g.VertexCount()
	f := &Frontier{g: g, root: root}
	for p := 0; p < 2; p++ {
		f.first[p] = make([]int, n)
		f.pred[p] = make([]int, n)
		for v := 0; v < n; v++ {
			f.first[p][v] = Unreached
			f.pred[p][v] = Unreached
		}
	}
	f.first[0][root] = 0

	return f
}

// loop runs expansion rounds until the fixed point, the step cap, or
// cancellation. Round depth d turns the vertices first reached at depth
// d into candidates at depth d+1 of the opposite parity.
func (e *expander) loop() error {
	for depth := 0; len(e.cur) > 0; depth++ {
		if e.opts.MaxSteps != noStepCap && depth >= e.opts.MaxSteps {
			break
		}
		// cancellation check (once per round)
		select {
		case <-e.opts.Ctx.Done():
			return e.opts.Ctx.Err()
		default:
		}

		e.cur = e.expand(e.cur, depth+1)
	}

	return nil
}

// expand advances one hop: every neighbor of a frontier vertex enters
// the opposite-parity class unless already present, recording the
// frontier vertex as its witness. Returns the newly added vertices.
func (e *expander) expand(cur []int, nextDepth int) []int {
	p := nextDepth & 1
	first := e.f.first[p]
	pred := e.f.pred[p]

	var next []int
	for _, u := range cur {
		for _, v := range e.g.Neighbors(u) {
			if first[v] != Unreached {
				continue
			}
			first[v] = nextDepth
			pred[v] = u
			next = append(next, v)
		}
	}

	return next
}
