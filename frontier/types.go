// Package frontier provides tunable options and error definitions
// for parity-collapsed frontier expansion over a core.Graph.
package frontier

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/exwalk/core"
)

// Sentinel errors for frontier construction and queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("frontier: graph is nil")

	// ErrRootOutOfRange is returned when the root id is not a vertex.
	ErrRootOutOfRange = errors.New("frontier: root vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("frontier: invalid option supplied")

	// ErrNotUsable is returned by WalkTo when no walk of the requested
	// exact length ends at the requested vertex.
	ErrNotUsable = errors.New("frontier: vertex not usable at requested depth")
)

// Unreached marks a vertex that never entered a parity class.
const Unreached = -1

// noStepCap disables the expansion round limit.
const noStepCap = -1

// Option configures frontier expansion via functional arguments.
// If an Option is invalid (e.g. negative step cap), it is recorded
// internally and surfaced as ErrOptionViolation when Build is invoked.
type Option func(*Options)

// Options holds parameters customizing frontier expansion.
type Options struct {
	// Ctx allows cancellation and deadlines between expansion rounds.
	Ctx context.Context

	// MaxSteps caps the number of expansion rounds. A negative value
	// (the default) expands to the fixed point; 0 keeps only the root.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no step cap (expand to the fixed point)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: noStepCap,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps stops expansion after d rounds.
//
//	d >= 0: cap at d rounds (0 keeps only the root at depth 0)
//	d < 0:  invalid option → ErrOptionViolation
//
// First depths strictly greater than d are reported as Unreached; the
// cap is sound whenever callers only query depths k ≤ d.
func WithMaxSteps(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxSteps = d
	}
}

// Frontier is the immutable outcome of a Build call: per parity class,
// the first-reached depth and one predecessor witness for every vertex.
// It borrows the graph read-only for padding and walk reconstruction.
type Frontier struct {
	g    *core.Graph
	root int

	// first[p][v] is the minimal edge count of a walk root→v whose
	// length has parity p, or Unreached.
	first [2][]int

	// pred[p][v] is the vertex preceding v on one witnessed walk of
	// length first[p][v], or Unreached for the root's even class.
	pred [2][]int
}

// Root returns the vertex the frontier was built from.
func (f *Frontier) Root() int { return f.root }

// FirstDepth returns the minimal step count of the given parity (0 or 1)
// at which v was reached, or Unreached. Parities are taken mod 2.
func (f *Frontier) FirstDepth(v, parity int) int {
	if !f.g.HasVertex(v) {
		return Unreached
	}

	return f.first[parity&1][v]
}

// Predecessor returns the recorded witness preceding v in the given
// parity class, or Unreached when v has no predecessor there.
func (f *Frontier) Predecessor(v, parity int) int {
	if !f.g.HasVertex(v) {
		return Unreached
	}

	return f.pred[parity&1][v]
}

// UsableAt reports whether some walk of exactly k edges from the root
// ends at v: v's first depth of k's parity must be ≤ k, and exceeding
// that first depth requires a neighbor to bounce on (degree ≥ 1).
func (f *Frontier) UsableAt(v, k int) bool {
	if k < 0 || !f.g.HasVertex(v) {
		return false
	}
	fd := f.first[k&1][v]
	if fd == Unreached || fd > k {
		return false
	}

	return fd == k || f.g.Degree(v) > 0
}

// WalkTo materializes one walk of exactly k edges from the root to v:
// the witnessed chain to v's first depth of k's parity, then (k−fd)/2
// bounce pairs on v's first neighbor. Returns ErrNotUsable when no such
// walk exists.
// Complexity: O(k).
func (f *Frontier) WalkTo(v, k int) ([]int, error) {
	if !f.UsableAt(v, k) {
		return nil, fmt.Errorf("%w: vertex %d at depth %d", ErrNotUsable, v, k)
	}

	fd := f.first[k&1][v]
	walk := make([]int, fd+1, k+1)
	// Chain witnesses back to the root; walk[d] has depth d.
	for d, cur := fd, v; d >= 0; d-- {
		walk[d] = cur
		cur = f.pred[d&1][cur]
	}
	// Pad with bounces at v to stretch fd edges into exactly k.
	if k > fd {
		nb := f.g.Neighbors(v)[0]
		for i := 0; i < (k-fd)/2; i++ {
			walk = append(walk, nb, v)
		}
	}

	return walk, nil
}
