// Package walk declares the Walk type, sentinel errors, and functional
// options for the fixed-length search.
package walk

import (
	"context"
	"errors"
)

// Sentinel errors for search input validation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("walk: graph is nil")

	// ErrInvalidVertex is returned when source or target is not a vertex.
	ErrInvalidVertex = errors.New("walk: vertex out of range")

	// ErrInvalidLength is returned for a negative requested length.
	ErrInvalidLength = errors.New("walk: negative length")
)

// Sentinel errors for walk validation.
var (
	// ErrWalkNil is returned when validating a nil walk.
	ErrWalkNil = errors.New("walk: walk is nil")

	// ErrWalkLength is returned when a walk's edge count differs from
	// the requested length.
	ErrWalkLength = errors.New("walk: wrong length")

	// ErrWalkEndpoint is returned when a walk does not start at the
	// source or end at the target.
	ErrWalkEndpoint = errors.New("walk: wrong endpoint")

	// ErrWalkEdge is returned when a consecutive vertex pair is not an
	// edge of the graph.
	ErrWalkEdge = errors.New("walk: missing edge")
)

// Walk is an ordered vertex sequence in which every consecutive pair is
// an edge of the graph it was found in. Vertices may repeat.
type Walk struct {
	verts []int
}

// Vertices returns the walk's vertex sequence. The slice is owned by
// the Walk and must not be modified.
func (w *Walk) Vertices() []int { return w.verts }

// Len returns the walk's length in edges: one less than the number of
// vertices. A single-vertex walk has length 0.
func (w *Walk) Len() int { return len(w.verts) - 1 }

// Source returns the first vertex of the walk.
func (w *Walk) Source() int { return w.verts[0] }

// Target returns the last vertex of the walk.
func (w *Walk) Target() int { return w.verts[len(w.verts)-1] }

// Option configures the fixed-length search via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a FixedLength call.
type Options struct {
	// Ctx allows cancellation and deadlines; it is threaded into both
	// frontier builds.
	Ctx context.Context
}

// DefaultOptions returns Options with context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
