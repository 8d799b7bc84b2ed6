package walk

import (
	"fmt"

	"github.com/katalvlaran/exwalk/core"
)

// Validate asserts the acceptance contract for a walk returned by
// FixedLength: w has exactly length edges, starts at source, ends at
// target, and every consecutive vertex pair is an edge of g.
//
// Returns nil on success, or the first violated sentinel: ErrGraphNil,
// ErrWalkNil, ErrWalkLength, ErrWalkEndpoint, ErrWalkEdge.
// Complexity: O(length).
func Validate(g *core.Graph, w *Walk, source, target, length int) error {
	if g == nil {
		return ErrGraphNil
	}
	if w == nil || len(w.verts) == 0 {
		return ErrWalkNil
	}
	if w.Len() != length {
		return fmt.Errorf("%w: %d edges, want %d", ErrWalkLength, w.Len(), length)
	}
	if w.Source() != source {
		return fmt.Errorf("%w: starts at %d, want %d", ErrWalkEndpoint, w.Source(), source)
	}
	if w.Target() != target {
		return fmt.Errorf("%w: ends at %d, want %d", ErrWalkEndpoint, w.Target(), target)
	}
	for i := 0; i+1 < len(w.verts); i++ {
		if !g.HasEdge(w.verts[i], w.verts[i+1]) {
			return fmt.Errorf("%w: (%d,%d) at position %d", ErrWalkEdge, w.verts[i], w.verts[i+1], i)
		}
	}

	return nil
}
