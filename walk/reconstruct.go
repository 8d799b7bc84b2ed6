package walk

import (
	"fmt"

	"github.com/katalvlaran/exwalk/frontier"
)

// join concatenates the two witnessed halves at the meeting vertex m:
// the forward walk source→m of exactly half1 edges, then the reversed
// backward walk m→target of exactly half2 edges. Both halves carry
// their own bounce padding, so the result has half1+half2 edges.
//
// UsableAt was checked by the caller for both sides; a WalkTo failure
// here is a broken frontier invariant, not a user error.
func join(fwd, bwd *frontier.Frontier, m, half1, half2 int) (*Walk, error) {
	ab, err := fwd.WalkTo(m, half1)
	if err != nil {
		return nil, fmt.Errorf("walk: forward reconstruction at %d: %w", m, err)
	}
	ba, err := bwd.WalkTo(m, half2)
	if err != nil {
		return nil, fmt.Errorf("walk: backward reconstruction at %d: %w", m, err)
	}

	// ba runs target→m; reverse it in place onto the tail of ab,
	// skipping its final vertex (m, already the last vertex of ab).
	verts := ab
	for i := len(ba) - 2; i >= 0; i-- {
		verts = append(verts, ba[i])
	}

	return &Walk{verts: verts}, nil
}
