package iso

import (
	"context"
	"log/slog"

	"github.com/rdfkit/graphiso/internal/trace"
	"github.com/rdfkit/graphiso/triple"
)

// Decide reports whether g1 and g2 are isomorphic (spec §4.2): one can be
// obtained from the other by a bijective renaming of anonymous nodes that
// preserves every edge and leaves constants fixed.
//
// Decide returns a non-nil error only from trial-branching (triggered by a
// genuine structural symmetry): [ErrBudgetExceeded] when the search exhausts
// its configured budget without resolving every tie, or ctx's error when ctx
// is done while the search is running.
func Decide(ctx context.Context, g1, g2 *triple.Graph, opts ...Option) (bool, error) {
	o := buildOptions(opts)
	op := trace.Begin(ctx, o.Logger, "iso.Decide", slog.Int("g1_len", g1.Len()), slog.Int("g2_len", g2.Len()))
	var err error
	defer func() { op.End(err) }()

	if g1.Len() != g2.Len() {
		return false, nil
	}
	if !equalTripleMultisets(g1.ConstantTriples(), g2.ConstantTriples()) {
		return false, nil
	}

	r1 := Label(ctx, g1, o)
	r2 := Label(ctx, g2, o)

	if equalGroundedMultisets(r1.GroundedTriples, r2.GroundedTriples) {
		return true, nil
	}

	if r1.fullyGrounded() && r2.fullyGrounded() {
		// Both graphs reached an unambiguous labeling that disagrees: not
		// isomorphic, no tie to break.
		return false, nil
	}

	ok, trialErr := decideWithTrial(ctx, g1, g2, r1, r2, o)
	err = trialErr
	return ok, trialErr
}

func equalTripleMultisets(a, b []triple.Triple) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func equalGroundedMultisets(a, b []GroundedTriple) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
