package iso

import (
	"context"
	"log/slog"

	"github.com/rdfkit/graphiso/internal/trace"
	"github.com/rdfkit/graphiso/term"
	"github.com/rdfkit/graphiso/triple"
)

// decideWithTrial resolves remaining ties by trial-branching (spec §4.1
// step 6): temporarily ground one member of a tied equivalence class with a
// distinguishing nonce, resume refinement, and check whether the resulting
// grounded-triple multisets now agree. Backtracks (tries the next member,
// or the next class) on failure, bounded by a single budget shared across
// the whole recursive search — every nested branch attempt counts against
// the same ceiling, so [Options.MaxBranches] bounds the total work Decide
// performs, not just its first level of recursion.
func decideWithTrial(ctx context.Context, g1, g2 *triple.Graph, r1, r2 LabelResult, o Options) (bool, error) {
	budget := o.MaxBranches
	if budget <= 0 {
		budget = countUngrounded(r1) + countUngrounded(r2)
		if budget <= 0 {
			budget = 1
		}
	}
	attempts := 0

	op := trace.Begin(ctx, o.Logger, "iso.trial", slog.Int("budget", budget))
	ok, err := tryBranches(ctx, g1, g2, r1, r2, o, &attempts, budget)
	op.End(err, slog.Int("attempts", attempts))
	return ok, err
}

func countUngrounded(r LabelResult) int {
	n := 0
	for _, class := range r.Ties {
		n += len(class)
	}
	return n
}

// smallestTie returns the smallest non-singleton equivalence class (spec
// §4.1 step 6: "pick one equivalence class of ungrounded nodes (smallest
// non-singleton class for efficiency)"), or nil if there are none. Ties are
// already sorted deterministically by [sortTies].
func smallestTie(ties [][]term.Node) []term.Node {
	var best []term.Node
	for _, class := range ties {
		if best == nil || len(class) < len(best) {
			best = class
		}
	}
	return best
}

// tryBranches attempts to resolve one tied class (from one or both graphs)
// by forcing a distinguishing signature onto one member at a time. attempts
// and budget are shared with every caller in the recursion: each branch
// attempted anywhere in the search increments the same counter and is
// checked against the same ceiling.
func tryBranches(ctx context.Context, g1, g2 *triple.Graph, r1, r2 LabelResult, o Options, attempts *int, budget int) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	c1 := smallestTie(r1.Ties)
	c2 := smallestTie(r2.Ties)

	switch {
	case c1 == nil && c2 == nil:
		// No ties remain on either side, yet the grounded multisets already
		// disagreed (checked by the caller): genuinely not isomorphic.
		return false, nil

	case c1 != nil && c2 != nil:
		if len(c1) != len(c2) {
			// Incompatible symmetry shapes: no pairing can reconcile them.
			return false, nil
		}
		for k := range c1 {
			if *attempts >= budget {
				return false, ErrBudgetExceeded
			}
			*attempts++
			ok, err := tryPairedAssign(ctx, g1, g2, c1[k], c2[k], *attempts, o, attempts, budget)
			if err != nil || ok {
				return ok, err
			}
		}
		return false, nil

	case c1 != nil:
		for _, a := range c1 {
			if *attempts >= budget {
				return false, ErrBudgetExceeded
			}
			*attempts++
			ok, err := tryAssignSingle(ctx, g1, a, g2, r2, *attempts, o, attempts, budget)
			if err != nil || ok {
				return ok, err
			}
		}
		return false, nil

	default: // c2 != nil only
		for _, b := range c2 {
			if *attempts >= budget {
				return false, ErrBudgetExceeded
			}
			*attempts++
			ok, err := tryAssignSingle(ctx, g2, b, g1, r1, *attempts, o, attempts, budget)
			if err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	}
}

// tryPairedAssign forces node a (in g1) and node b (in g2) to the same
// distinguishing signature, re-runs refinement on both graphs from their
// current state, and compares the resulting grounded multisets. attempts
// and budget are the same counter and ceiling the caller is operating
// under, so a recursive descent here still spends from one shared budget.
func tryPairedAssign(ctx context.Context, g1, g2 *triple.Graph, a, b term.Node, attempt int, o Options, attempts *int, budget int) (bool, error) {
	nonce := groundedNonce(sentinel, attempt)

	nr1 := reground(ctx, g1, a, nonce, o)
	nr2 := reground(ctx, g2, b, nonce, o)

	if equalGroundedMultisets(nr1.GroundedTriples, nr2.GroundedTriples) {
		return true, nil
	}
	if nr1.fullyGrounded() && nr2.fullyGrounded() {
		return false, nil
	}

	return tryBranches(ctx, g1, g2, nr1, nr2, o, attempts, budget)
}

// tryAssignSingle forces a distinguishing signature onto a single node a of
// graph ga (whose sibling graph gb's labeling already fully grounded, or is
// itself mid-tie) and compares against gb's existing result. attempts and
// budget are shared with the caller, for the same reason as
// [tryPairedAssign].
func tryAssignSingle(ctx context.Context, ga *triple.Graph, a term.Node, gb *triple.Graph, rb LabelResult, attempt int, o Options, attempts *int, budget int) (bool, error) {
	nonce := groundedNonce(sentinel, attempt)
	nra := reground(ctx, ga, a, nonce, o)

	if equalGroundedMultisets(nra.GroundedTriples, rb.GroundedTriples) {
		return true, nil
	}
	if nra.fullyGrounded() {
		return false, nil
	}

	return tryBranches(ctx, ga, gb, nra, rb, o, attempts, budget)
}

// reground relabels g with node a's signature forced to a distinguishing
// value and frozen (grounded) from round zero, resuming refinement from
// there.
func reground(ctx context.Context, g *triple.Graph, a term.Node, distinguishing Signature, o Options) LabelResult {
	seedSig := map[term.Node]Signature{a: distinguishing}
	seedGrounded := map[term.Node]bool{a: true}
	return labelSeeded(ctx, g, o, seedSig, seedGrounded)
}
