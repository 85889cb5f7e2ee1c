package iso

import (
	"context"
	"log/slog"
	"sort"

	"github.com/rdfkit/graphiso/internal/trace"
	"github.com/rdfkit/graphiso/term"
	"github.com/rdfkit/graphiso/triple"
)

// GroundedSet maps each anonymous node of a graph to its canonical
// signature, as produced by [Label].
type GroundedSet map[term.Node]Signature

// GroundedTriple is a Triple with every position replaced by its signature
// (the constant's identity hash, or the anonymous node's grounded
// signature). Two graphs are isomorphic iff their GroundedTriple multisets
// are equal.
type GroundedTriple struct {
	S, P, O Signature
}

func lessGroundedTriple(a, b GroundedTriple) bool {
	if a.S != b.S {
		return a.S < b.S
	}
	if a.P != b.P {
		return a.P < b.P
	}
	return a.O < b.O
}

// LabelResult is the outcome of running [Label] on one graph.
type LabelResult struct {
	Grounded        GroundedSet
	GroundedTriples []GroundedTriple // sorted, for multiset comparison
	// Ties holds the equivalence classes (size > 1) of anonymous nodes that
	// remained indistinguishable at fixed point. Empty when every anonymous
	// node was grounded.
	Ties [][]term.Node
}

// fullyGrounded reports whether refinement reached a fixed point with no
// remaining ties.
func (r LabelResult) fullyGrounded() bool {
	return len(r.Ties) == 0
}

// Label assigns every anonymous node of g a structural signature via
// iterative refinement with grounding (spec §4.1). It never fails: a
// persistent tie is reported via LabelResult.Ties, not an error. The
// maxRounds safeguard (len(anonymous)+1) exists only to bound pathological
// inputs; reaching it without full grounding is treated the same as a
// same-round tie.
func Label(ctx context.Context, g *triple.Graph, opts Options) LabelResult {
	return labelSeeded(ctx, g, opts, nil, nil)
}

// labelSeeded runs the same refinement procedure as [Label], but starts
// from caller-supplied initial signatures/grounded flags rather than the
// all-sentinel, all-ungrounded start state. Trial-branching (trial.go) uses
// this to force one tied node's signature to a distinguishing value and
// resume refinement from there, instead of starting over.
func labelSeeded(ctx context.Context, g *triple.Graph, opts Options, seedSig map[term.Node]Signature, seedGrounded map[term.Node]bool) LabelResult {
	anonymous := g.AnonymousNodes()
	op := trace.Begin(ctx, opts.Logger, "iso.Label", slog.Int("anonymous_count", len(anonymous)))
	defer op.End(nil)

	if len(anonymous) == 0 {
		return LabelResult{
			Grounded:        GroundedSet{},
			GroundedTriples: groundTriples(g.Triples(), GroundedSet{}),
		}
	}

	sig := make(map[term.Node]Signature, len(anonymous))
	grounded := make(map[term.Node]bool, len(anonymous))
	for _, n := range anonymous {
		if s, ok := seedSig[n]; ok {
			sig[n] = s
		} else {
			sig[n] = sentinel
		}
		if seedGrounded[n] {
			grounded[n] = true
		}
	}

	maxRounds := len(anonymous) + 1
	round := 0
	for {
		round++
		newSigs := make(map[term.Node]Signature, len(anonymous))
		for _, a := range anonymous {
			if grounded[a] {
				continue
			}
			newSigs[a] = refineSignature(a, sig, grounded, g)
		}
		for a, s := range newSigs {
			sig[a] = s
		}

		groups := groupBySignature(anonymous, grounded, sig)
		newlyGrounded := 0
		var ties [][]term.Node
		for _, group := range groups {
			if len(group) == 1 {
				grounded[group[0]] = true
				newlyGrounded++
				continue
			}
			ties = append(ties, group)
		}

		trace.DebugLazy(ctx, opts.Logger, "refinement round", func() []slog.Attr {
			return []slog.Attr{
				slog.Int("round", round),
				slog.Int("newly_grounded", newlyGrounded),
				slog.Int("ties", len(ties)),
			}
		})

		if len(ties) == 0 {
			result := LabelResult{Grounded: GroundedSet(sig)}
			result.GroundedTriples = groundTriples(g.Triples(), result.Grounded)
			return result
		}
		if newlyGrounded == 0 || round >= maxRounds {
			sortTies(ties)
			result := LabelResult{Grounded: GroundedSet(sig), Ties: ties}
			result.GroundedTriples = groundTriples(g.Triples(), result.Grounded)
			return result
		}
	}
}

// refineSignature computes node a's next-round signature from the multiset
// of its incident triples (spec §4.1 step 3).
func refineSignature(a term.Node, sig map[term.Node]Signature, grounded map[term.Node]bool, g *triple.Graph) Signature {
	incident := g.Incident(a)
	hashes := make([]uint64, 0, len(incident))
	for _, inc := range incident {
		sigS := signatureOf(inc.Triple.Subject, sig)
		sigP := signatureOf(inc.Triple.Predicate, sig)
		sigO := signatureOf(inc.Triple.Object, sig)
		hashes = append(hashes, tupleHash(inc.Role, sigS, sigP, sigO))
	}
	return combineIncident(sig[a], hashes)
}

// signatureOf returns n's contribution to a tuple hash: a constant's
// identity hash, or an anonymous node's current-round signature.
func signatureOf(n term.Node, sig map[term.Node]Signature) Signature {
	if n.IsAnonymous() {
		return sig[n]
	}
	return constantSignature(n)
}

// groupBySignature partitions the still-ungrounded anonymous nodes by their
// current signature. Already-grounded nodes are excluded (they were grouped
// and frozen in an earlier round). Groups and their members are sorted by
// [term.Compare] so output is deterministic regardless of map iteration
// order (spec §9 "avoid accidental non-determinism").
func groupBySignature(anonymous []term.Node, grounded map[term.Node]bool, sig map[term.Node]Signature) [][]term.Node {
	bySig := make(map[Signature][]term.Node)
	for _, a := range anonymous {
		if grounded[a] {
			continue
		}
		bySig[sig[a]] = append(bySig[sig[a]], a)
	}
	groups := make([][]term.Node, 0, len(bySig))
	for _, members := range bySig {
		sort.Slice(members, func(i, j int) bool {
			return term.Compare(members[i], members[j]) < 0
		})
		groups = append(groups, members)
	}
	sort.Slice(groups, func(i, j int) bool {
		return term.Compare(groups[i][0], groups[j][0]) < 0
	})
	return groups
}

func sortTies(ties [][]term.Node) {
	sort.Slice(ties, func(i, j int) bool {
		return term.Compare(ties[i][0], ties[j][0]) < 0
	})
}

// groundTriples replaces every node of each triple with its signature and
// returns the result sorted for multiset comparison.
func groundTriples(triples []triple.Triple, grounded GroundedSet) []GroundedTriple {
	out := make([]GroundedTriple, len(triples))
	for i, t := range triples {
		out[i] = GroundedTriple{
			S: signatureOf(t.Subject, grounded),
			P: signatureOf(t.Predicate, grounded),
			O: signatureOf(t.Object, grounded),
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return lessGroundedTriple(out[i], out[j])
	})
	return out
}
