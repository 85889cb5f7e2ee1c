package triple

import (
	"sort"

	"github.com/rdfkit/graphiso/term"
)

// Role identifies which position of a Triple a node occupies.
type Role uint8

const (
	// RoleSubject marks a node occupying the subject position.
	RoleSubject Role = iota
	// RolePredicate marks a node occupying the predicate position.
	RolePredicate
	// RoleObject marks a node occupying the object position.
	RoleObject
)

// Incidence pairs a Triple with the Role a queried node plays in it.
type Incidence struct {
	Role   Role
	Triple Triple
}

// Graph is a deduplicated multiset of Triples, built once and immutable
// thereafter. The zero value is not meaningful; construct via [NewGraph].
//
// Graph is safe for concurrent read access from multiple goroutines: all
// exported methods are read-only and every field is populated before
// [NewGraph] returns.
type Graph struct {
	triples   []Triple
	anonymous []term.Node
	constants []Triple // subset of triples with no anonymous node
	incident  map[term.Node][]Incidence
}

// NewGraph deduplicates ts (callers may pass duplicates; after construction
// no two Triples in the Graph are equal) and precomputes the indices package
// iso needs: the distinct anonymous nodes, the constant-only triples, and
// each anonymous node's incident triples.
func NewGraph(ts []Triple) *Graph {
	seen := make(map[Triple]struct{}, len(ts))
	deduped := make([]Triple, 0, len(ts))
	for _, t := range ts {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		deduped = append(deduped, t)
	}
	sort.Slice(deduped, func(i, j int) bool {
		return lessTriple(deduped[i], deduped[j])
	})

	g := &Graph{
		triples:  deduped,
		incident: make(map[term.Node][]Incidence),
	}

	anonSeen := make(map[term.Node]struct{})
	for _, t := range deduped {
		if !t.HasAnonymous() {
			g.constants = append(g.constants, t)
		}
		for _, re := range [...]struct {
			role Role
			node term.Node
		}{
			{RoleSubject, t.Subject},
			{RolePredicate, t.Predicate},
			{RoleObject, t.Object},
		} {
			if !re.node.IsAnonymous() {
				continue
			}
			g.incident[re.node] = append(g.incident[re.node], Incidence{Role: re.role, Triple: t})
			if _, ok := anonSeen[re.node]; !ok {
				anonSeen[re.node] = struct{}{}
				g.anonymous = append(g.anonymous, re.node)
			}
		}
	}
	sort.Slice(g.anonymous, func(i, j int) bool {
		return term.Compare(g.anonymous[i], g.anonymous[j]) < 0
	})

	return g
}

func lessTriple(a, b Triple) bool {
	if c := term.Compare(a.Subject, b.Subject); c != 0 {
		return c < 0
	}
	if c := term.Compare(a.Predicate, b.Predicate); c != 0 {
		return c < 0
	}
	return term.Compare(a.Object, b.Object) < 0
}

// Len returns the number of distinct triples in g.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns the deduplicated, deterministically-sorted triples of g.
// The returned slice must not be mutated.
func (g *Graph) Triples() []Triple { return g.triples }

// AnonymousNodes returns the distinct BlankNode/Variable nodes of g, sorted
// deterministically. The returned slice must not be mutated.
func (g *Graph) AnonymousNodes() []term.Node { return g.anonymous }

// ConstantTriples returns the subset of g's triples that contain no
// anonymous node, sorted deterministically. Package iso uses this as a
// cheap necessary (not sufficient) isomorphism pre-check: two isomorphic
// graphs must have equal constant-triple multisets.
func (g *Graph) ConstantTriples() []Triple { return g.constants }

// Incident returns the triples in which n occurs, together with the role n
// plays in each. Returns nil if n does not occur in g or is not anonymous.
func (g *Graph) Incident(n term.Node) []Incidence {
	return g.incident[n]
}
